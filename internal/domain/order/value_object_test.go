package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTopLevel(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"1.0", true},
		{"12.0", true},
		{"2.0.1", false},
		{"2.1", false},
		{"1.00", false},
		{"a.0", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTopLevel(tt.number))
		})
	}
}

func TestLinePrefix(t *testing.T) {
	assert.Equal(t, "2.", linePrefix("2.1"))
	assert.Equal(t, "12.", linePrefix("12.0.3"))
	assert.Equal(t, "", linePrefix("1"))
	assert.Equal(t, "", linePrefix("x.1"))
}
