package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "localhost default port",
			server: ServerConfig{Host: "localhost", Port: 8030},
			want:   "localhost:8030",
		},
		{
			name:   "bind all interfaces",
			server: ServerConfig{Host: "0.0.0.0", Port: 8080},
			want:   "0.0.0.0:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CCW_BASE_URL", "https://apix.cisco.com/api-test/")
	t.Setenv(EnvClientID, "id")
	t.Setenv(EnvClientSecret, "secret")
	t.Setenv(EnvUsername, "jdoe")
	t.Setenv(EnvPassword, "pw")
	t.Setenv("CCW_TIMEOUT_SECONDS", "15")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", " b1:9092, ,b2:9092 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://apix.cisco.com/api-test/", cfg.CCW.BaseURL)
	assert.Equal(t, "jdoe", cfg.CCW.Username)
	assert.Equal(t, 15*time.Second, cfg.CCW.Timeout())
	assert.Equal(t, []string{"b1:9092", "b2:9092"}, cfg.Kafka.Brokers)
	assert.NoError(t, cfg.CCW.Validate())
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CCW_TIMEOUT_SECONDS", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "CCW_TIMEOUT_SECONDS")
}

func TestCCWConfig_Missing(t *testing.T) {
	c := CCWConfig{ClientID: "id", Username: "jdoe"}

	assert.Equal(t, []string{EnvClientSecret, EnvPassword}, c.Missing())
	assert.ErrorContains(t, c.Validate(), "CCW_CLIENTSECRET, CCO_PASSWORD")

	require.NoError(t, c.Set(EnvClientSecret, "s"))
	require.NoError(t, c.Set(EnvPassword, "p"))
	assert.Empty(t, c.Missing())
	assert.Error(t, c.Set("NOPE", "x"))
}

func TestIsSecret(t *testing.T) {
	assert.True(t, IsSecret(EnvPassword))
	assert.True(t, IsSecret(EnvClientSecret))
	assert.False(t, IsSecret(EnvUsername))
}
