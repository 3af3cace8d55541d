package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Warn("serial lookup failed",
		SalesOrder("81234567"),
		Strings("lines", []string{"1.0", "2.0"}),
		Duration("took", time.Second),
		Error(errors.New("boom")),
	)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "serial lookup failed", entry.Message)

	ctx := entry.ContextMap()
	assert.Equal(t, "81234567", ctx["sales_order"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, time.Second, ctx["took"])
}

func TestZapLogger_WithContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewFromZap(zap.New(core))

	ctx := ContextWithFields(context.Background(), EstimateID("EST-1"))
	ctx = ContextWithFields(ctx, String("request_id", "r-1"))

	log.WithContext(ctx).Info("estimate parsed")
	log.WithContext(context.Background()).Debug("dropped")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "EST-1", fields["estimate_id"])
	assert.Equal(t, "r-1", fields["request_id"])
}

func TestNewZapLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := NewZapLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}

	assert.NotPanics(t, func() { NewNop().Info("quiet") })
}
