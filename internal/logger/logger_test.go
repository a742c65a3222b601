package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe swaps the global logger for an in-memory one
func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })
	return logs
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := WithFields(context.Background(), zap.String("request_id", "req-1"))
	ctx = WithFields(ctx, zap.String("wallet", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"))
	InfoCtx(ctx, "Item purchased", zap.Uint64("itemId", 1))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", fields["wallet"])
	assert.Equal(t, uint64(1), fields["itemId"])
}

func TestWithFields_DoesNotLeakToParent(t *testing.T) {
	logs := observe(t)

	parent := WithFields(context.Background(), zap.String("request_id", "req-1"))
	_ = WithFields(parent, zap.String("wallet", "0xabc"))
	WarnCtx(parent, "Nonce expired")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["wallet"]
	assert.False(t, ok)
}

func TestErrorCtx(t *testing.T) {
	logs := observe(t)

	ErrorCtx(context.Background(), errors.New("execution reverted: Not enough ether"))
	Error(nil, zap.String("component", "bridge"))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "execution reverted: Not enough ether", logs.All()[0].Message)
	assert.Equal(t, "error occurred", logs.All()[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestInitialize_NamesLoggerAfterService(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Tags: map[string]string{"service": "api-server"}}))
	assert.Equal(t, "api-server", log.Name())

	require.NoError(t, Initialize(Config{Debug: true}))
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
