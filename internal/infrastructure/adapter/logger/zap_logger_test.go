package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/voting-escrow/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	l := NewZapLoggerFromCore(obsCore, core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.Info("deposit accepted", map[string]any{"account": "alice"})
	l.Warn("lock busy", nil)

	require.Equal(t, 2, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "deposit accepted", entry.Message)
	assert.Equal(t, "alice", entry.ContextMap()["account"])

	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Warn("dropped", nil)
	l.Error("transfer failed", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "boom", logs.All()[2].ContextMap()["error"])

	l.SetLevel(core.LogLevelDebug)
	l.Debug("visible", nil)
	assert.Equal(t, 4, logs.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"":        core.LogLevelInfo,
		"INFO":    core.LogLevelInfo,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)

	for _, level := range []core.LogLevel{core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError} {
		parsed, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed, "level names round trip")
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelWarn)
	l.Error("ignored", map[string]any{"k": 1})

	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
	assert.NoError(t, l.Flush())
}
