package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_UnparseableLevelFallsBackToInfo(t *testing.T) {
	log, err := NewLogger(LoggingConfig{Level: "not-a-level", Format: "console"})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_JSONFormat(t *testing.T) {
	log, err := NewLogger(LoggingConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
