package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Logger)
	Logger.Info("dropped")
}

func TestInitLogger(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	require.NoError(t, InitLogger(true))
	assert.True(t, Logger.Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(false))
	assert.False(t, Logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zap.InfoLevel))
}
