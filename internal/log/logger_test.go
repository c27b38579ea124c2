package log

import (
	"testing"

	"talentsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, Level())
	SetLevel(" WARN ")
	assert.Equal(t, zapcore.WarnLevel, Level())
	SetLevel("verbose")
	assert.Equal(t, zapcore.InfoLevel, Level())
	SetLevel("")
	assert.Equal(t, zapcore.InfoLevel, Level())
}

func TestNewLoggerFollowsLevelChanges(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	logger, err := NewLogger(&config.Configuration{
		App: config.App{Name: "talentsync"},
		Log: config.Log{Level: "error", Format: "console"},
	})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	SetLevel("debug")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
