package logd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLogLevelFromEnv(t *testing.T) {
	t.Run("unset => info", func(t *testing.T) {
		logLevel, err := ReadLogLevelFromEnv()
		require.NoError(t, err)
		assert.Equal(t, InfoLevel, logLevel)
	})
	t.Run("debug => debug", func(t *testing.T) {
		t.Setenv(LogLevelEnv, "debug")

		logLevel, err := ReadLogLevelFromEnv()
		require.NoError(t, err)
		assert.Equal(t, DebugLevel, logLevel)
	})
	t.Run("unknown => info with error", func(t *testing.T) {
		t.Setenv(LogLevelEnv, "loud")

		logLevel, err := ReadLogLevelFromEnv()
		require.Error(t, err)
		assert.Equal(t, InfoLevel, logLevel)
	})
}

func TestLogger(t *testing.T) {
	t.Run("log level info", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(&logBuffer, InfoLevel)}

		log.Info("Info message")
		log.Debug("Debug message")

		assert.Contains(t, logBuffer.String(), "Info message")
		assert.NotContains(t, logBuffer.String(), "Debug message")
	})
	t.Run("log level debug", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(&logBuffer, DebugLevel)}

		log.Info("Info message")
		log.Debug("Debug message")

		assert.Contains(t, logBuffer.String(), "Info message")
		assert.Contains(t, logBuffer.String(), "Debug message")
	})
	t.Run("named logger keeps the name", func(t *testing.T) {
		logBuffer := bytes.Buffer{}
		log := Logger{newZapLogger(&logBuffer, InfoLevel)}.WithName("spawner-pod")

		log.Info("Info message")

		assert.Contains(t, logBuffer.String(), "spawner-pod")
	})
}
