package logd

import (
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

const LogLevelEnv = "LOG_LEVEL"

type LogLevel int

const (
	InfoLevel LogLevel = iota
	DebugLevel
	TraceLevel
)

func (level LogLevel) String() string {
	switch level {
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	}

	return "unknown"
}

type Logger struct {
	logr.Logger
}

func (l Logger) Debug(message string, keysAndValues ...any) {
	l.V(int(DebugLevel)).Info(message, keysAndValues...)
}

var (
	baseLogger     Logger
	baseLoggerOnce sync.Once
)

// Get returns the process wide base logger. Creating a full logger is
// rather expensive, deriving named loggers via WithName is cheap, so every
// package derives from this one instance.
func Get() Logger {
	baseLoggerOnce.Do(func() {
		logLevel, err := ReadLogLevelFromEnv()
		baseLogger = Logger{newZapLogger(os.Stdout, logLevel)}

		if err != nil {
			baseLogger.Info("malformed log level, falling back to info", "env", LogLevelEnv)
		}
	})

	return baseLogger
}

// ReadLogLevelFromEnv maps LOG_LEVEL to a LogLevel, defaulting to info for
// unset or malformed values.
func ReadLogLevelFromEnv() (LogLevel, error) {
	raw, ok := os.LookupEnv(LogLevelEnv)
	if !ok || raw == "" {
		return InfoLevel, nil
	}

	switch raw {
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}

	return InfoLevel, errors.Errorf(`unknown log level "%s"`, raw)
}
