// Package logger configures the process-wide zerolog logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogFormatJsonValue = "json"
	LogFormatTextValue = "text"
)

// New builds a logger writing to w. Text format goes through a ConsoleWriter;
// debug level adds the caller and pid to every line.
func New(logLevelStr, logFormat string, w io.Writer) (zerolog.Logger, error) {
	var logLevel zerolog.Level
	switch logLevelStr {
	case zerolog.LevelDebugValue:
		logLevel = zerolog.DebugLevel
	case zerolog.LevelInfoValue:
		logLevel = zerolog.InfoLevel
	case zerolog.LevelWarnValue:
		logLevel = zerolog.WarnLevel
	case zerolog.LevelErrorValue:
		logLevel = zerolog.ErrorLevel
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log level %s", logLevelStr)
	}

	var formatWriter io.Writer
	switch logFormat {
	case LogFormatJsonValue:
		formatWriter = w
	case LogFormatTextValue:
		formatWriter = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %s", logFormat)
	}

	ctx := zerolog.New(formatWriter).
		Level(logLevel).
		With().
		Timestamp()
	if logLevel == zerolog.DebugLevel {
		ctx = ctx.Caller().Int("pid", os.Getpid())
	}

	return ctx.Logger(), nil
}

// SetLogLevel builds a logger with New and installs it as the global log.Logger.
func SetLogLevel(logLevelStr string, logFormat string, w io.Writer) (zerolog.Logger, error) {
	l, err := New(logLevelStr, logFormat, w)
	if err != nil {
		return l, err
	}
	log.Logger = l

	return l, nil
}
