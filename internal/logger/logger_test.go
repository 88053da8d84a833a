package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("warn", logger.LogFormatJsonValue, &buf)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Str("method", "kruskal").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"method":"kruskal"`)
	assert.Contains(t, out, `"time":`)
}

func TestNew_DebugAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("debug", logger.LogFormatJsonValue, &buf)
	require.NoError(t, err)

	l.Debug().Msg("x")
	assert.Contains(t, buf.String(), `"caller":`)
	assert.Contains(t, buf.String(), `"pid":`)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.New("info", logger.LogFormatTextValue, &buf)
	require.NoError(t, err)

	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_Rejects(t *testing.T) {
	_, err := logger.New("trace-ish", logger.LogFormatTextValue, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logger.New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logger.SetLogLevel("nope", logger.LogFormatTextValue, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetLogLevel_InstallsGlobal(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	_, err := logger.SetLogLevel("warn", logger.LogFormatJsonValue, &buf)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"message":"kept"`)
}
