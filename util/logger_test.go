package util

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("production", &buf)
	l.Info().Str("op", "diagnosis").Msg("done")
	l.Debug().Msg("hidden")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "done", line["message"])
	assert.Equal(t, "diagnosis", line["op"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_TestEnvIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("test", &buf)
	l.Info().Msg("info")
	assert.Empty(t, buf.String())
	l.Warn().Msg("warn")
	assert.Contains(t, buf.String(), "warn")
}

func TestNewLogger_DevelopmentIsConsole(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("", &buf)
	l.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), `"message"`)
}
