package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/timecalc/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelInfo, "json")

	log.Debug("hidden")
	log.Info("todo finished", "todo_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "todo finished", entry["msg"])
	assert.Equal(t, "abc", entry["todo_id"])
	assert.Contains(t, entry, "source")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, slog.LevelDebug, "text")

	log.Debug("calculator cleared")
	assert.True(t, strings.Contains(buf.String(), "msg=\"calculator cleared\""))
}
