package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level, env string
		want       slog.Level
	}{
		{"debug", "production", slog.LevelDebug},
		{"INFO", "development", slog.LevelInfo},
		{"warn", "", slog.LevelWarn},
		{"warning", "", slog.LevelWarn},
		{"error", "", slog.LevelError},
		{"", "development", slog.LevelDebug},
		{"", "production", slog.LevelInfo},
		{"verbose", "staging", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.level, tt.env), "level=%q env=%q", tt.level, tt.env)
	}
}

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "production", "info")
	t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, "test", "error") })

	Info("evaluation completed", "local_score", 70)
	Debug("hidden")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "evaluation completed", entry["msg"])
	assert.Equal(t, float64(70), entry["local_score"])
}

func TestBareErrorArgument(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "production", "debug")
	t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, "test", "error") })

	Error("prediction failed", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "boom", entry["error"])
}
