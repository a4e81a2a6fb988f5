package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-hub/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFiltersAndTags(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "warn"}, &buf)

	log.Info("post.created", "id", "1")
	log.Warn("upload.rejected", "file", "a.exe")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "upload.rejected", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "content-hub", rec["service"])
	assert.Equal(t, "a.exe", rec["file"])
}

func TestInitWritesRotatingFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	file := filepath.Join(t.TempDir(), "hub.log")
	closer := Init(config.LogConfig{Level: "debug", File: file, MaxSizeMB: 1})
	Debug("calendar.month", "month", "2024-07")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	buf := string(raw)
	assert.Contains(t, buf, `"msg":"logger initialized"`)
	assert.Contains(t, buf, `"msg":"calendar.month"`)
	assert.Contains(t, buf, `"service":"content-hub"`)
}

func TestInitWithoutOutputsUsesStdout(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer := Init(config.LogConfig{})
	assert.NoError(t, closer.Close())
}
