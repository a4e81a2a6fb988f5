// Package logger sets up the process-wide slog JSON logger for content-hub.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"content-hub/internal/config"

	"gopkg.in/lumberjack.v2"
)

const serviceName = "content-hub"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs the default logger and returns the closer of the rotating
// log file, if one is configured.
func Init(cfg config.LogConfig) io.Closer {
	out, closer := outputs(cfg)
	slog.SetDefault(New(cfg, out))
	Info("logger initialized", "level", ParseLevel(cfg.Level).String(), "file", cfg.File)
	return closer
}

// New builds a JSON logger writing to w, tagged with the service name.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return slog.New(h).With("service", serviceName)
}

// outputs fans out to stdout and the rotating file. Stdout is used when
// nothing else is configured.
func outputs(cfg config.LogConfig) (io.Writer, io.Closer) {
	var writers []io.Writer
	var closer io.Closer = nopCloser{}
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		writers = append(writers, lj)
		closer = lj
	}
	if len(writers) == 0 {
		return os.Stdout, closer
	}
	return io.MultiWriter(writers...), closer
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

// ParseLevel accepts slog level names ("debug", "WARN", "info+2") plus
// "warning". Anything unreadable logs at info.
func ParseLevel(s string) slog.Level {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
