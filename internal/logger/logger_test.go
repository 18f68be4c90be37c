package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_CustomWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: "json",
		Writer: &buf,
	})

	logger.Info("post converted", "slug", "hello-world")

	assert.Contains(t, buf.String(), `"msg":"post converted"`)
	assert.Contains(t, buf.String(), `"slug":"hello-world"`)
	assert.Contains(t, buf.String(), "\"level\":\"INFO\"")
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{name: "production uses json", environment: "production", wantJSON: true},
		{name: "development uses pretty", environment: "development", wantJSON: false},
		{name: "staging uses pretty", environment: "staging", wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:       slog.LevelInfo,
				Environment: tt.environment,
				Writer:      &buf,
			})
			logger.Info("test")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"test"`)
			} else {
				assert.Contains(t, buf.String(), "INF")
				assert.NotContains(t, buf.String(), `"msg"`)
			}
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Format: "pretty", Writer: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "pretty", Writer: &buf})

	logger.WithField("post", "Hello world").WithError(errors.New("boom")).Info("slug repeated")

	out := buf.String()
	assert.Contains(t, out, "slug repeated")
	assert.Contains(t, out, `post="Hello world"`)
	assert.Contains(t, out, "error=boom")
}

func TestPrettyHandler_Source(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "pretty", AddSource: true, Writer: &buf})

	logger.Info("with source")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestPrettyHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "pretty", Writer: &buf})

	logger.With("run", 1).WithGroup("summary").With("posts", 3).Info("done", "pages", 2)

	out := buf.String()
	assert.Contains(t, out, "run=1")
	assert.Contains(t, out, "summary.posts=3")
	assert.Contains(t, out, "summary.pages=2")
}
