package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:     slog.LevelInfo,
		Component: ComponentApp,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.Info("hello", "k", "v")
	out := buf.String()
	if !strings.Contains(out, "component=app") {
		t.Fatalf("expected component attribute, got %q", out)
	}
	if !strings.Contains(out, "k=v") {
		t.Fatalf("expected extra attribute, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Handler: slog.NewTextHandler(&buf, nil)})

	httpLogger := logger.WithComponent(ComponentHTTP)
	if httpLogger.Component() != ComponentHTTP {
		t.Fatalf("expected %q, got %q", ComponentHTTP, httpLogger.Component())
	}
}

func TestFromContext(t *testing.T) {
	logger := New(DefaultConfig())
	ctx := context.WithValue(context.Background(), LoggerContextKey, logger)

	if got := FromContext(ctx); got != logger {
		t.Fatalf("expected the stored logger back")
	}
	if got := FromContext(context.Background()); got == nil || got.Component() != ComponentApp {
		t.Fatalf("expected the fallback logger")
	}
}
