package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewBindsProvidedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Info(context.Background(), "library loaded", "library", "libmobcore.so")

	out := buf.String()
	if !strings.Contains(out, "library loaded") || !strings.Contains(out, "libmobcore.so") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, nil))).With("component", "bootstrap")

	l.Warn(context.Background(), "degraded")

	if !strings.Contains(buf.String(), "component=bootstrap") {
		t.Fatalf("With attribute missing from output: %q", buf.String())
	}
}

func TestNewNilDefaults(t *testing.T) {
	if New(nil) == nil {
		t.Fatal("New(nil) returned nil")
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept every level.
	l := Discard()
	ctx := context.Background()
	l.Debug(ctx, "a")
	l.Info(ctx, "b")
	l.Warn(ctx, "c")
	l.Error(ctx, "d")
}
