package pxblit

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler_Enabled(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)
	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	Logger().Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("logger should be silent after SetLogger(nil)")
	}
}

// TestCollectorLogsRoles renders a tiny run with logging enabled and
// checks the role attributes the original program carried in its line
// prefixes.
func TestCollectorLogsRoles(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	w := Worker{
		Context:   WorkerContext{Index: 3, Total: 4},
		Partition: Partition{Start: 0, Length: 3},
	}
	out := make(chan Point, 1)
	if err := w.Run(context.Background(), NewBufferSource([]byte{1, 2, 3}), out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	logged := buf.String()
	if !strings.Contains(logged, "role=worker") {
		t.Errorf("worker log missing role attribute: %s", logged)
	}
	if !strings.Contains(logged, "worker=3") {
		t.Errorf("worker log missing index attribute: %s", logged)
	}
}
