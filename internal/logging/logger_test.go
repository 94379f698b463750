package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medsum/internal/config"
	"medsum/internal/services"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = NewComponentLogger(logger, "upload")
	logger.Info("submission started", Args(String(FieldFileName, "lab report.pdf"), Int("size", 42))...)
	logger.Debug("hidden")

	line := buf.String()
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", line)
	}
	for _, want := range []string{" INFO upload: submission started", `file="lab report.pdf"`, "size=42"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be promoted out of kvs: %q", line)
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithGroup("http").Info("request", "status", 502)
	if !strings.Contains(buf.String(), "http.status=502") {
		t.Fatalf("expected grouped key, got %q", buf.String())
	}
}

func TestJSONHandlerFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("summarize failed", Args(Error(errors.New("boom")))...)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json line: %v", err)
	}
	if payload["level"] != "warn" {
		t.Fatalf("level = %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("expected ts key")
	}
	if payload["error"] != "boom" {
		t.Fatalf("error = %v", payload["error"])
	}
	if src, _ := payload["source"].(string); !strings.HasPrefix(src, "logger_test.go:") {
		t.Fatalf("source = %v", payload["source"])
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Logging.Format = "json"

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

type captureHandler struct {
	records []slog.Record
	attrs   []slog.Attr
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.attrs = append(h.attrs, attrs...)
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func recordAttrs(r slog.Record) map[string]string {
	out := map[string]string{}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.String()
		return true
	})
	return out
}

func TestWarnWithContextDefaults(t *testing.T) {
	h := &captureHandler{}
	WarnWithContext(slog.New(h), "slow", "summarize_slow", String(FieldImpact, "late summary"))
	if len(h.records) != 1 {
		t.Fatalf("expected one record, got %d", len(h.records))
	}
	attrs := recordAttrs(h.records[0])
	if attrs[FieldEventType] != "summarize_slow" {
		t.Fatalf("event_type = %q", attrs[FieldEventType])
	}
	if attrs[FieldErrorHint] == "" {
		t.Fatal("expected default error hint")
	}
	if attrs[FieldImpact] != "late summary" {
		t.Fatalf("impact overridden: %q", attrs[FieldImpact])
	}
}

func TestWarnWithContextNilLogger(t *testing.T) {
	WarnWithContext(nil, "ignored", "noop")
}

func TestWithContextAddsFields(t *testing.T) {
	h := &captureHandler{}
	ctx := services.WithRequestID(context.Background(), "abc")
	ctx = services.WithFileName(ctx, "report.pdf")
	WithContext(ctx, slog.New(h)).Info("x")

	got := map[string]string{}
	for _, a := range h.attrs {
		got[a.Key] = a.Value.String()
	}
	if got[FieldCorrelationID] != "abc" || got[FieldFileName] != "report.pdf" {
		t.Fatalf("unexpected context attrs %v", got)
	}
}

func TestWithContextEmpty(t *testing.T) {
	base := NewNop()
	if WithContext(context.Background(), base) != base {
		t.Fatal("expected same logger when context has no fields")
	}
}
