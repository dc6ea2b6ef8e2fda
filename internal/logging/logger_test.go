package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestConsoleLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("catalog loaded", String("binary", "brew"), Int("entries", 42))
	logger.Debug("should be filtered")

	out := buf.String()
	if !strings.Contains(out, "catalog loaded") {
		t.Fatalf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "binary=brew") || !strings.Contains(out, "entries=42") {
		t.Fatalf("missing attrs in output: %q", out)
	}
	if strings.Contains(out, "should be filtered") {
		t.Fatalf("debug record should have been filtered: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("explicit writer should disable color: %q", out)
	}
}

func TestConsoleLoggerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Warn("unresolved app", String("app", "Visual Studio Code"))

	if !strings.Contains(buf.String(), `app="Visual Studio Code"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With(String("run_id", "abc")).Info("resolution complete", Int("apps", 3))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode JSON log line: %v", err)
	}
	if record["msg"] != "resolution complete" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["run_id"] != "abc" {
		t.Fatalf("unexpected run_id: %v", record["run_id"])
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
