package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "my-service" {
		t.Errorf("expected service 'my-service', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("httpclient")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestWithFields(t *testing.T) {
	l := NewDefault("test")
	fl := l.WithFields(map[string]interface{}{"key": "value"})
	if fl == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithError(t *testing.T) {
	l := NewDefault("test")
	el := l.WithError(errors.New("boom"))
	if el == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFromZerolog(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "test")
	l.Error("something broke", Fields(FieldURL, "http://example.com/x"))
	out := buf.String()
	if !strings.Contains(out, "something broke") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "http://example.com/x") {
		t.Errorf("expected url field in output, got %q", out)
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if got := GetGlobalLogger(); got != l {
		t.Error("expected global logger to be the one set")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("op", "save", "count", 42)
	if m["op"] != "save" {
		t.Errorf("expected op=save, got %v", m["op"])
	}
	if m["count"] != 42 {
		t.Errorf("expected count=42, got %v", m["count"])
	}
}

func TestFieldsOddArgs(t *testing.T) {
	m := Fields("op", "save", "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 field, got %d", len(m))
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("fetch", errors.New("boom"))
	if m[FieldOperation] != "fetch" {
		t.Errorf("expected operation=fetch, got %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("expected error=boom, got %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("fetch", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected duration_ms=1500, got %v", m[FieldDuration])
	}
}

func TestMergeWithError(t *testing.T) {
	m := MergeWithError(nil, errors.New("boom"))
	if m[FieldError] != "boom" {
		t.Errorf("expected error=boom, got %v", m[FieldError])
	}
}
