package httpclient

import (
	"testing"
	"time"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.ConnectTimeout != 10*time.Second {
		t.Errorf("expected 10s connect timeout, got %v", cfg.ConnectTimeout)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("expected 10s read timeout, got %v", cfg.ReadTimeout)
	}
}

func TestConfigApplyDefaults_KeepsExplicit(t *testing.T) {
	cfg := Config{
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    45 * time.Second,
	}
	cfg.ApplyDefaults()
	if cfg.ConnectTimeout != 2*time.Second {
		t.Errorf("explicit connect timeout overwritten: %v", cfg.ConnectTimeout)
	}
	if cfg.ReadTimeout != 45*time.Second {
		t.Errorf("explicit read timeout overwritten: %v", cfg.ReadTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{ConnectTimeout: time.Second, ReadTimeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg = Config{ConnectTimeout: -time.Second, ReadTimeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative connect timeout")
	}

	cfg = Config{ConnectTimeout: time.Second, ReadTimeout: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero read timeout")
	}
}

func TestConfigValidate_TLS(t *testing.T) {
	cfg := Config{
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
		TLS:            &TLSConfig{CertFile: "cert.pem"},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cert without key")
	}
}

func TestNewAppliesExplicitTimeouts(t *testing.T) {
	c, err := New(Config{ReadTimeout: 3 * time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Unwrap().Timeout != 3*time.Second {
		t.Errorf("expected 3s read timeout on client, got %v", c.Unwrap().Timeout)
	}
}
