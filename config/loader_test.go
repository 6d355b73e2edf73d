package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
api:
  base_url: https://api.example.com
  read_timeout: 5s
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	type apiConfig struct {
		BaseURL     string        `mapstructure:"base_url"`
		ReadTimeout time.Duration `mapstructure:"read_timeout"`
	}
	type testConfig struct {
		API     apiConfig `mapstructure:"api"`
		Logging struct {
			Level string `mapstructure:"level"`
		} `mapstructure:"logging"`
	}

	var cfg testConfig
	if err := Load("test-service", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("expected base_url from yaml, got %q", cfg.API.BaseURL)
	}
	if cfg.API.ReadTimeout != 5*time.Second {
		t.Errorf("expected read_timeout 5s, got %v", cfg.API.ReadTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	type testConfig struct {
		Name string `mapstructure:"name"`
	}

	var cfg testConfig
	// With no config file found, Load should still succeed (just empty config).
	if err := Load("nonexistent-service", &cfg, WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := "api:\n  token: from-yaml\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	os.Setenv("API_TOKEN", "from-env")
	defer os.Unsetenv("API_TOKEN")

	type testConfig struct {
		API struct {
			Token string `mapstructure:"token"`
		} `mapstructure:"api"`
	}

	var cfg testConfig
	if err := Load("test-service", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.Token != "from-env" {
		t.Errorf("expected env to override yaml, got %q", cfg.API.Token)
	}
}

func TestConfigSearchUsesFileSystem(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/config.yml": true,
	}}
	got := findFirst(fs, configSearchPaths("my-svc"))
	if got != "./config/config.yml" {
		t.Errorf("expected ./config/config.yml, got %q", got)
	}
}

func TestWithFileSystemOption(t *testing.T) {
	var o Options
	fs := &mockFS{}
	WithFileSystem(fs)(&o)
	if o.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
}

func TestWithConfigFileOption(t *testing.T) {
	var o Options
	WithConfigFile("/path/to/config.yml")(&o)
	if o.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", o.ConfigFile)
	}
}

func TestWithEnvFileOption(t *testing.T) {
	var o Options
	WithEnvFile("/path/to/.env")(&o)
	if o.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", o.EnvFile)
	}
}
