package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Options holds loader dependencies and optional file overrides.
type Options struct {
	FileSystem FileSystem
	ConfigFile string
	EnvFile    string
}

// Option is a functional option for Load.
type Option func(*Options)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) Option {
	return func(o *Options) { o.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *Options) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// Load loads configuration for the named application into cfg.
// It searches for config.yml and .env files in standard locations, binds
// environment variables, and unmarshals the result into cfg.
func Load(name string, cfg interface{}, opts ...Option) error {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.FileSystem == nil {
		o.FileSystem = &RealFileSystem{}
	}

	configFile := o.ConfigFile
	if configFile == "" {
		configFile = findFirst(o.FileSystem, configSearchPaths(name))
	}
	envFile := o.EnvFile
	if envFile == "" {
		envFile = findFirst(o.FileSystem, envSearchPaths(name))
	}

	v := viper.New()

	// YAML config file is the base layer.
	if configFile != "" && o.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	// .env entries become process environment before binding.
	if envFile != "" && o.FileSystem.Exists(envFile) {
		if err := o.FileSystem.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", name, err)
	}

	return nil
}

// configSearchPaths lists the locations searched for config.yml.
func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./config/%s.yml", name),
		"./config/config.yml",
		"./config.yml",
	}
}

// envSearchPaths lists the locations searched for .env files.
func envSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./.env.%s", name),
		"./.env",
		"./config/.env",
	}
}

func findFirst(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}

// bindEnvVars maps UPPER_SNAKE environment variables onto viper keys so
// that API_TIMEOUT overrides the api.timeout yaml key.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		lower := strings.ToLower(pair[0])
		v.Set(lower, pair[1])
		if strings.Contains(lower, "_") {
			v.Set(strings.ReplaceAll(lower, "_", "."), pair[1])
		}
	}
}
