// Package config loads configuration for restclient-based applications.
//
// It merges three sources, in order of increasing precedence:
// a config.yml file, a .env file, and process environment variables.
// The merged result is unmarshaled into a caller-provided struct using
// mapstructure tags.
//
//	type AppConfig struct {
//	    API httpclient.Config `mapstructure:"api"`
//	    Log logger.Config     `mapstructure:"logging"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load("my-service", &cfg); err != nil { ... }
package config
