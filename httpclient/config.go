package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/restclient/logger"
)

const (
	// DefaultConnectTimeout is applied when Config.ConnectTimeout is zero.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout is applied when Config.ReadTimeout is zero.
	DefaultReadTimeout = 10 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// ConnectTimeout bounds connection establishment (dial). Defaults to 10s.
	ConnectTimeout time.Duration `yaml:"connect_timeout" mapstructure:"connect_timeout"`

	// ReadTimeout bounds the whole request, including reading the response
	// body. Defaults to 10s.
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// Auth configures default authentication applied to all requests.
	// Individual requests can override this.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings for the HTTP transport.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// RequestID attaches a generated X-Request-ID header to each request
	// that does not already carry one.
	RequestID bool `yaml:"request_id" mapstructure:"request_id"`

	// Logger overrides the logger used for request failures.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("httpclient: connect timeout must be positive")
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("httpclient: read timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}
