package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/kbukum/restclient/httpclient"
	"github.com/kbukum/restclient/logger"
)

// Client is a JSON-focused REST client that wraps the base HTTP client.
// All requests use Content-Type: application/json and Accept: application/json.
type Client struct {
	http *httpclient.Client
}

// New creates a new REST client from the given config.
// JSON headers are applied automatically.
func New(cfg httpclient.Config) (*Client, error) {
	if cfg.Headers == nil {
		cfg.Headers = make(map[string]string)
	}
	if _, ok := cfg.Headers["Content-Type"]; !ok {
		cfg.Headers["Content-Type"] = "application/json"
	}
	if _, ok := cfg.Headers["Accept"]; !ok {
		cfg.Headers["Accept"] = "application/json"
	}

	c, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// NewFromClient creates a REST client from an existing HTTP client.
func NewFromClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// Option adjusts the client configuration used by NewBasic and NewBearer.
type Option func(*httpclient.Config)

// WithBaseURL sets the base URL prepended to request paths.
func WithBaseURL(baseURL string) Option {
	return func(cfg *httpclient.Config) { cfg.BaseURL = baseURL }
}

// WithConnectTimeout overrides the default 10s connect timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(cfg *httpclient.Config) { cfg.ConnectTimeout = d }
}

// WithReadTimeout overrides the default 10s read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(cfg *httpclient.Config) { cfg.ReadTimeout = d }
}

// WithTLS sets TLS settings for the transport.
func WithTLS(tls *httpclient.TLSConfig) Option {
	return func(cfg *httpclient.Config) { cfg.TLS = tls }
}

// WithLogger overrides the logger used for request failures.
func WithLogger(l *logger.Logger) Option {
	return func(cfg *httpclient.Config) { cfg.Logger = l }
}

// NewBasic creates a REST client authenticating with HTTP basic auth.
func NewBasic(username, password string, opts ...Option) (*Client, error) {
	cfg := httpclient.Config{Auth: httpclient.BasicAuth(username, password)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// NewBearer creates a REST client authenticating with a bearer token.
func NewBearer(token string, opts ...Option) (*Client, error) {
	cfg := httpclient.Config{Auth: httpclient.BearerAuth(token)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// Get performs a GET request against target, appending each params entry
// as a query parameter, and returns the response body as UTF-8 text.
// Target may be a full URL or a path relative to the configured base URL.
func (c *Client) Get(ctx context.Context, target string, params map[string]string) (string, error) {
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   target,
		Query:  params,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GetObject performs a GET request and decodes the JSON response body
// into type T. A body that cannot be decoded yields an error satisfying
// httpclient.IsDecode, distinct from transport failures. An empty body
// yields the zero value of T.
func GetObject[T any](ctx context.Context, c *Client, target string) (T, error) {
	var data T
	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   target,
	})
	if err != nil {
		return data, err
	}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return data, httpclient.NewDecodeError(err)
		}
	}
	return data, nil
}

// Post performs a POST request with a JSON string body and returns the
// response body as UTF-8 text.
func (c *Client) Post(ctx context.Context, target, body string) (string, error) {
	resp, err := c.Exchange(ctx, http.MethodPost, target, body)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// PostResponse performs a POST request with a JSON string body and returns
// the raw response.
func (c *Client) PostResponse(ctx context.Context, target, body string) (*httpclient.Response, error) {
	return c.Exchange(ctx, http.MethodPost, target, body)
}

// Put performs a PUT request with a JSON string body and returns the raw
// response.
func (c *Client) Put(ctx context.Context, target, body string) (*httpclient.Response, error) {
	return c.Exchange(ctx, http.MethodPut, target, body)
}

// Delete performs a DELETE request with a JSON string body and returns the
// raw response.
func (c *Client) Delete(ctx context.Context, target, body string) (*httpclient.Response, error) {
	return c.Exchange(ctx, http.MethodDelete, target, body)
}

// Exchange is the shared primitive behind the verb helpers. It issues a
// request with the given method and target; a blank body (empty or
// whitespace only) sends no entity, a non-blank body is sent exactly as
// given under application/json. On a non-2xx status both the populated
// response and the classified error are returned.
func (c *Client) Exchange(ctx context.Context, method, target, body string) (*httpclient.Response, error) {
	req := httpclient.Request{
		Method: method,
		Path:   target,
	}
	if strings.TrimSpace(body) != "" {
		req.Body = body
	}
	return c.http.Do(ctx, req)
}
