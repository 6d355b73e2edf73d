// Package httpclient provides a configurable HTTP client with built-in
// authentication, TLS, and connect/read timeout control.
//
// The base Client handles the HTTP protocol concerns. The rest subpackage
// provides a JSON-focused convenience layer on top of it.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL:     "https://api.example.com",
//	    ReadTimeout: 30 * time.Second,
//	    Auth:        httpclient.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/users/123",
//	})
//
// A Client holds no mutable state after construction and may be shared
// across goroutines; concurrency safety of in-flight requests is that of
// the underlying net/http transport.
package httpclient
