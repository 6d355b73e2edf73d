// Package version provides build version information for restclient.
//
// Version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/restclient/version.Version=1.0.0"
package version
