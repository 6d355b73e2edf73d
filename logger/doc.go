// Package logger provides structured logging for restclient
// using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("my-service").WithComponent("httpclient")
//	log.Error("request failed", logger.Fields(
//	    logger.FieldMethod, "GET",
//	    logger.FieldURL, "https://api.example.com/users",
//	))
package logger
