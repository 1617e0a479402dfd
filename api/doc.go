// Package api is the JSON-over-HTTPS transport for the OpenLearn REST API.
//
// # Design
//
// Client wraps a single net/http client. Every call goes through one do()
// helper: it attaches the bearer credential from the configured
// TokenSource, tags the request with an X-Request-ID, decodes 2xx bodies,
// and maps any non-2xx response to an [*Error] carrying the server's
// "message" field.
//
// # Architecture boundaries
//
// This package owns wire formats and HTTP mechanics only. It holds no
// session state: the credential is pulled per request from the
// TokenSource, which the learnkit root package binds to its session.
//
// # What this package must NOT do
//
//   - Persist anything.
//   - Interpret roles or make authorization decisions.
//   - Retry or time out on its own; timeout policy belongs to the
//     injected http.Client.
package api
