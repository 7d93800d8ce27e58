// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// session API. Cross-cutting concerns such as session restoration, CSRF
// protection, request tracing, access logging, and panic recovery are
// handled in this package before requests are delegated to the service
// layer.
package http
