// Package client implements the command-line client for the session API.
//
// It wires an HTTP session client with a file-persisted cookie jar into
// a small command dispatcher, mirroring the browser flow: restore the
// session on start, bootstrap the anti-forgery token when needed, and
// keep the session cookie across invocations.
package client
