// Package client talks to the Galactic Quest gRPC backend on behalf of the CLI.
//
// GRPCClient keeps the session tokens, attaches the access token to every
// call through a unary interceptor, and transparently refreshes it once when
// the server answers Unauthenticated with "token expired". gRPC status codes
// are mapped to the sentinel errors in errors.go so callers can use errors.Is.
package client
