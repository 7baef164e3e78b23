// Package client talks to the DomUnity backend over gRPC.
//
// GRPCClient holds the access and refresh tokens of the current session,
// attaches the access token to every call as "authorization: Bearer <token>"
// and, when a call fails with Unauthenticated, exchanges the refresh token
// for a new access token once and retries. Status codes are mapped to the
// sentinel errors in errors.go; the server's message is kept in the error
// text.
//
// InitDatabase opens the local SQLite database and applies the embedded
// goose migrations.
package client
