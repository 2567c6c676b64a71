// Package client contains the client-side transport for careerhub.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) for the
//     credential service: Register, Login, GetCurrentUser, Logout and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor, transparently
//     refreshes expired tokens, and maps gRPC status codes to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers match with errors.Is:
// ErrUnavailable, ErrUnauthorized, ErrConflict, ErrValidation, ErrNotFound,
// ErrTooManyAttempts. The server's message is kept in the wrapped text so the
// CLI can show it verbatim.
package client
