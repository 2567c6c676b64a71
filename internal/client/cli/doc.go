// Package cli provides the interactive careerhub command-line client.
//
// It wires configuration, the local session database, the credential service
// client and the route guard into a REPL. Typical flow: restore the cached
// session, start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout against the credential service
//   - Me: fetch the current user and refresh the cached identity
//   - Routes / Open: navigate the view table through the session guard
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
