// Package cli is the interactive DomUnity command-line client.
//
// It opens the local session database, connects to the backend and runs a
// REPL with signup, login, whoami, refresh, logout and ping. A session saved
// by an earlier run is restored on start.
package cli
