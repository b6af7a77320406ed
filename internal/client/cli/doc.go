// Package cli provides the interactive Galactic Quest command-line client.
//
// It wires configuration and the gRPC client into a small REPL. Users sign
// up or log in (the password is read without echo), manage skills, log
// practice time, check their rank and the leaderboard, and download exports
// of their time-log ledger into a local directory.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
