// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: binding the listener, running background
// workers alongside the server, reacting to stop signals and shutting down
// gracefully within the configured timeout.
package server
