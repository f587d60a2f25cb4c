// Package server implements the managed service.
//
// The server listens on a Unix domain socket for JSON-encoded control
// commands. Each connection carries a single request-response exchange:
// the client sends a newline-delimited envelope, the server dispatches the
// command, and writes the result back before closing the connection.
//
// The lifecycle mirrors what the bootstrap sequence drives: [New] prepares
// the runtime directory, [Server.Start] opens the socket and begins
// accepting, [Server.Run] blocks until a shutdown command or a terminating
// signal arrives, and [Server.Stop] releases the socket and PID file.
//
// Example usage:
//
//	srv, err := server.New(server.Config{})
//	if err != nil {
//	    return err
//	}
//
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//
//	srv.Run()
package server
