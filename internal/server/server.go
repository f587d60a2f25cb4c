package server

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/riverlabs/river/internal/paths"
	"github.com/riverlabs/river/internal/protocol"
)

// File mode applied to the Unix socket. Owner and group get read-write
// (required for connect); others get no access.
const socketMode = 0660

// Holds server configuration.
type Config struct {
	SocketPath string // Override for the Unix socket path. Empty uses the default.
	PIDFile    string // Override for the PID file path. Empty uses the default.
}

// Listens on a Unix domain socket and dispatches control commands.
type Server struct {
	socketPath string        // Path to the Unix socket file.
	pidFile    string        // Path to the PID file.
	listener   net.Listener  // Listener for incoming connections.
	startedAt  time.Time     // Timestamp when the server started.
	requests   int           // Total number of commands processed.
	done       chan struct{} // Closed when the server is asked to stop.
	stop       sync.Once     // Guards closing done.
	mu         sync.Mutex    // Protects requests.
}

// New creates a server instance and prepares its runtime directory.
//
// The socket is not opened until [Server.Start] is called.
func New(cfg Config) (*Server, error) {
	socketPath := cfg.SocketPath
	if socketPath == "" {
		socketPath = paths.Socket()
	}

	pidFile := cfg.PIDFile
	if pidFile == "" {
		pidFile = paths.PIDFile()
	}

	if err := os.MkdirAll(filepath.Dir(socketPath), paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("creating runtime directory: %w", err)
	}

	return &Server{
		socketPath: socketPath,
		pidFile:    pidFile,
		done:       make(chan struct{}),
	}, nil
}

// Start opens the Unix socket and begins accepting connections.
func (s *Server) Start() error {
	listener, err := listen(s.socketPath)
	if err != nil {
		return err
	}

	s.listener = listener
	s.startedAt = time.Now()

	if err := s.writePID(); err != nil {
		slog.Warn("failed to write PID file", "path", s.pidFile, "error", err)
	}

	slog.Info("server listening on socket", "path", s.socketPath)

	go s.accept()
	return nil
}

// Creates the Unix socket listener, removing any stale socket from a
// previous run and restricting access to owner and group.
func listen(socketPath string) (net.Listener, error) {
	os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", socketPath, err)
	}

	if err := os.Chmod(socketPath, socketMode); err != nil {
		listener.Close()
		return nil, fmt.Errorf("restricting socket %s: %w", socketPath, err)
	}

	return listener, nil
}

// Run blocks until the service decides to stop.
//
// The run loop returns when a shutdown command arrives on the control
// socket or the process receives SIGINT or SIGTERM. This is the only
// blocking point of the whole program.
func (s *Server) Run() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case n := <-sig:
		slog.Info("signal received, stopping", "signal", n)
		s.shutdown()
	case <-s.done:
	}
}

// Stop shuts down the server and removes its runtime files.
func (s *Server) Stop() error {
	s.shutdown()

	if s.listener != nil {
		s.listener.Close()
	}

	os.Remove(s.socketPath)
	os.Remove(s.pidFile)

	return nil
}

// Marks the server as done. Idempotent.
func (s *Server) shutdown() {
	s.stop.Do(func() { close(s.done) })
}

// Accepts connections in a loop until the server shuts down.
func (s *Server) accept() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
				slog.Error("accept error", "error", err)
				continue
			}
		}

		go s.handle(conn)
	}
}

// Processes a single connection.
//
// Reads one newline-delimited envelope, dispatches the command, and writes
// the response. The connection is closed after one exchange.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	line, err := reader.ReadBytes('\n')
	if err != nil {
		slog.Error("read error", "error", err)
		return
	}

	env, _, err := protocol.Decode(line)
	if err != nil {
		s.respond(conn, protocol.CmdError, &protocol.ErrorResult{Message: err.Error()})
		return
	}

	slog.Info("command received", "command", env.Command)

	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	s.dispatch(conn, env.Command)
}

// Writes a JSON envelope response to the connection.
func (s *Server) respond(conn net.Conn, cmd protocol.Command, payload any) {
	data, err := protocol.Encode(cmd, payload)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		return
	}
	data = append(data, '\n')
	conn.Write(data)
}

// Writes the daemon PID to the PID file so external tooling can find the
// process and send it signals.
func (s *Server) writePID() error {
	return os.WriteFile(s.pidFile, fmt.Appendf(nil, "%d", os.Getpid()), paths.DefaultFileMode)
}
