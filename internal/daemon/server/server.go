// Package server implements the gRPC control server for the supervisor.
// It listens on a unix socket inside the suntray dotdir; the CLI and the
// interactive temperature adjuster are its clients.
package server

import (
	"fmt"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"

	"github.com/suntray-io/suntray/internal/daemon/controller"
)

// Server is the supervisor's gRPC control server.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
	socketPath string
	controller *controller.Controller
	startedAt  time.Time
	shutdownCh chan struct{}
}

// New creates a server listening on the given unix socket path. A stale
// socket file from a crashed instance is removed first; instance liveness is
// guarded separately by the daemon.yaml PID check.
func New(socketPath string, ctrl *controller.Controller) (*Server, error) {
	if err := os.Remove(socketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove stale socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", socketPath, err)
	}

	srv := &Server{
		grpcServer: grpc.NewServer(),
		listener:   listener,
		socketPath: socketPath,
		controller: ctrl,
		startedAt:  time.Now().UTC(),
		shutdownCh: make(chan struct{}),
	}

	RegisterDaemonServiceServer(srv.grpcServer, &daemonService{server: srv})

	return srv, nil
}

// SocketPath returns the unix socket the server is listening on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// ShutdownRequested returns a channel closed when a client asks the
// supervisor to exit.
func (s *Server) ShutdownRequested() <-chan struct{} {
	return s.shutdownCh
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	return s.grpcServer.Serve(s.listener)
}

// Stop gracefully stops the server and removes the socket file.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
	_ = os.Remove(s.socketPath)
}
