package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"workbench/internal/logging"
	"workbench/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// ModelFactory builds a fresh TUI model for one SSH session.
// The returned cleanup runs when the session ends.
type ModelFactory func() (*ui.Model, func())

// Options configures the SSH server
type Options struct {
	AuthorizedKeysPath string // Defaults to ~/.ssh/authorized_keys
	HostKeyPath        string
	Host               string
	Port               int
}

// Server serves the workbench TUI over SSH
type Server struct {
	address    string
	newModel   ModelFactory
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options, newModel ModelFactory) (*Server, error) {
	if opts.AuthorizedKeysPath == "" {
		path, err := defaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		opts.AuthorizedKeysPath = path
	}

	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:  net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		newModel: newModel,
	}

	// Middleware executes last to first
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(publicKeyHandler(opts.AuthorizedKeysPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Start starts the SSH server and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the server until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
