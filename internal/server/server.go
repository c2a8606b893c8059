package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/services"
	"github.com/renato0307/despertar/internal/ui"
)

const shutdownTimeout = 30 * time.Second

// Config configures the SSH server
type Config struct {
	AuthorizedKeysPath string
	HostKeyPath        string
	Host               string
	Port               string
}

// Server serves the alarm TUI over SSH. Every session edits the same alarms
// and hears about the same fire events.
type Server struct {
	addr               string
	alarms             *services.AlarmService
	authorizedKeysPath string
	hub                *hub
	opts               ui.ModelOptions
	player             *services.SoundPlayer
	wishServer         *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, alarms *services.AlarmService, player *services.SoundPlayer, opts ui.ModelOptions) (*Server, error) {
	if cfg.AuthorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.AuthorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		addr:               net.JoinHostPort(cfg.Host, cfg.Port),
		alarms:             alarms,
		authorizedKeysPath: cfg.AuthorizedKeysPath,
		hub:                newHub(),
		opts:               opts,
		player:             player,
	}

	// Note: Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.addr
}

// Serve listens until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

func (s *Server) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fp := fingerprint(key)
	user := ctx.User()

	if !isKeyAuthorized(key, s.authorizedKeysPath) {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fp,
			"key_type", key.Type())
		return false
	}

	logging.Logger.Info("SSH key authenticated",
		"user", user,
		"fingerprint", fp,
		"key_type", key.Type())
	return true
}
