// Package server exposes the folio desktop to remote clients: an SSH
// front end built on wish and a browser front end built on sip. Every
// session gets its own desktop model sized to the session PTY.
package server

import (
	"context"
	"errors"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"charm.land/ssh"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/config"
)

// SSHConfig configures the SSH front end.
type SSHConfig struct {
	Host    string
	Port    string
	KeyPath string // Host key path, generated on first start
}

// StartSSH runs the SSH server until the context is canceled or the
// listener fails. The input handler must be installed before the first
// session connects.
func StartSSH(ctx context.Context, cfg *SSHConfig) error {
	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.KeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// sessionHandler builds a fresh desktop for one SSH session.
func sessionHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	m := app.NewDesktop(pty.Window.Width, pty.Window.Height)
	return m, []tea.ProgramOption{tea.WithFPS(config.NormalFPS)}
}
