package server

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/foliodesk/folio/internal/app"
	"github.com/foliodesk/folio/internal/config"
)

// StartWeb serves the desktop to browsers until the context is
// canceled. Transport details (address, TLS, session limits) come from
// sip's defaults.
func StartWeb(ctx context.Context) error {
	server := sip.NewServer(sip.DefaultConfig())
	return server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()
		m := app.NewDesktop(pty.Width, pty.Height)
		return m, []tea.ProgramOption{tea.WithFPS(config.NormalFPS)}
	})
}
