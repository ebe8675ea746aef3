package server

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"workbench/internal/logging"
	"workbench/internal/ui"
)

// sessionModel wraps ui.Model to release per-session resources
type sessionModel struct {
	*ui.Model
	cleanup   func()
	once      sync.Once
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		s.close()
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) close() {
	s.once.Do(func() {
		if s.cleanup != nil {
			s.cleanup()
		}
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	})
}

// teaHandler creates a model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, cleanup := s.newModel()
	wrapped := &sessionModel{
		Model:     model,
		cleanup:   cleanup,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	// The program may end without a QuitMsg when the client disconnects
	go func() {
		<-sess.Context().Done()
		wrapped.close()
	}()

	return wrapped, []tea.ProgramOption{tea.WithAltScreen()}
}
