package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ui"
)

// hubEventMsg wraps an event from the hub so the session knows to wait for the next one
type hubEventMsg struct {
	msg tea.Msg
}

// sessionModel wraps ui.Model to feed it hub events and log the session lifecycle
type sessionModel struct {
	*ui.Model
	events    <-chan tea.Msg
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return tea.Batch(s.Model.Init(), waitForEvent(s.events))
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hubEventMsg:
		cmd := s.forward(msg.msg)
		return s, tea.Batch(cmd, waitForEvent(s.events))
	case tea.QuitMsg:
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	return s, s.forward(msg)
}

func (s *sessionModel) forward(msg tea.Msg) tea.Cmd {
	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// waitForEvent blocks on the session channel. A closed channel ends the wait.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return hubEventMsg{msg: msg}
	}
}

// teaHandler creates a Bubbletea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	id, events := s.hub.subscribe()
	go func() {
		<-sess.Context().Done()
		s.hub.unsubscribe(id)
	}()

	// SSH mode never uses dev mode
	opts := s.opts
	opts.DevMode = false

	model := &sessionModel{
		Model:     ui.NewModel(s.alarms, s.player, opts),
		events:    events,
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}
