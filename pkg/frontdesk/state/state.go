package state

import (
	"frontdesk/pkg/hotel/access"
	"frontdesk/pkg/hotel/catalog"
)

// maxMessages bounds the pending message log between two frames.
const maxMessages = 8

// Session is the state of one interactive run of the front desk.
type Session struct {
	Catalog *catalog.Catalog

	// ManagerLoggedIn is set by a successful manager login and cleared on
	// logout. It is the only thing the access guard is told about the caller.
	ManagerLoggedIn bool

	Messages []string
}

// NewSession creates a session owning the given catalog
func NewSession(c *catalog.Catalog) *Session {
	return &Session{
		Catalog:  c,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Login marks the manager as logged in. Credentials are checked by the caller.
func (s *Session) Login() {
	s.ManagerLoggedIn = true
}

// Logout ends the manager's session.
func (s *Session) Logout() {
	s.ManagerLoggedIn = false
}

// Auth returns the context to hand to guarded operations for this caller.
func (s *Session) Auth() access.AuthContext {
	return access.AuthContext{Authenticated: s.ManagerLoggedIn}
}
