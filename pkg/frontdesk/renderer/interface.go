package renderer

import (
	"frontdesk/pkg/engine/input"
	"frontdesk/pkg/frontdesk/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleRoom
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSuccess
	StyleAvailable
	StyleUnavailable
	StyleSubtle
)

// Renderer defines the interface for front desk output backends.
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame writes out and clears the session's pending messages
	RenderFrame(s *state.Session)

	// ShowBanner draws a centered banner line
	ShowBanner(text string)

	// GetInput prompts for a menu choice and returns what the user asked for
	GetInput(prompt string) (input.Intent, error)

	// ReadLine prompts for a free-form line
	ReadLine(prompt string) (string, error)

	// ReadSecret prompts for a line that should not be echoed
	ReadSecret(prompt string) (string, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user immediately
	ShowMessage(msg string)

	// Width returns the number of columns available
	Width() int
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
