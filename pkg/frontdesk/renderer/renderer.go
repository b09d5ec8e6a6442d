package renderer

import (
	"errors"
	"fmt"

	"frontdesk/pkg/engine/input"
	"frontdesk/pkg/frontdesk/state"
)

// DefaultWidth is used when no renderer is set.
const DefaultWidth = 80

// ErrNoRenderer is returned by the input helpers when no renderer is set.
var ErrNoRenderer = errors.New("renderer: none set")

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame flushes the session's messages
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// ShowBanner draws a banner line
func ShowBanner(text string) {
	if Current != nil {
		Current.ShowBanner(text)
	}
}

// GetInput gets a menu intent from the current renderer
func GetInput(prompt string) (input.Intent, error) {
	if Current != nil {
		return Current.GetInput(prompt)
	}
	return input.Intent{}, ErrNoRenderer
}

// ReadLine reads a free-form line from the current renderer
func ReadLine(prompt string) (string, error) {
	if Current != nil {
		return Current.ReadLine(prompt)
	}
	return "", ErrNoRenderer
}

// ReadSecret reads an unechoed line from the current renderer
func ReadSecret(prompt string) (string, error) {
	if Current != nil {
		return Current.ReadSecret(prompt)
	}
	return "", ErrNoRenderer
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return fmt.Sprintf(msg, args...)
}

// ShowMessage displays a message immediately
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Width returns the display width
func Width() int {
	if Current != nil {
		return Current.Width()
	}
	return DefaultWidth
}
