package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/pkg/engine/input"
	"frontdesk/pkg/engine/terminal"
	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
	"frontdesk/pkg/hotel/catalog"
)

func newTestRenderer(t *testing.T, in string) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	require.NoError(t, i18n.Load("en"))
	out := &bytes.Buffer{}
	r := New(strings.NewReader(in), out, Options{NoColor: true})
	r.Init()
	return r, out
}

func TestFormatText_Markup(t *testing.T) {
	r, _ := newTestRenderer(t, "")

	assert.Equal(t, "Invalid choice, please try again.", r.FormatText("GT{INVALID_CHOICE}"))
	assert.Equal(t, "Room 101: $100", r.FormatText("Room ROOM{%d}: $%s", 101, "100"))
	assert.Equal(t, "Logout", r.FormatText("ACTION{Logout}"))
	assert.Equal(t, "Access denied. User is not authenticated.", r.FormatText("DENIED{ACCESS_DENIED}"))
}

func TestFormatText_UnknownFunctionLeftAlone(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	assert.Equal(t, "see FOO{bar}", r.FormatText("see FOO{bar}"))
}

func TestGetInput(t *testing.T) {
	r, out := newTestRenderer(t, "2\nq\n")

	intent, err := r.GetInput("> ")
	require.NoError(t, err)
	assert.Equal(t, input.ActionSelect, intent.Action)
	assert.Equal(t, 2, intent.Choice)

	intent, err = r.GetInput("> ")
	require.NoError(t, err)
	assert.Equal(t, input.ActionQuit, intent.Action)

	_, err = r.GetInput("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestReadSecret_FallsBackToLine(t *testing.T) {
	r, out := newTestRenderer(t, "admin123\n")

	secret, err := r.ReadSecret("Enter password: ")
	require.NoError(t, err)
	assert.Equal(t, "admin123", secret)
	assert.Equal(t, "Enter password: ", out.String())
}

func TestRenderFrame_FlushesMessages(t *testing.T) {
	r, out := newTestRenderer(t, "")
	s := state.NewSession(catalog.Seed())

	r.RenderFrame(s)
	assert.Empty(t, out.String())

	s.AddMessage("one")
	s.AddMessage("two")
	r.RenderFrame(s)

	assert.Equal(t, "\none\ntwo\n", out.String())
	assert.Empty(t, s.Messages)
}

func TestShowBanner_Centered(t *testing.T) {
	r, out := newTestRenderer(t, "")
	r.ShowBanner("Hello")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Repeat(" ", (terminal.DefaultWidth-5)/2)+"Hello", lines[2])
	assert.Equal(t, terminal.DefaultWidth, r.Width())
}

func TestStyleText_NoColor(t *testing.T) {
	r, _ := newTestRenderer(t, "")
	for _, style := range []renderer.TextStyle{
		renderer.StyleNormal, renderer.StyleTitle, renderer.StyleDenied,
		renderer.StyleAvailable, renderer.StyleUnavailable,
	} {
		assert.Equal(t, "text", r.StyleText("text", style))
	}
}
