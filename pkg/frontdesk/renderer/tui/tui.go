package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"frontdesk/pkg/engine/input"
	"frontdesk/pkg/engine/terminal"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
)

const bannerEdge = "*~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~*"

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// Options configures a TUIRenderer.
type Options struct {
	// NoColor disables ANSI styling for all output.
	NoColor bool
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in     *input.LineReader
	inFile *os.File
	out    io.Writer
	opts   Options

	colorTitle       color.Style
	colorRoom        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSuccess     color.Style
	colorAvailable   color.Style
	colorUnavailable color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer reading from in and writing to out
func New(in io.Reader, out io.Writer, opts Options) *TUIRenderer {
	t := &TUIRenderer{
		in:   input.NewLineReader(in),
		out:  out,
		opts: opts,
	}
	if f, ok := in.(*os.File); ok {
		t.inFile = f
	}
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	color.Enable = !t.opts.NoColor

	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorRoom = color.Style{color.FgBlue, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen}
	t.colorAvailable = color.Style{color.FgGreen, color.OpBold}
	t.colorUnavailable = color.Style{color.FgRed}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout || !terminal.IsTerminal(os.Stdout) {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// RenderFrame prints the pending messages and clears them
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	if len(s.Messages) == 0 {
		return
	}
	fmt.Fprintln(t.out)
	for _, msg := range s.Messages {
		fmt.Fprintln(t.out, msg)
	}
	s.ClearMessages()
}

// ShowBanner prints text between two rules, centered on the terminal
func (t *TUIRenderer) ShowBanner(text string) {
	fmt.Fprintln(t.out)
	t.printStringCenter(t.colorSubtle.Sprint(bannerEdge))
	t.printStringCenter(t.colorTitle.Sprint(text))
	t.printStringCenter(t.colorSubtle.Sprint(bannerEdge))
}

// GetInput prompts and maps the typed line to a high-level Intent.
func (t *TUIRenderer) GetInput(prompt string) (input.Intent, error) {
	line, err := t.ReadLine(prompt)
	if err != nil {
		return input.Intent{}, err
	}
	return input.MapToIntent(input.RawInput{Code: line}), nil
}

// ReadLine prompts and returns the next line of input
func (t *TUIRenderer) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	return t.in.ReadLine()
}

// ReadSecret prompts for a line without echo when input is a terminal.
// Otherwise it falls back to a plain line read.
func (t *TUIRenderer) ReadSecret(prompt string) (string, error) {
	if !terminal.IsTerminal(t.inFile) {
		return t.ReadLine(prompt)
	}
	fmt.Fprint(t.out, prompt)
	secret, err := terminal.ReadSecret(t.inFile)
	fmt.Fprintln(t.out)
	return secret, err
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleAvailable:
		return t.colorAvailable.Sprint(text)
	case renderer.StyleUnavailable:
		return t.colorUnavailable.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "OK":
			val = t.colorSuccess.Sprint(dynamicGet(operand))
		case "DENIED":
			val = t.colorDenied.Sprint(dynamicGet(operand))
		case "SUBTLE":
			val = t.colorSubtle.Sprint(dynamicGet(operand))
		default:
			val = match[0]
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Width returns the terminal width, or terminal.DefaultWidth when output is
// not a terminal.
func (t *TUIRenderer) Width() int {
	if f, ok := t.out.(*os.File); ok {
		return terminal.GetWidth(f)
	}
	return terminal.DefaultWidth
}

// printStringCenter prints a string centered on the terminal width
func (t *TUIRenderer) printStringCenter(s string) {
	visible := len([]rune(color.ClearCode(s)))
	pad := (t.Width() - visible) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(t.out, strings.Repeat(" ", pad)+s)
}
