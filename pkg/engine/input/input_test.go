package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	r := NewLineReader(strings.NewReader("one\r\ntwo\nthree"))

	for _, want := range []string{"one", "two", "three"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_EmptyLine(t *testing.T) {
	r := NewLineReader(strings.NewReader("\n"))
	got, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		in     string
		action Action
		choice int
	}{
		{"1", ActionSelect, 1},
		{" 4 ", ActionSelect, 4},
		{"0", ActionNone, 0},
		{"-2", ActionNone, 0},
		{"q", ActionQuit, 0},
		{"QUIT", ActionQuit, 0},
		{"?", ActionHelp, 0},
		{"help", ActionHelp, 0},
		{"banana", ActionNone, 0},
		{"", ActionNone, 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := MapToIntent(RawInput{Code: tc.in})
			assert.Equal(t, tc.action, got.Action, "action %s", ActionName(got.Action))
			assert.Equal(t, tc.choice, got.Choice)
			assert.Equal(t, tc.in, got.Raw)
		})
	}
}

func TestGetBindingsByAction(t *testing.T) {
	b := GetBindingsByAction()
	assert.Equal(t, []string{"escape", "q", "quit"}, b[ActionQuit])
	assert.Equal(t, []string{"?", "h", "help"}, b[ActionHelp])
}
