// Package input turns raw terminal lines into menu intents.
package input

import (
	"sort"
	"strconv"
	"strings"
)

// Action represents a high-level intent at a menu prompt.
type Action int

const (
	ActionNone Action = iota
	ActionSelect
	ActionHelp
	ActionQuit
)

// Intent is what the user asked for. Choice is the 1-based option number
// for ActionSelect and zero otherwise.
type Intent struct {
	Action Action
	Choice int
	Raw    string
}

// RawInput is a line exactly as it was typed.
type RawInput struct {
	Code string
}

// bindings maps typed words to actions. Numbers are handled separately.
var bindings = map[string]Action{
	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,

	"q":      ActionQuit,
	"quit":   ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the bindings to a raw line.
func MapToIntent(raw RawInput) Intent {
	code := strings.ToLower(strings.TrimSpace(raw.Code))
	if act, ok := bindings[code]; ok {
		return Intent{Action: act, Raw: raw.Code}
	}
	if n, err := strconv.Atoi(code); err == nil && n > 0 {
		return Intent{Action: ActionSelect, Choice: n, Raw: raw.Code}
	}
	return Intent{Action: ActionNone, Raw: raw.Code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSelect:
		return "Select"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the word bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
