// Package menu provides the numbered text menus of the front desk.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	engineinput "frontdesk/pkg/engine/input"
	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item activation.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetMenuItems returns the items to show. It is called on every pass so
	// the menu can change between choices.
	GetMenuItems() []MenuItem
	// OnActivate is called when the user picks an item. Returns true if the
	// menu should close. An error ends the menu and is returned by RunMenu.
	OnActivate(s *state.Session, item MenuItem, index int) (shouldClose bool, err error)
	// OnExit is called when the menu closes normally.
	OnExit(s *state.Session)
}

// RunMenu shows the handler's items and dispatches choices until the handler
// closes the menu or the user quits. Input errors, including io.EOF, are
// returned as is.
func RunMenu(s *state.Session, handler MenuHandler) error {
	for {
		items := handler.GetMenuItems()

		renderer.RenderFrame(s)
		renderMenu(handler.GetTitle(), items)

		intent, err := renderer.GetInput(i18n.T("SELECT_OPTION", choiceList(items)))
		if err != nil {
			return err
		}

		switch intent.Action {
		case engineinput.ActionSelect:
			index := intent.Choice - 1
			if index >= len(items) || !items[index].IsSelectable() {
				logMessage(s, "DENIED{INVALID_CHOICE}")
				continue
			}
			shouldClose, err := handler.OnActivate(s, items[index], index)
			if err != nil {
				return err
			}
			if shouldClose {
				handler.OnExit(s)
				return nil
			}
		case engineinput.ActionHelp:
			showHelp(s, items)
		case engineinput.ActionQuit:
			handler.OnExit(s)
			return nil
		default:
			logMessage(s, "DENIED{INVALID_CHOICE}")
		}
	}
}

func renderMenu(title string, items []MenuItem) {
	renderer.ShowMessage("")
	renderer.ShowMessage(renderer.StyleText("------"+title+"------", renderer.StyleTitle))
	for i, item := range items {
		label := fmt.Sprintf("%d. %s", i+1, item.GetLabel())
		if !item.IsSelectable() {
			label = renderer.StyleText(label, renderer.StyleSubtle)
		}
		renderer.ShowMessage(label)
	}
	renderer.ShowMessage(renderer.FormatText("SUBTLE{MENU_INSTRUCTIONS}"))
}

func showHelp(s *state.Session, items []MenuItem) {
	for i, item := range items {
		if !item.IsSelectable() {
			continue
		}
		logMessage(s, "%d. %s: %s", i+1, renderer.StyleText(item.GetLabel(), renderer.StyleAction), item.GetHelpText())
	}

	bindings := engineinput.GetBindingsByAction()
	for _, act := range []engineinput.Action{engineinput.ActionHelp, engineinput.ActionQuit} {
		logMessage(s, "%s: %s", renderer.StyleText(engineinput.ActionName(act), renderer.StyleSubtle), strings.Join(bindings[act], ", "))
	}
}

// choiceList renders the selectable option numbers as "1/2/3".
func choiceList(items []MenuItem) string {
	choices := make([]string, 0, len(items))
	for i, item := range items {
		if item.IsSelectable() {
			choices = append(choices, strconv.Itoa(i+1))
		}
	}
	return strings.Join(choices, "/")
}

// logMessage formats msg with the renderer's markup and queues it for the
// next frame.
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.FormatText(msg, a...))
}
