package menu

import (
	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionManagerLogin MainMenuAction = iota
	MainMenuActionGuestView
	MainMenuActionExit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionManagerLogin:
		return i18n.T("HELP_MANAGER_LOGIN")
	case MainMenuActionGuestView:
		return i18n.T("HELP_GUEST_VIEW")
	case MainMenuActionExit:
		return i18n.T("HELP_EXIT")
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu.
type MainMenuHandler struct {
	auth Authenticator
}

// NewMainMenuHandler creates a main menu that checks manager logins with auth.
func NewMainMenuHandler(auth Authenticator) *MainMenuHandler {
	return &MainMenuHandler{auth: auth}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return i18n.T("MAIN_MENU_TITLE")
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: i18n.T("MENU_MANAGER_LOGIN"), Action: MainMenuActionManagerLogin},
		&MainMenuItem{Label: i18n.T("MENU_GUEST_VIEW"), Action: MainMenuActionGuestView},
		&MainMenuItem{Label: i18n.T("MENU_EXIT"), Action: MainMenuActionExit},
	}
}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(s *state.Session, item MenuItem, index int) (bool, error) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, nil
	}

	switch mainItem.Action {
	case MainMenuActionManagerLogin:
		return false, ManagerLogin(s, h.auth)
	case MainMenuActionGuestView:
		GuestView(s)
		return false, nil
	case MainMenuActionExit:
		return true, nil
	}
	return false, nil
}

// OnExit is called when the main menu closes, which ends the program.
func (h *MainMenuHandler) OnExit(s *state.Session) {
	logMessage(s, "GT{GOODBYE}")
}

// RunMainMenu shows the banner and runs the main menu until the user exits.
// Pending messages are flushed before returning, also on error.
func RunMainMenu(s *state.Session, auth Authenticator) error {
	renderer.ShowBanner(i18n.T("BANNER_TITLE"))

	err := RunMenu(s, NewMainMenuHandler(auth))
	renderer.RenderFrame(s)
	return err
}
