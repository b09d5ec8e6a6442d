package menu

import (
	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
)

// Authenticator checks the manager login. The front desk only ever has one
// manager account.
type Authenticator interface {
	UsernameMatches(username string) bool
	PasswordMatches(password string) bool
}

// ManagerLogin asks for the manager's username and password. A wrong username
// is denied before the password is asked for. On success the manager menu
// runs, and the session is logged out again when it returns.
func ManagerLogin(s *state.Session, auth Authenticator) error {
	username, err := renderer.ReadLine(i18n.T("USERNAME_PROMPT"))
	if err != nil {
		return err
	}
	if !auth.UsernameMatches(username) {
		logMessage(s, "DENIED{INCORRECT_USERNAME}")
		return nil
	}

	password, err := renderer.ReadSecret(i18n.T("PASSWORD_PROMPT"))
	if err != nil {
		return err
	}
	if !auth.PasswordMatches(password) {
		logMessage(s, "DENIED{INCORRECT_PASSWORD}")
		return nil
	}

	s.Login()
	defer s.Logout()
	logMessage(s, "OK{LOGIN_SUCCESS}")

	return RunMenu(s, &ManagerMenuHandler{})
}

// ManagerMenuAction represents the action type for manager menu items.
type ManagerMenuAction int

const (
	ManagerMenuActionUpdatePrice ManagerMenuAction = iota
	ManagerMenuActionUpdateAvailability
	ManagerMenuActionViewAll
	ManagerMenuActionLogout
)

// ManagerMenuItem represents a menu item in the manager menu.
type ManagerMenuItem struct {
	Label  string
	Action ManagerMenuAction
}

func (m *ManagerMenuItem) GetLabel() string {
	return m.Label
}

func (m *ManagerMenuItem) IsSelectable() bool {
	return true
}

func (m *ManagerMenuItem) GetHelpText() string {
	switch m.Action {
	case ManagerMenuActionUpdatePrice:
		return i18n.T("HELP_UPDATE_PRICE")
	case ManagerMenuActionUpdateAvailability:
		return i18n.T("HELP_UPDATE_AVAILABILITY")
	case ManagerMenuActionViewAll:
		return i18n.T("HELP_VIEW_ALL")
	case ManagerMenuActionLogout:
		return i18n.T("HELP_LOGOUT")
	default:
		return ""
	}
}

// ManagerMenuHandler handles the menu shown after a manager logs in.
type ManagerMenuHandler struct{}

func (h *ManagerMenuHandler) GetTitle() string {
	return i18n.T("MANAGER_MENU_TITLE")
}

func (h *ManagerMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&ManagerMenuItem{Label: i18n.T("MENU_UPDATE_PRICE"), Action: ManagerMenuActionUpdatePrice},
		&ManagerMenuItem{Label: i18n.T("MENU_UPDATE_AVAILABILITY"), Action: ManagerMenuActionUpdateAvailability},
		&ManagerMenuItem{Label: i18n.T("MENU_VIEW_ALL"), Action: ManagerMenuActionViewAll},
		&ManagerMenuItem{Label: i18n.T("MENU_LOGOUT"), Action: ManagerMenuActionLogout},
	}
}

func (h *ManagerMenuHandler) OnActivate(s *state.Session, item MenuItem, index int) (bool, error) {
	managerItem, ok := item.(*ManagerMenuItem)
	if !ok {
		return false, nil
	}

	switch managerItem.Action {
	case ManagerMenuActionUpdatePrice:
		return false, UpdatePrice(s)
	case ManagerMenuActionUpdateAvailability:
		return false, UpdateAvailability(s)
	case ManagerMenuActionViewAll:
		ShowAllRooms(s)
		return false, nil
	case ManagerMenuActionLogout:
		return true, nil
	}
	return false, nil
}

// OnExit logs the manager out.
func (h *ManagerMenuHandler) OnExit(s *state.Session) {
	s.Logout()
	logMessage(s, "GT{LOGGING_OUT}")
}
