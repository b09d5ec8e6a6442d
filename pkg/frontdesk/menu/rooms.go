package menu

import (
	"errors"
	"strconv"
	"strings"

	"frontdesk/pkg/frontdesk/i18n"
	"frontdesk/pkg/frontdesk/renderer"
	"frontdesk/pkg/frontdesk/state"
	"frontdesk/pkg/hotel"
	"frontdesk/pkg/hotel/access"
	"frontdesk/pkg/hotel/catalog"
	"frontdesk/pkg/hotel/room"
)

const maxRuleWidth = 35

// UpdatePrice asks for a room and a new price and applies it through the
// guarded price update. Rejections are reported as messages; only input
// errors are returned.
func UpdatePrice(s *state.Session) error {
	r, err := promptRoom(s)
	if err != nil || r == nil {
		return err
	}

	text, err := renderer.ReadLine(i18n.T("PRICE_PROMPT"))
	if err != nil {
		return err
	}

	price, err := room.ParsePrice(text)
	if err == nil {
		err = hotel.UpdateRoomPrice(s.Auth(), r, price)
	}
	if err != nil {
		reportError(s, err, "ERROR_INVALID_PRICE")
		return nil
	}

	logMessage(s, "%s", i18n.T("PRICE_UPDATED", r.Number(), formatPrice(r.Price())))
	return nil
}

// UpdateAvailability asks for a room and "true" or "false" and applies it
// through the guarded availability update.
func UpdateAvailability(s *state.Session) error {
	r, err := promptRoom(s)
	if err != nil || r == nil {
		return err
	}

	text, err := renderer.ReadLine(i18n.T("AVAILABILITY_PROMPT"))
	if err != nil {
		return err
	}

	available, err := room.ParseAvailability(text)
	if err == nil {
		err = hotel.UpdateRoomAvailability(s.Auth(), r, available)
	}
	if err != nil {
		reportError(s, err, "ERROR_INVALID_AVAILABILITY")
		return nil
	}

	logMessage(s, "%s", i18n.T("AVAILABILITY_UPDATED", r.Number(), statusText(r.Available())))
	return nil
}

// ShowAllRooms lists every room with its price and status.
func ShowAllRooms(s *state.Session) {
	renderer.RenderFrame(s)
	renderer.ShowMessage("")
	renderer.ShowMessage(rule())
	renderer.ShowMessage(renderer.StyleText(i18n.T("ROOMS_OVERVIEW"), renderer.StyleTitle))
	for n, r := range s.Catalog.All() {
		renderer.ShowMessage(renderer.FormatText("%s", i18n.T("ROOM_LINE_STATUS", n, formatPrice(r.Price()), statusText(r.Available()))))
	}
	renderer.ShowMessage(rule())
}

// GuestView welcomes a guest and lists the rooms that are available now.
func GuestView(s *state.Session) {
	logMessage(s, "GT{GUEST_WELCOME}")
	renderer.RenderFrame(s)

	renderer.ShowMessage("")
	renderer.ShowMessage(rule())
	renderer.ShowMessage(renderer.StyleText(i18n.T("AVAILABLE_ROOMS"), renderer.StyleTitle))
	shown := 0
	for n, r := range s.Catalog.Available() {
		renderer.ShowMessage(renderer.FormatText("%s", i18n.T("ROOM_LINE", n, formatPrice(r.Price()))))
		shown++
	}
	if shown == 0 {
		renderer.ShowMessage(renderer.FormatText("SUBTLE{NO_ROOMS_AVAILABLE}"))
	}
	renderer.ShowMessage(rule())
}

// promptRoom reads a room number and looks it up. A nil room with a nil error
// means the number was rejected and a message has been queued.
func promptRoom(s *state.Session) (*room.Room, error) {
	text, err := renderer.ReadLine(i18n.T("ROOM_NUMBER_PROMPT"))
	if err != nil {
		return nil, err
	}

	number, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		logMessage(s, "DENIED{ROOM_NUMBER_NOT_INT}")
		return nil, nil
	}

	r, err := s.Catalog.Get(number)
	if err != nil {
		reportError(s, err, "")
		return nil, nil
	}
	return r, nil
}

// reportError queues the message for a rejected update. invalidKey is the
// translation key used for room.ErrInvalidValue.
func reportError(s *state.Session, err error, invalidKey string) {
	switch {
	case errors.Is(err, access.ErrAccessDenied):
		logMessage(s, "DENIED{ACCESS_DENIED}")
	case errors.Is(err, catalog.ErrNotFound):
		logMessage(s, "DENIED{INVALID_ROOM}")
	case errors.Is(err, room.ErrInvalidValue) && invalidKey != "":
		logMessage(s, "DENIED{%s}", invalidKey)
	default:
		s.AddMessage(renderer.StyleText(err.Error(), renderer.StyleDenied))
	}
}

func statusText(available bool) string {
	if available {
		return renderer.StyleText(i18n.T("STATUS_AVAILABLE"), renderer.StyleAvailable)
	}
	return renderer.StyleText(i18n.T("STATUS_UNAVAILABLE"), renderer.StyleUnavailable)
}

// formatPrice drops a zero fraction, so 100 prints as "100" and 99.5 as "99.5".
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func rule() string {
	return renderer.StyleText(strings.Repeat("=", min(renderer.Width(), maxRuleWidth)), renderer.StyleSubtle)
}
