// Package hotel exposes the room mutations available to the front desk. Each
// one is built with access.Guard.
package hotel

import (
	"frontdesk/pkg/hotel/access"
	"frontdesk/pkg/hotel/catalog"
	"frontdesk/pkg/hotel/room"
)

var (
	// UpdateRoomPrice sets a room's price for an authenticated caller.
	UpdateRoomPrice = access.Guard(setPrice)
	// UpdateRoomAvailability sets a room's availability for an authenticated caller.
	UpdateRoomAvailability = access.Guard(setAvailability)
)

func setPrice(r *room.Room, price float64) error {
	if r == nil {
		return catalog.ErrNotFound
	}
	return r.SetPrice(price)
}

func setAvailability(r *room.Room, available bool) error {
	if r == nil {
		return catalog.ErrNotFound
	}
	r.SetAvailable(available)
	return nil
}
