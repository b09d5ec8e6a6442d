// Package room provides the hotel room entity and the validation rules for
// its price and availability.
package room

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a price or availability write violates
// its validation rule. The room keeps its previous value.
var ErrInvalidValue = errors.New("invalid value")

// Room is a single bookable room. Fields are unexported so every write goes
// through SetPrice or SetAvailable.
type Room struct {
	number    int
	price     float64
	available bool
}

// New creates a room, validating the initial price.
func New(number int, price float64, available bool) (*Room, error) {
	if err := validatePrice(price); err != nil {
		return nil, fmt.Errorf("room %d: %w", number, err)
	}
	return &Room{
		number:    number,
		price:     normalizePrice(price),
		available: available,
	}, nil
}

// Number returns the room number.
func (r *Room) Number() int {
	return r.number
}

// Price returns the current nightly price.
func (r *Room) Price() float64 {
	return r.price
}

// Available reports whether the room can be shown to guests.
func (r *Room) Available() bool {
	return r.available
}

// SetPrice commits price if it is finite and not negative.
func (r *Room) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return fmt.Errorf("room %d: %w", r.number, err)
	}
	r.price = normalizePrice(price)
	return nil
}

// SetAvailable commits the availability flag.
func (r *Room) SetAvailable(available bool) {
	r.available = available
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("price must be a finite number: %w", ErrInvalidValue)
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative: %w", ErrInvalidValue)
	}
	return nil
}

// normalizePrice turns -0 into 0.
func normalizePrice(price float64) float64 {
	if price == 0 {
		return 0
	}
	return price
}

// ParsePrice converts user text into a price, applying the same rules as
// SetPrice.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number: %w", s, ErrInvalidValue)
	}
	if err := validatePrice(price); err != nil {
		return 0, err
	}
	return normalizePrice(price), nil
}

// ParseAvailability accepts only "true" or "false" (any case). Numeric and
// yes/no stand-ins are rejected rather than coerced.
func ParseAvailability(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("availability must be true or false, got %q: %w", s, ErrInvalidValue)
	}
}
