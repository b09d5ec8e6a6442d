// Package catalog holds the fixed set of hotel rooms, keyed by room number.
package catalog

import (
	"errors"
	"fmt"
	"iter"

	"github.com/zyedidia/generic/mapset"

	"frontdesk/pkg/hotel/room"
)

var (
	// ErrNotFound is returned when a room number is not in the catalog.
	ErrNotFound = errors.New("room not found")
	// ErrDuplicateRoom is returned by New when two rooms share a number.
	ErrDuplicateRoom = errors.New("duplicate room number")
)

// Catalog maps room numbers to rooms. Membership is fixed at construction
// and iteration follows insertion order.
type Catalog struct {
	order []int
	rooms map[int]*room.Room
}

// New builds a catalog from rooms in the order given.
func New(rooms ...*room.Room) (*Catalog, error) {
	seen := mapset.New[int]()
	c := &Catalog{
		order: make([]int, 0, len(rooms)),
		rooms: make(map[int]*room.Room, len(rooms)),
	}

	for _, r := range rooms {
		if r == nil {
			return nil, errors.New("catalog: nil room")
		}
		if seen.Has(r.Number()) {
			return nil, fmt.Errorf("catalog: room %d: %w", r.Number(), ErrDuplicateRoom)
		}
		seen.Put(r.Number())
		c.order = append(c.order, r.Number())
		c.rooms[r.Number()] = r
	}

	return c, nil
}

// Seed returns the catalog the hotel starts with.
func Seed() *Catalog {
	seed := []struct {
		number    int
		price     float64
		available bool
	}{
		{101, 100, true},
		{102, 120, false},
		{201, 200, true},
		{202, 220, true},
	}

	rooms := make([]*room.Room, 0, len(seed))
	for _, s := range seed {
		r, err := room.New(s.number, s.price, s.available)
		if err != nil {
			panic(err)
		}
		rooms = append(rooms, r)
	}

	c, err := New(rooms...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the room with the given number.
func (c *Catalog) Get(number int) (*room.Room, error) {
	r, ok := c.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", number, ErrNotFound)
	}
	return r, nil
}

// Len returns the number of rooms.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Numbers returns the room numbers in insertion order.
func (c *Catalog) Numbers() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// All yields every room in insertion order.
func (c *Catalog) All() iter.Seq2[int, *room.Room] {
	return func(yield func(int, *room.Room) bool) {
		for _, n := range c.order {
			if !yield(n, c.rooms[n]) {
				return
			}
		}
	}
}

// Available yields the rooms that are currently available. Availability is
// read while iterating, so each pass reflects the catalog as it is then.
func (c *Catalog) Available() iter.Seq2[int, *room.Room] {
	return func(yield func(int, *room.Room) bool) {
		for n, r := range c.All() {
			if !r.Available() {
				continue
			}
			if !yield(n, r) {
				return
			}
		}
	}
}
