package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/pkg/hotel/room"
)

func newRoom(t *testing.T) *room.Room {
	t.Helper()
	r, err := room.New(102, 120, false)
	require.NoError(t, err)
	return r
}

func TestGuard_DeniesAnonymous(t *testing.T) {
	r := newRoom(t)
	called := false
	op := Guard(func(r *room.Room, v float64) error {
		called = true
		return r.SetPrice(v)
	})

	err := op(Anonymous, r, 150)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, called, "wrapped operation ran without authentication")
	assert.Equal(t, 120.0, r.Price())
}

func TestGuard_PassesThroughWhenAuthenticated(t *testing.T) {
	r := newRoom(t)
	var gotRoom *room.Room
	var gotValue bool
	op := Guard(func(r *room.Room, v bool) error {
		gotRoom, gotValue = r, v
		r.SetAvailable(v)
		return nil
	})

	require.NoError(t, op(Authenticated, r, true))
	assert.Same(t, r, gotRoom)
	assert.True(t, gotValue)
	assert.True(t, r.Available())
}

func TestGuard_ReturnsOperationError(t *testing.T) {
	r := newRoom(t)
	boom := errors.New("boom")

	err := Update(Authenticated, r, 1, func(*room.Room, int) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = Update(Authenticated, r, -5.0, (*room.Room).SetPrice)
	assert.ErrorIs(t, err, room.ErrInvalidValue)
	assert.Equal(t, 120.0, r.Price())
}

func TestUpdate_AnonymousNeverMutates(t *testing.T) {
	for _, v := range []float64{0, 1, 500, -1} {
		r := newRoom(t)
		err := Update(AuthContext{Authenticated: false}, r, v, (*room.Room).SetPrice)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, 120.0, r.Price())
	}
}
