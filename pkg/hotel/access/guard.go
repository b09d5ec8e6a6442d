// Package access gates room mutations behind an authentication check.
package access

import (
	"errors"

	"frontdesk/pkg/hotel/room"
)

// ErrAccessDenied is returned by a guarded operation called without an
// authenticated context. No mutation has been performed.
var ErrAccessDenied = errors.New("access denied: not authenticated")

// AuthContext is supplied per call by whoever invokes a mutation. It is not
// checked against any credential store here.
type AuthContext struct {
	Authenticated bool
}

// Anonymous is the context of a caller that has not logged in.
var Anonymous = AuthContext{}

// Authenticated is the context of a logged-in manager.
var Authenticated = AuthContext{Authenticated: true}

// Operation mutates a room with a value of type T.
type Operation[T any] func(r *room.Room, value T) error

// Guarded is an Operation that also takes the caller's AuthContext.
type Guarded[T any] func(auth AuthContext, r *room.Room, value T) error

// Guard wraps op so it only runs for authenticated callers. Every mutating
// entry point is built this way instead of checking inline.
func Guard[T any](op Operation[T]) Guarded[T] {
	return func(auth AuthContext, r *room.Room, value T) error {
		if !auth.Authenticated {
			return ErrAccessDenied
		}
		return op(r, value)
	}
}

// Update runs op once under the guard.
func Update[T any](auth AuthContext, r *room.Room, value T, op Operation[T]) error {
	return Guard(op)(auth, r, value)
}
