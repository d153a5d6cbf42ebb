package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Gesture errors. All of them are recovered locally: the board stays usable
// after any of them and no partially-applied state is left behind.
var (
	// ErrAlreadyDragging rejects a drag start while another session is active.
	ErrAlreadyDragging = errors.New("a drag session is already active")

	// ErrItemPending rejects a drag start on a lead whose previous move has
	// not been confirmed by the server yet.
	ErrItemPending = errors.New("lead has an unconfirmed stage change in flight")

	// ErrNotDragging is returned by hover, drop and cancel outside a session.
	ErrNotDragging = errors.New("no drag session is active")

	// ErrNoDropTarget marks a drop that resolved no region. It is treated as a
	// cancellation and is never shown to the user.
	ErrNoDropTarget = errors.New("drop resolved no target")

	// ErrReconciliation marks a failed server confirmation. The local state is
	// rolled back and a user-visible, non-fatal notification is emitted.
	ErrReconciliation = errors.New("stage change was not confirmed")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
