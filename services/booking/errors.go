package booking

import (
	"errors"
	"fmt"
)

// Error kinds returned by the booking engine.
const (
	KindSlotConflict        = "slot_conflict"
	KindOutsideAvailability = "outside_availability"
	KindStoreUnavailable    = "store_unavailable"
	KindValidation          = "validation_error"
)

// Error is a structured booking rejection carrying a machine-readable kind
// and a human-readable reason.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newSlotConflict(msg string) error {
	return &Error{Kind: KindSlotConflict, Message: msg}
}

func newOutsideAvailability(msg string) error {
	return &Error{Kind: KindOutsideAvailability, Message: msg}
}

func newStoreUnavailable(msg string) error {
	return &Error{Kind: KindStoreUnavailable, Message: msg}
}

func newValidationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf returns the booking error kind, or "" for non-booking errors.
func KindOf(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}
