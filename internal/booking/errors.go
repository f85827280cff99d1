package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPermissionDenied  = errors.New("participant may not perform this action")
	ErrNotCompleted      = errors.New("appointment is not completed")
	ErrAlreadyRated      = errors.New("rating slot is already filled")
	ErrNotElapsed        = errors.New("appointment has not taken place yet")
	ErrSameParticipant   = errors.New("renter and provider must differ")
	ErrStaleLocation     = errors.New("location update is older than the stored one")
)

// ValidationError rejects malformed input before any state mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a boundary validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
