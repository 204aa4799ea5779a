package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed is the sentinel every ValidationErrors unwraps to.
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidTurfID    = errors.New("invalid turf ID")
	ErrInvalidBookingID = errors.New("invalid booking ID")
)
