package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrInvalidDates     = errors.New("check-out must be after check-in")
	ErrTooManyGuests    = errors.New("guest count exceeds accommodation capacity")
	ErrUnavailable      = errors.New("accommodation is not available")
	ErrBadStatusChange  = errors.New("invalid status transition")
	ErrBadPaymentStatus = errors.New("invalid payment status")
)
