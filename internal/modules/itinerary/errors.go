package itinerary

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("itinerary not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidDates = errors.New("end date must not be before start date")
	ErrConflict     = errors.New("user is already a collaborator")
)
