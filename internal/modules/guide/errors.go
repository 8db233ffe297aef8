package guide

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("guide not found")
	ErrConflict   = errors.New("username or email already in use")
)
