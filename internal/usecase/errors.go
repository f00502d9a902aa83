package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidTransition     = errors.New("invalid lifecycle transition")
	ErrInconsistentReference = errors.New("inconsistent reference")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
