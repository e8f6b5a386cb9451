package mapping

import "errors"

var (
	// ErrNoDomain indicates a mapping that has nothing to instantiate its
	// functions over.
	ErrNoDomain = errors.New("mapping: no domain to instantiate over")
	// ErrMissingFunction indicates a mapping without a space or a time
	// function.
	ErrMissingFunction = errors.New("mapping: space and time functions are required")
)
