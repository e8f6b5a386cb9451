package statement

import "errors"

var (
	// ErrInvalidAccessKind indicates an unknown access kind name.
	ErrInvalidAccessKind = errors.New("statement: invalid access kind")
	// ErrNoDomain indicates a statement without an iteration domain.
	ErrNoDomain = errors.New("statement: missing iteration domain")
	// ErrSpaceMismatch indicates an access function whose input space is not
	// the iteration domain's space.
	ErrSpaceMismatch = errors.New("statement: access does not start from the iteration domain")
)
