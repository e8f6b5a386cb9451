package affine

import "errors"

var (
	// ErrSyntax indicates malformed expression text.
	ErrSyntax = errors.New("affine: syntax error")
	// ErrUnboundIdentifier indicates an identifier that is neither an
	// iterator nor a declared parameter.
	ErrUnboundIdentifier = errors.New("affine: unbound identifier")
	// ErrDivisionByZero indicates a floor division or modulo by zero.
	ErrDivisionByZero = errors.New("affine: division by zero")
	// ErrUnbounded indicates a loop iterator without a lower or upper bound.
	ErrUnbounded = errors.New("affine: iterator is not bounded")
	// ErrTooLarge indicates a loop nest with more points than MaxPoints.
	ErrTooLarge = errors.New("affine: loop nest is too large to enumerate")
)
