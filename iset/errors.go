package iset

import "errors"

var (
	// ErrSymbolicCount indicates a count that still depends on unresolved
	// parameters and therefore has no scalar value.
	ErrSymbolicCount = errors.New("iset: count depends on unresolved parameters")
	// ErrNotReduced indicates a count that is still a function of domain
	// points. Sum it first.
	ErrNotReduced = errors.New("iset: count is not reduced to a constant")
)
