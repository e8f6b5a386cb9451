package dataflow

import "errors"

var (
	// ErrMissingCollaborator indicates a builder without a statement, a PE
	// array or a mapping.
	ErrMissingCollaborator = errors.New("dataflow: statement, PE array and mapping are required")
	// ErrEmptyAccess indicates a reuse factor over an access that never
	// happens.
	ErrEmptyAccess = errors.New("dataflow: access is empty")
	// ErrEmptyDomain indicates a per-iteration metric over an empty
	// iteration domain.
	ErrEmptyDomain = errors.New("dataflow: iteration domain is empty")
	// ErrEmptyTimeDomain indicates a time average over an empty time domain.
	ErrEmptyTimeDomain = errors.New("dataflow: time domain is empty")
	// ErrNoActivePE indicates a per-PE metric when no PE is active.
	ErrNoActivePE = errors.New("dataflow: no active PE")
	// ErrSymbolic indicates relations that still depend on unresolved
	// parameters.
	ErrSymbolic = errors.New("dataflow: relations depend on unresolved parameters")
)
