package pearray

import "errors"

var (
	// ErrUnknownTopology indicates a topology name that is not supported.
	ErrUnknownTopology = errors.New("pearray: unknown topology")
	// ErrTopologyDim indicates a topology that does not fit the PE domain's
	// dimensionality.
	ErrTopologyDim = errors.New("pearray: topology does not fit the PE domain")
	// ErrEmptyArray indicates a PE array without PEs.
	ErrEmptyArray = errors.New("pearray: array has no PEs")
	// ErrBandwidth indicates a non-positive link bandwidth.
	ErrBandwidth = errors.New("pearray: bandwidth must be positive")
)
