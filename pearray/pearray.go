// Package pearray describes the spatial PE array: which PEs exist, how they
// are wired, and how fast the links are.
package pearray

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tenet/iset"
)

// Topology names a way of wiring PEs.
type Topology string

const (
	// Mesh connects every PE to its North, East, South and West neighbors.
	Mesh Topology = "mesh"
	// Torus is a mesh whose edges wrap around.
	Torus Topology = "torus"
	// Systolic connects every PE to the West and South neighbors it receives
	// data from.
	Systolic Topology = "systolic"
	// Linear connects a 1-D row of PEs to both neighbors.
	Linear Topology = "linear"
	// Custom has only the explicitly listed links.
	Custom Topology = "custom"
)

// PEArray owns the PE domain, the interconnect relation and the link
// parameters.
type PEArray struct {
	name         string
	topology     Topology
	domain       iset.Set
	interconnect iset.Map
	bandwidth    float64
	avgLatency   float64
	freq         sim.Freq
}

// Name returns the name of the array.
func (a *PEArray) Name() string {
	return a.name
}

// Topology returns how the array is wired.
func (a *PEArray) Topology() Topology {
	return a.topology
}

// Domain returns the set of PE coordinates.
func (a *PEArray) Domain() iset.Set {
	return a.domain
}

// Interconnect returns the direct-neighbor relation. PE p maps to q when p
// can receive data from q over one link.
func (a *PEArray) Interconnect() iset.Map {
	return a.interconnect
}

// Bandwidth returns the link bandwidth in bits per cycle.
func (a *PEArray) Bandwidth() float64 {
	return a.bandwidth
}

// AvgLatency returns the average link latency in cycles.
func (a *PEArray) AvgLatency() float64 {
	return a.avgLatency
}

// Freq returns the clock frequency of the array.
func (a *PEArray) Freq() sim.Freq {
	return a.freq
}

// Clone returns a deep copy of the array.
func (a *PEArray) Clone() *PEArray {
	c := *a
	return &c
}
