package dataflow

import (
	"fmt"

	"github.com/sarchlab/tenet/mapping"
	"github.com/sarchlab/tenet/pearray"
	"github.com/sarchlab/tenet/statement"
)

// EnergyModel weighs the energy of one MAC against one access to each
// memory level.
type EnergyModel struct {
	MAC float64
	L1  float64
	L2  float64
}

// DefaultEnergyModel charges one unit per MAC and per L1 access, and six per
// L2 access.
func DefaultEnergyModel() EnergyModel {
	return EnergyModel{MAC: 1, L1: 1, L2: 6}
}

// Builder can build dataflows.
type Builder struct {
	st              *statement.Statement
	pe              *pearray.PEArray
	mp              *mapping.Mapping
	bitsPerItem     int
	macsPerInstance int
	energy          EnergyModel
}

// NewBuilder creates a builder with 16-bit items, one MAC per instance and
// the default energy model.
func NewBuilder() Builder {
	return Builder{
		bitsPerItem:     16,
		macsPerInstance: 1,
		energy:          DefaultEnergyModel(),
	}
}

// WithStatement sets the analyzed statement.
func (b Builder) WithStatement(st *statement.Statement) Builder {
	b.st = st
	return b
}

// WithPEArray sets the PE array.
func (b Builder) WithPEArray(pe *pearray.PEArray) Builder {
	b.pe = pe
	return b
}

// WithMapping sets the mapping.
func (b Builder) WithMapping(mp *mapping.Mapping) Builder {
	b.mp = mp
	return b
}

// WithBitsPerItem sets the width of one tensor element.
func (b Builder) WithBitsPerItem(bits int) Builder {
	b.bitsPerItem = bits
	return b
}

// WithMACsPerInstance sets how many MACs one iteration performs.
func (b Builder) WithMACsPerInstance(n int) Builder {
	b.macsPerInstance = n
	return b
}

// WithEnergyModel sets the energy weights.
func (b Builder) WithEnergyModel(m EnergyModel) Builder {
	b.energy = m
	return b
}

// Build creates the dataflow. The dataflow takes over the collaborators.
func (b Builder) Build(name string) (*Dataflow, error) {
	if b.st == nil || b.pe == nil || b.mp == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingCollaborator)
	}

	if b.bitsPerItem <= 0 || b.macsPerInstance <= 0 {
		return nil, fmt.Errorf("%s: bits per item and MACs per instance must be positive", name)
	}

	return &Dataflow{
		name:            name,
		st:              b.st,
		pe:              b.pe,
		mp:              b.mp,
		bitsPerItem:     b.bitsPerItem,
		macsPerInstance: b.macsPerInstance,
		energy:          b.energy,
	}, nil
}
