// Package dataflow derives traffic, reuse, occupancy, delay and energy metrics
// of a loop nest mapped onto a PE array.
//
// A Dataflow owns one statement, one PE array and one mapping. Every query is
// a pure function of the three, recomputed on each call. Most metrics are
// measured against a neighbor relation over space-time points, which says
// from where an access may be served instead of being fetched.
package dataflow

import (
	"fmt"

	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/mapping"
	"github.com/sarchlab/tenet/pearray"
	"github.com/sarchlab/tenet/statement"
)

// noCopy lets go vet report a Dataflow copied by value. Use Clone instead.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Dataflow analyzes one statement mapped onto one PE array. It must not be
// copied; Clone makes an independent dataflow.
type Dataflow struct {
	_ noCopy

	name string
	st   *statement.Statement
	pe   *pearray.PEArray
	mp   *mapping.Mapping

	bitsPerItem     int
	macsPerInstance int
	energy          EnergyModel
}

// New creates a dataflow with the default parameters. The dataflow takes
// over the collaborators; callers must not modify them afterwards.
func New(
	st *statement.Statement,
	pe *pearray.PEArray,
	mp *mapping.Mapping,
) *Dataflow {
	name := "dataflow"
	if st != nil {
		name = st.Name()
	}

	d, err := NewBuilder().
		WithStatement(st).
		WithPEArray(pe).
		WithMapping(mp).
		Build(name)
	if err != nil {
		panic(err)
	}

	return d
}

// Name returns the name of the dataflow.
func (d *Dataflow) Name() string {
	return d.name
}

// Statement returns the analyzed statement.
func (d *Dataflow) Statement() *statement.Statement {
	return d.st
}

// PEArray returns the PE array.
func (d *Dataflow) PEArray() *pearray.PEArray {
	return d.pe
}

// Mapping returns the mapping.
func (d *Dataflow) Mapping() *mapping.Mapping {
	return d.mp
}

// BitsPerItem returns the width of one tensor element.
func (d *Dataflow) BitsPerItem() int {
	return d.bitsPerItem
}

// Clone returns a dataflow that owns deep copies of all collaborators.
func (d *Dataflow) Clone() *Dataflow {
	return &Dataflow{
		name:            d.name,
		st:              d.st.Clone(),
		pe:              d.pe.Clone(),
		mp:              d.mp.Clone(),
		bitsPerItem:     d.bitsPerItem,
		macsPerInstance: d.macsPerInstance,
		energy:          d.energy,
	}
}

// Domain returns the iteration domain.
func (d *Dataflow) Domain() iset.Set {
	return d.st.Domain()
}

// Access returns the access relation of a tensor.
func (d *Dataflow) Access(tensor string, kind statement.AccessKind) iset.Map {
	return d.st.Access(tensor, kind)
}

// SpaceMap returns the space map restricted to the iteration domain.
func (d *Dataflow) SpaceMap() iset.Map {
	return d.mp.SpaceMap().IntersectDomain(d.st.Domain())
}

// TimeMap returns the time map restricted to the iteration domain.
func (d *Dataflow) TimeMap() iset.Map {
	return d.mp.TimeMap().IntersectDomain(d.st.Domain())
}

// SpaceTimeMap returns the space-time map restricted to the iteration domain.
func (d *Dataflow) SpaceTimeMap() iset.Map {
	return d.mp.SpaceTimeMap().IntersectDomain(d.st.Domain())
}

// SpaceDomain returns the PEs that run at least one iteration.
func (d *Dataflow) SpaceDomain() iset.Set {
	return d.st.Domain().Apply(d.SpaceMap())
}

// TimeDomain returns the cycles in which at least one iteration runs.
func (d *Dataflow) TimeDomain() iset.Set {
	return d.st.Domain().Apply(d.TimeMap())
}

// SpaceTimeDomain returns the occupied space-time points.
func (d *Dataflow) SpaceTimeDomain() iset.Set {
	return d.st.Domain().Apply(d.SpaceTimeMap())
}

func (d *Dataflow) String() string {
	return fmt.Sprintf("%s: %s on %s with %s",
		d.name, d.st.Name(), d.pe.Name(), d.mp.Name())
}

// Tensors returns the input and the output tensors of the statement.
func (d *Dataflow) Tensors() (inputs, outputs []string) {
	return d.st.Tensors()
}
