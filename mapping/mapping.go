// Package mapping describes where and when every iteration executes. The
// space map sends an iteration to a PE and the time map sends it to a logical
// cycle, which may be multi-dimensional and is ordered lexicographically.
package mapping

import "github.com/sarchlab/tenet/iset"

// Mapping owns a space map and a time map.
type Mapping struct {
	name  string
	space iset.Map
	time  iset.Map
}

// New creates a mapping from already instantiated relations.
func New(name string, space, time iset.Map) *Mapping {
	return &Mapping{name: name, space: space, time: time}
}

// Name returns the name of the mapping.
func (m *Mapping) Name() string {
	return m.name
}

// SpaceMap returns the relation from iterations to PEs.
func (m *Mapping) SpaceMap() iset.Map {
	return m.space
}

// TimeMap returns the relation from iterations to cycles.
func (m *Mapping) TimeMap() iset.Map {
	return m.time
}

// SpaceTimeMap pairs the two maps: an iteration goes to [PE -> cycle].
func (m *Mapping) SpaceTimeMap() iset.Map {
	return m.space.RangeProduct(m.time)
}

// Clone returns a deep copy of the mapping.
func (m *Mapping) Clone() *Mapping {
	c := *m
	return &c
}
