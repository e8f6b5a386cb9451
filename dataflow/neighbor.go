package dataflow

import (
	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/statement"
)

// NeighborOptions selects which space-time points count as neighbors of a
// point. A distance is either exact (only points that are that many steps
// away) or within (points up to that many steps away, the point included).
type NeighborOptions struct {
	SpaceDistance int
	SpaceWithin   bool
	TimeDistance  int
	TimeWithin    bool
	IncludeSelf   bool
}

// DefaultNeighborOptions covers every point within one hop and one cycle,
// excluding the point itself.
func DefaultNeighborOptions() NeighborOptions {
	return NeighborOptions{
		SpaceDistance: 1,
		SpaceWithin:   true,
		TimeDistance:  1,
		TimeWithin:    true,
	}
}

// MapTimeToPrev relates every cycle to the cycles distance steps earlier, or
// up to distance steps earlier when within is set. One step goes from a
// cycle to the lexicographically largest earlier cycle in the time domain.
func (d *Dataflow) MapTimeToPrev(distance int, within bool) iset.Map {
	domain := d.TimeDomain()
	step := iset.LexPredecessor(domain, domain).Union(domain.Identity())

	return shell(domain, step, distance, within)
}

// MapSpaceToNeighbor relates every active PE to the PEs distance hops away
// over the interconnect, or up to distance hops away when within is set.
func (d *Dataflow) MapSpaceToNeighbor(distance int, within bool) iset.Map {
	step := d.pe.Interconnect().Union(d.pe.Domain().Identity())

	return shell(d.SpaceDomain(), step, distance, within)
}

// MapSpaceTimeToNeighbor combines a space and a time neighbor relation over
// [PE -> cycle] points.
func (d *Dataflow) MapSpaceTimeToNeighbor(opts NeighborOptions) iset.Map {
	space := d.MapSpaceToNeighbor(opts.SpaceDistance, opts.SpaceWithin)
	time := d.MapTimeToPrev(opts.TimeDistance, opts.TimeWithin)
	neighbor := space.Product(time)

	if !opts.IncludeSelf {
		neighbor = neighbor.Subtract(d.SpaceTimeDomain().Identity())
	}

	return neighbor
}

// MapSpaceTimeToAccess relates every space-time point to the elements of a
// tensor accessed there.
func (d *Dataflow) MapSpaceTimeToAccess(tensor string, kind statement.AccessKind) iset.Map {
	return d.SpaceTimeMap().Reverse().ApplyRange(d.st.Access(tensor, kind))
}

// shell builds the points reachable from domain in distance steps. Within a
// distance, the identity plus distance applications of step are taken. At an
// exact distance, the points within distance-1 are removed.
func shell(domain iset.Set, step iset.Map, distance int, within bool) iset.Map {
	if distance < 0 {
		panic("negative distance")
	}

	if !within {
		if distance == 0 {
			return domain.Identity()
		}
		return shell(domain, step, distance, true).
			Subtract(shell(domain, step, distance-1, true))
	}

	ret := domain.Identity()
	for i := 0; i < distance; i++ {
		ret = ret.ApplyRange(step)
	}

	return ret
}
