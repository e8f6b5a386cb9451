package dataflow

import (
	"fmt"
	"math"

	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/statement"
)

// TotalVolume counts every access to a tensor, without any reuse.
func (d *Dataflow) TotalVolume(tensor string, kind statement.AccessKind) (float64, error) {
	v, err := scalar(d.st.Access(tensor, kind).Card())
	if err != nil {
		return 0, fmt.Errorf("total volume of %s: %w", tensor, err)
	}

	Trace("total volume", "dataflow", d.name, "tensor", tensor, "kind", kind, "value", v)

	return v, nil
}

// UniqueVolume counts the accesses to a tensor that no neighbor can serve.
// An access at a space-time point is unique unless a neighbor of that point
// accesses the same element.
func (d *Dataflow) UniqueVolume(
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
) (float64, error) {
	access := d.MapSpaceTimeToAccess(tensor, kind)
	unique := access.Subtract(neighbor.ApplyRange(access))

	v, err := scalar(unique.Card())
	if err != nil {
		return 0, fmt.Errorf("unique volume of %s: %w", tensor, err)
	}

	Trace("unique volume", "dataflow", d.name, "tensor", tensor, "kind", kind, "value", v)

	return v, nil
}

// ReuseFactor divides the total volume by the unique volume. A tensor that
// is accessed but never fetched is fully reused and yields +Inf.
func (d *Dataflow) ReuseFactor(
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
) (float64, error) {
	unique, err := d.UniqueVolume(tensor, kind, neighbor)
	if err != nil {
		return 0, err
	}

	total, err := d.TotalVolume(tensor, kind)
	if err != nil {
		return 0, err
	}

	switch {
	case unique > 0:
		return total / unique, nil
	case total > 0:
		return math.Inf(1), nil
	default:
		return 0, fmt.Errorf("reuse factor of %s: %w", tensor, ErrEmptyAccess)
	}
}

// TemporalReuseVolume is the share of accesses per iteration that the same
// PE already made in the previous cycle.
func (d *Dataflow) TemporalReuseVolume(tensor string, kind statement.AccessKind) (float64, error) {
	prev := d.MapSpaceTimeToNeighbor(NeighborOptions{
		SpaceDistance: 0,
		TimeDistance:  1,
	})

	total, err := d.TotalVolume(tensor, kind)
	if err != nil {
		return 0, err
	}

	unique, err := d.UniqueVolume(tensor, kind, prev)
	if err != nil {
		return 0, err
	}

	return d.perIteration(total - unique)
}

// SpatialReuseVolume is the share of accesses per iteration that a neighbor
// also makes. A nil neighbor selects the PEs within one hop in the same
// cycle.
func (d *Dataflow) SpatialReuseVolume(
	tensor string,
	kind statement.AccessKind,
	neighbor *iset.Map,
) (float64, error) {
	var n iset.Map
	if neighbor != nil {
		n = *neighbor
	} else {
		n = d.MapSpaceTimeToNeighbor(NeighborOptions{
			SpaceDistance: 1,
			SpaceWithin:   true,
			TimeDistance:  0,
		})
	}

	access := d.MapSpaceTimeToAccess(tensor, kind)
	shared := access.Intersect(n.ApplyRange(access))

	v, err := scalar(shared.Card())
	if err != nil {
		return 0, fmt.Errorf("spatial reuse of %s: %w", tensor, err)
	}

	return d.perIteration(v)
}

// SpatialReuseVolumeAt is the share of accesses per iteration that a direct
// neighbor PE made exactly distance cycles earlier.
func (d *Dataflow) SpatialReuseVolumeAt(
	tensor string,
	kind statement.AccessKind,
	distance int,
) (float64, error) {
	n := d.MapSpaceTimeToNeighbor(NeighborOptions{
		SpaceDistance: 1,
		TimeDistance:  distance,
	})

	return d.SpatialReuseVolume(tensor, kind, &n)
}

func (d *Dataflow) perIteration(v float64) (float64, error) {
	size, err := d.DomainSize()
	if err != nil {
		return 0, err
	}

	if size == 0 {
		return 0, ErrEmptyDomain
	}

	return v / size, nil
}
