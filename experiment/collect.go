package experiment

import (
	"errors"
	"fmt"

	"github.com/sarchlab/tenet/dataflow"
	"github.com/sarchlab/tenet/iset"
	"github.com/sarchlab/tenet/statement"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_analyzer_test.go github.com/sarchlab/tenet/experiment Analyzer

// Analyzer is the part of a dataflow that results are collected from.
type Analyzer interface {
	Name() string
	Tensors() (inputs, outputs []string)
	MapSpaceTimeToNeighbor(opts dataflow.NeighborOptions) iset.Map
	DomainSize() (float64, error)
	TotalVolume(tensor string, kind statement.AccessKind) (float64, error)
	UniqueVolume(tensor string, kind statement.AccessKind, neighbor iset.Map) (float64, error)
	ReuseFactor(tensor string, kind statement.AccessKind, neighbor iset.Map) (float64, error)
	TemporalReuseVolume(tensor string, kind statement.AccessKind) (float64, error)
	SpatialReuseVolume(tensor string, kind statement.AccessKind, neighbor *iset.Map) (float64, error)
	SpatialReuseVolumeAt(tensor string, kind statement.AccessKind, distance int) (float64, error)
	IngressDelay(neighbor iset.Map, tensor string) (float64, error)
	EgressDelay(neighbor iset.Map, tensor string) (float64, error)
	ComputationDelay() (float64, error)
	ActivePENum() (float64, error)
	AverageActivePENum() (float64, error)
	Energy(neighbor iset.Map) (float64, error)
}

// TensorResult holds the traffic and reuse of one tensor. Reuse volumes are
// counts of accesses, not per-iteration shares.
type TensorResult struct {
	Tensor          string
	Kind            statement.AccessKind
	TotalVolume     float64
	UniqueVolume    float64
	ReuseFactor     float64
	TemporalReuse   float64
	SpatialReuse    float64
	SpatialReuseAt0 float64
	SpatialReuseAt1 float64
}

// Result holds every metric of one analysis.
type Result struct {
	Name             string
	DomainSize       float64
	Tensors          []TensorResult
	IngressDelay     float64
	EgressDelay      float64
	ComputationDelay float64
	ActivePENum      float64
	AveragePENum     float64
	Energy           float64
	Issues           []dataflow.Issue
}

// Collect queries every metric under the default neighbor relation.
func Collect(a Analyzer) (*Result, error) {
	neighbor := a.MapSpaceTimeToNeighbor(dataflow.DefaultNeighborOptions())

	size, err := a.DomainSize()
	if err != nil {
		return nil, err
	}

	r := &Result{Name: a.Name(), DomainSize: size}

	inputs, outputs := a.Tensors()
	for _, t := range inputs {
		tr, err := collectTensor(a, t, statement.Read, neighbor, size)
		if err != nil {
			return nil, err
		}
		r.Tensors = append(r.Tensors, tr)
	}
	for _, t := range outputs {
		tr, err := collectTensor(a, t, statement.Write, neighbor, size)
		if err != nil {
			return nil, err
		}
		r.Tensors = append(r.Tensors, tr)
	}

	steps := []struct {
		name string
		dst  *float64
		fn   func() (float64, error)
	}{
		{"ingress delay", &r.IngressDelay, func() (float64, error) { return a.IngressDelay(neighbor, "") }},
		{"egress delay", &r.EgressDelay, func() (float64, error) { return a.EgressDelay(neighbor, "") }},
		{"computation delay", &r.ComputationDelay, a.ComputationDelay},
		{"active PEs", &r.ActivePENum, a.ActivePENum},
		{"average active PEs", &r.AveragePENum, a.AverageActivePENum},
		{"energy", &r.Energy, func() (float64, error) { return a.Energy(neighbor) }},
	}
	for _, s := range steps {
		v, err := s.fn()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", r.Name, s.name, err)
		}
		*s.dst = v
	}

	return r, nil
}

func collectTensor(
	a Analyzer,
	tensor string,
	kind statement.AccessKind,
	neighbor iset.Map,
	size float64,
) (TensorResult, error) {
	tr := TensorResult{Tensor: tensor, Kind: kind}

	var err error
	wrap := func(e error) error {
		return fmt.Errorf("%s: tensor %s: %w", a.Name(), tensor, e)
	}

	if tr.TotalVolume, err = a.TotalVolume(tensor, kind); err != nil {
		return tr, wrap(err)
	}
	if tr.UniqueVolume, err = a.UniqueVolume(tensor, kind, neighbor); err != nil {
		return tr, wrap(err)
	}
	tr.ReuseFactor, err = a.ReuseFactor(tensor, kind, neighbor)
	if err != nil && !errors.Is(err, dataflow.ErrEmptyAccess) {
		return tr, wrap(err)
	}

	shares := []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&tr.TemporalReuse, func() (float64, error) { return a.TemporalReuseVolume(tensor, kind) }},
		{&tr.SpatialReuse, func() (float64, error) { return a.SpatialReuseVolume(tensor, kind, nil) }},
		{&tr.SpatialReuseAt0, func() (float64, error) { return a.SpatialReuseVolumeAt(tensor, kind, 0) }},
		{&tr.SpatialReuseAt1, func() (float64, error) { return a.SpatialReuseVolumeAt(tensor, kind, 1) }},
	}
	for _, s := range shares {
		v, err := s.fn()
		if err != nil {
			return tr, wrap(err)
		}
		*s.dst = v * size
	}

	return tr, nil
}
