package pearray

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tenet/affine"
	"github.com/sarchlab/tenet/iset"
)

// Builder can build PE arrays.
type Builder struct {
	width, height int
	domain        string
	params        affine.Params
	topology      Topology
	links         []string
	bandwidth     float64
	avgLatency    float64
	freq          sim.Freq
}

// NewBuilder creates a builder for a 1x1 mesh with 1 bit per cycle links, a
// latency of 1 cycle and a 1 GHz clock.
func NewBuilder() Builder {
	return Builder{
		width:      1,
		height:     1,
		topology:   Mesh,
		bandwidth:  1,
		avgLatency: 1,
		freq:       1 * sim.GHz,
	}
}

// WithWidth sets the number of PE columns.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithHeight sets the number of PE rows.
func (b Builder) WithHeight(height int) Builder {
	b.height = height
	return b
}

// WithDomain describes the PE coordinates explicitly, e.g.
// "{ PE[x, y] : 0 <= x < 4 and 0 <= y <= x }". It overrides width and height.
func (b Builder) WithDomain(domain string) Builder {
	b.domain = domain
	return b
}

// WithParam binds a parameter used by the domain or the links.
func (b Builder) WithParam(name string, value int) Builder {
	b.params = b.params.Bind(name, value)
	return b
}

// WithParams merges a parameter table into the builder. Nil values declare
// unresolved parameters.
func (b Builder) WithParams(params affine.Params) Builder {
	merged := b.params.Clone()
	for k, v := range params.Clone() {
		merged[k] = v
	}
	b.params = merged
	return b
}

// WithTopology sets how PEs are wired.
func (b Builder) WithTopology(t Topology) Builder {
	b.topology = t
	return b
}

// WithLink adds a link function such as "PE[x, y] -> PE[x + 2, y]". Links are
// added on top of the topology and clipped to the PE domain.
func (b Builder) WithLink(fn string) Builder {
	b.links = append(append([]string(nil), b.links...), fn)
	return b
}

// WithBandwidth sets the link bandwidth in bits per cycle.
func (b Builder) WithBandwidth(bitsPerCycle float64) Builder {
	b.bandwidth = bitsPerCycle
	return b
}

// WithAvgLatency sets the average link latency in cycles.
func (b Builder) WithAvgLatency(cycles float64) Builder {
	b.avgLatency = cycles
	return b
}

// WithFreq sets the clock frequency of the array.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates the PE array.
func (b Builder) Build(name string) (*PEArray, error) {
	if b.bandwidth <= 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrBandwidth)
	}

	domain, err := b.buildDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if domain.IsEmpty() {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyArray)
	}

	inter, err := connect(domain, b.topology)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	for _, l := range b.links {
		fn, err := affine.ParseTupleFunc(l)
		if err != nil {
			return nil, fmt.Errorf("%s: link %q: %w", name, l, err)
		}

		rel, err := fn.Over(domain, b.params)
		if err != nil {
			return nil, fmt.Errorf("%s: link %q: %w", name, l, err)
		}

		inter = inter.Union(rel.IntersectRange(domain))
	}

	return &PEArray{
		name:         name,
		topology:     b.topology,
		domain:       domain,
		interconnect: inter,
		bandwidth:    b.bandwidth,
		avgLatency:   b.avgLatency,
		freq:         b.freq,
	}, nil
}

func (b Builder) buildDomain() (iset.Set, error) {
	src := b.domain
	if src == "" {
		if b.topology == Linear {
			src = fmt.Sprintf("{ PE[x] : 0 <= x < %d }", b.width)
		} else {
			src = fmt.Sprintf("{ PE[x, y] : 0 <= x < %d and 0 <= y < %d }", b.width, b.height)
		}
	}

	nest, err := affine.ParseLoopNest(src)
	if err != nil {
		return iset.Set{}, fmt.Errorf("parsing domain: %w", err)
	}

	return nest.Enumerate(b.params)
}
