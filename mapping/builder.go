package mapping

import (
	"fmt"

	"github.com/sarchlab/tenet/affine"
	"github.com/sarchlab/tenet/iset"
)

// Builder can build mappings.
type Builder struct {
	params    affine.Params
	loopNest  string
	domain    iset.Set
	hasDomain bool
	space     string
	time      string
}

// WithParam binds a parameter used by the functions or the loop nest.
func (b Builder) WithParam(name string, value int) Builder {
	b.params = b.params.Bind(name, value)
	return b
}

// WithParams merges a parameter table into the builder.
func (b Builder) WithParams(params affine.Params) Builder {
	merged := b.params.Clone()
	for k, v := range params.Clone() {
		merged[k] = v
	}
	b.params = merged
	return b
}

// WithLoopNest sets the domain the functions are instantiated over, e.g.
// "{ S[i, j] : 0 <= i < 8 and 0 <= j < 8 }". It takes precedence over
// WithDomain.
func (b Builder) WithLoopNest(src string) Builder {
	b.loopNest = src
	return b
}

// WithDomain sets an already enumerated domain to instantiate over. This is
// usually the iteration domain of the statement being mapped.
func (b Builder) WithDomain(domain iset.Set) Builder {
	b.domain = domain
	b.hasDomain = true
	return b
}

// WithSpace sets the space function, e.g. "S[i, j] -> PE[i % 4, j % 4]".
func (b Builder) WithSpace(fn string) Builder {
	b.space = fn
	return b
}

// WithTime sets the time function, e.g. "S[i, j] -> T[i / 4, j / 4]".
func (b Builder) WithTime(fn string) Builder {
	b.time = fn
	return b
}

// Build instantiates both functions over the domain.
func (b Builder) Build(name string) (*Mapping, error) {
	if b.space == "" || b.time == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrMissingFunction)
	}

	domain, err := b.buildDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	space, err := b.instantiate(b.space, domain)
	if err != nil {
		return nil, fmt.Errorf("%s: space: %w", name, err)
	}

	time, err := b.instantiate(b.time, domain)
	if err != nil {
		return nil, fmt.Errorf("%s: time: %w", name, err)
	}

	return New(name, space, time), nil
}

func (b Builder) buildDomain() (iset.Set, error) {
	if b.loopNest == "" {
		if !b.hasDomain {
			return iset.Set{}, ErrNoDomain
		}
		return b.domain, nil
	}

	nest, err := affine.ParseLoopNest(b.loopNest)
	if err != nil {
		return iset.Set{}, fmt.Errorf("parsing domain: %w", err)
	}

	return nest.Enumerate(b.params)
}

func (b Builder) instantiate(src string, domain iset.Set) (iset.Map, error) {
	fn, err := affine.ParseTupleFunc(src)
	if err != nil {
		return iset.Map{}, err
	}

	return fn.Over(domain, b.params)
}
