package statement

import (
	"fmt"

	"github.com/sarchlab/tenet/affine"
	"github.com/sarchlab/tenet/iset"
)

type accessSpec struct {
	tensor string
	kind   AccessKind
	fn     string
}

// Builder can build statements.
type Builder struct {
	params  affine.Params
	domain  string
	access  []accessSpec
	inputs  []string
	outputs []string
}

// WithParam binds a loop-nest parameter.
func (b Builder) WithParam(name string, value int) Builder {
	b.params = b.params.Bind(name, value)
	return b
}

// WithUnresolvedParam declares a parameter without a value. Everything that
// depends on it stays symbolic.
func (b Builder) WithUnresolvedParam(name string) Builder {
	b.params = b.params.Clone()
	b.params[name] = nil
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

// WithDomain sets the iteration domain, e.g. "{ S[i] : 0 <= i < N }".
func (b Builder) WithDomain(domain string) Builder {
	b.domain = domain
	return b
}

// WithAccess adds an access function, e.g. "S[i, k] -> A[i, k]".
func (b Builder) WithAccess(tensor string, kind AccessKind, fn string) Builder {
	b.access = append(append([]accessSpec(nil), b.access...),
		accessSpec{tensor: tensor, kind: kind, fn: fn})
	return b
}

// WithInputs sets the input tensors. By default every read tensor is an
// input.
func (b Builder) WithInputs(tensors ...string) Builder {
	b.inputs = append([]string(nil), tensors...)
	return b
}

// WithOutputs sets the output tensors. By default every written tensor is an
// output.
func (b Builder) WithOutputs(tensors ...string) Builder {
	b.outputs = append([]string(nil), tensors...)
	return b
}

// Build enumerates the domain and instantiates every access function over it.
func (b Builder) Build(name string) (*Statement, error) {
	if b.domain == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrNoDomain)
	}

	nest, err := affine.ParseLoopNest(b.domain)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing domain: %w", name, err)
	}

	domain, err := nest.Enumerate(b.params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	s := &Statement{
		name:     name,
		params:   b.params.Clone(),
		domain:   domain,
		accesses: make(map[accessKey]iset.Map),
	}

	for _, a := range b.access {
		fn, err := affine.ParseTupleFunc(a.fn)
		if err != nil {
			return nil, fmt.Errorf("%s: access %s: %w", name, a.tensor, err)
		}
		if fn.InName != nest.Name || len(fn.InVars) != nest.Dim() {
			return nil, fmt.Errorf("%s: access %s: %w", name, a.tensor, ErrSpaceMismatch)
		}

		rel, err := fn.Over(domain, b.params)
		if err != nil {
			return nil, fmt.Errorf("%s: access %s: %w", name, a.tensor, err)
		}

		kinds := []AccessKind{a.kind}
		if a.kind == ReadWrite {
			kinds = []AccessKind{Read, Write}
		}
		for _, k := range kinds {
			key := accessKey{tensor: a.tensor, kind: k}
			s.accesses[key] = s.accesses[key].Union(rel)
		}
	}

	s.inputs, s.outputs = b.inputs, b.outputs
	if s.inputs == nil {
		s.inputs = s.tensorsWith(Read)
	}
	if s.outputs == nil {
		s.outputs = s.tensorsWith(Write)
	}

	return s, nil
}

func (s *Statement) tensorsWith(kind AccessKind) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range s.sortedKeys() {
		if k.kind == kind && !seen[k.tensor] {
			seen[k.tensor] = true
			out = append(out, k.tensor)
		}
	}

	return out
}
