// Package statement describes the computation being analyzed: its iteration
// domain, the tensors it touches and the access relations from iterations to
// tensor elements.
package statement

import (
	"sort"

	"github.com/sarchlab/tenet/affine"
	"github.com/sarchlab/tenet/iset"
)

type accessKey struct {
	tensor string
	kind   AccessKind
}

// Statement owns an iteration domain and its access relations.
type Statement struct {
	name     string
	params   affine.Params
	domain   iset.Set
	accesses map[accessKey]iset.Map
	inputs   []string
	outputs  []string
}

// Name returns the name of the statement.
func (s *Statement) Name() string {
	return s.name
}

// Params returns the parameters the statement was instantiated with.
func (s *Statement) Params() affine.Params {
	return s.params.Clone()
}

// Domain returns the iteration domain.
func (s *Statement) Domain() iset.Set {
	return s.domain
}

// Access returns the relation from iterations to the elements of tensor
// accessed with kind. An empty tensor name selects every tensor. ReadWrite
// selects both reads and writes. Unknown tensors yield an empty relation.
func (s *Statement) Access(tensor string, kind AccessKind) iset.Map {
	if kind == ReadWrite {
		return s.Access(tensor, Read).Union(s.Access(tensor, Write))
	}

	if tensor != "" {
		return s.accesses[accessKey{tensor: tensor, kind: kind}]
	}

	var out iset.Map
	for _, k := range s.sortedKeys() {
		if k.kind == kind {
			out = out.Union(s.accesses[k])
		}
	}

	return out
}

// HasAccess reports whether the statement accesses tensor with kind.
func (s *Statement) HasAccess(tensor string, kind AccessKind) bool {
	if kind == ReadWrite {
		return s.HasAccess(tensor, Read) && s.HasAccess(tensor, Write)
	}

	_, ok := s.accesses[accessKey{tensor: tensor, kind: kind}]
	return ok
}

// Tensors returns the input and the output tensor names.
func (s *Statement) Tensors() (inputs, outputs []string) {
	return append([]string(nil), s.inputs...), append([]string(nil), s.outputs...)
}

// Clone returns a deep copy of the statement. Relations are immutable, so the
// copy shares them.
func (s *Statement) Clone() *Statement {
	c := &Statement{
		name:     s.name,
		params:   s.params.Clone(),
		domain:   s.domain,
		accesses: make(map[accessKey]iset.Map, len(s.accesses)),
	}
	for k, v := range s.accesses {
		c.accesses[k] = v
	}
	c.inputs, c.outputs = s.Tensors()

	return c
}

func (s *Statement) sortedKeys() []accessKey {
	keys := make([]accessKey, 0, len(s.accesses))
	for k := range s.accesses {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].tensor != keys[j].tensor {
			return keys[i].tensor < keys[j].tensor
		}
		return keys[i].kind < keys[j].kind
	})

	return keys
}
