package mapping

import (
	"fmt"
	"os"

	"github.com/sarchlab/tenet/affine"
	"github.com/sarchlab/tenet/iset"
	"gopkg.in/yaml.v3"
)

type mappingFile struct {
	Name   string        `yaml:"name"`
	Params affine.Params `yaml:"params"`
	Domain string        `yaml:"domain"`
	Space  string        `yaml:"space"`
	Time   string        `yaml:"time"`
}

// LoadOption adjusts how a mapping file is instantiated.
type LoadOption func(b Builder) Builder

// WithDomain instantiates the mapping over domain when the file does not
// carry a domain of its own.
func WithDomain(domain iset.Set) LoadOption {
	return func(b Builder) Builder {
		return b.WithDomain(domain)
	}
}

// OverrideParam binds a parameter, replacing the value given in the file.
func OverrideParam(name string, value int) LoadOption {
	return func(b Builder) Builder {
		return b.WithParam(name, value)
	}
}

// Load reads a mapping from a YAML file.
//
//	name: output_stationary
//	params: {N: 8}
//	domain: "{ S[i, j, k] : 0 <= i < N and 0 <= j < N and 0 <= k < N }"
//	space: "S[i, j, k] -> PE[i, j]"
//	time: "S[i, j, k] -> T[i + j + k]"
func Load(path string, opts ...LoadOption) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	m, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse decodes a mapping from YAML.
func Parse(data []byte, opts ...LoadOption) (*Mapping, error) {
	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode mapping: %w", err)
	}

	b := Builder{}.
		WithParams(f.Params).
		WithLoopNest(f.Domain).
		WithSpace(f.Space).
		WithTime(f.Time)

	for _, opt := range opts {
		b = opt(b)
	}

	name := f.Name
	if name == "" {
		name = "mapping"
	}

	return b.Build(name)
}
