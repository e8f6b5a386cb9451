package statement

import (
	"fmt"
	"os"

	"github.com/sarchlab/tenet/affine"
	"gopkg.in/yaml.v3"
)

type accessFile struct {
	Tensor string     `yaml:"tensor"`
	Kind   AccessKind `yaml:"kind"`
	Map    string     `yaml:"map"`
}

type statementFile struct {
	Name     string        `yaml:"name"`
	Params   affine.Params `yaml:"params"`
	Domain   string        `yaml:"domain"`
	Accesses []accessFile  `yaml:"accesses"`
	Inputs   []string      `yaml:"inputs"`
	Outputs  []string      `yaml:"outputs"`
}

// LoadOption adjusts how a statement file is instantiated.
type LoadOption func(b Builder) Builder

// OverrideParam binds a parameter, replacing the value given in the file.
func OverrideParam(name string, value int) LoadOption {
	return func(b Builder) Builder {
		return b.WithParam(name, value)
	}
}

// Load reads a statement from a YAML file.
//
//	name: gemm
//	params: {N: 8}
//	domain: "{ S[i, j, k] : 0 <= i < N and 0 <= j < N and 0 <= k < N }"
//	accesses:
//	  - {tensor: A, kind: read, map: "S[i, j, k] -> A[i, k]"}
//	  - {tensor: B, kind: read, map: "S[i, j, k] -> B[k, j]"}
//	  - {tensor: Y, kind: readwrite, map: "S[i, j, k] -> Y[i, j]"}
func Load(path string, opts ...LoadOption) (*Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file: %w", err)
	}

	st, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return st, nil
}

// Parse decodes a statement from YAML.
func Parse(data []byte, opts ...LoadOption) (*Statement, error) {
	var f statementFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode statement: %w", err)
	}

	b := Builder{}.WithParams(f.Params).WithDomain(f.Domain)
	for _, a := range f.Accesses {
		b = b.WithAccess(a.Tensor, a.Kind, a.Map)
	}
	if f.Inputs != nil {
		b = b.WithInputs(f.Inputs...)
	}
	if f.Outputs != nil {
		b = b.WithOutputs(f.Outputs...)
	}

	for _, opt := range opts {
		b = opt(b)
	}

	name := f.Name
	if name == "" {
		name = "statement"
	}

	return b.Build(name)
}
