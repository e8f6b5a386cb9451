// Package experiment runs dataflow analyses in batch and reports their
// metrics.
//
// An experiment file names the three collaborator files, relative to a data
// directory, separated by white space:
//
//	mapping/gemm_os.m pe_array/systolic.p statement/gemm.s
package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Experiment names the files of one analysis.
type Experiment struct {
	Name      string
	Mapping   string
	PEArray   string
	Statement string
}

// Parse reads an experiment description.
func Parse(name string, data []byte) (Experiment, error) {
	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return Experiment{}, fmt.Errorf("%s: %w", name, ErrMalformedExperiment)
	}

	return Experiment{
		Name:      name,
		Mapping:   fields[0],
		PEArray:   fields[1],
		Statement: fields[2],
	}, nil
}

// Load reads an experiment file and resolves its paths against dataDir.
func Load(path, dataDir string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read experiment file: %w", err)
	}

	e, err := Parse(filepath.Base(path), data)
	if err != nil {
		return Experiment{}, err
	}

	e.Mapping = filepath.Join(dataDir, e.Mapping)
	e.PEArray = filepath.Join(dataDir, e.PEArray)
	e.Statement = filepath.Join(dataDir, e.Statement)

	return e, nil
}

// LoadDir reads every experiment file in dir, sorted by name.
func LoadDir(dir, dataDir string) ([]Experiment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	exps := make([]Experiment, 0, len(names))
	for _, n := range names {
		e, err := Load(filepath.Join(dir, n), dataDir)
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}

	return exps, nil
}
