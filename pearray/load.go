package pearray

import (
	"fmt"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/tenet/affine"
	"gopkg.in/yaml.v3"
)

type arrayFile struct {
	Name       string        `yaml:"name"`
	Params     affine.Params `yaml:"params"`
	Domain     string        `yaml:"domain"`
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Topology   Topology      `yaml:"topology"`
	Links      []string      `yaml:"links"`
	Bandwidth  *float64      `yaml:"bandwidth"`
	AvgLatency *float64      `yaml:"avg_latency"`
	FreqGHz    float64       `yaml:"freq_ghz"`
}

// LoadOption adjusts how a PE array file is instantiated.
type LoadOption func(b Builder) Builder

// OverrideParam binds a parameter, replacing the value given in the file.
func OverrideParam(name string, value int) LoadOption {
	return func(b Builder) Builder {
		return b.WithParam(name, value)
	}
}

// Load reads a PE array from a YAML file.
//
//	name: systolic8x8
//	width: 8
//	height: 8
//	topology: systolic
//	bandwidth: 64     # bits per cycle
//	avg_latency: 1    # cycles
//	freq_ghz: 1
func Load(path string, opts ...LoadOption) (*PEArray, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PE array file: %w", err)
	}

	a, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// Parse decodes a PE array from YAML.
func Parse(data []byte, opts ...LoadOption) (*PEArray, error) {
	var f arrayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode PE array: %w", err)
	}

	b := NewBuilder().WithDomain(f.Domain).WithParams(f.Params)
	if f.Width > 0 {
		b = b.WithWidth(f.Width)
	}
	if f.Height > 0 {
		b = b.WithHeight(f.Height)
	}
	if f.Topology != "" {
		b = b.WithTopology(f.Topology)
	}
	for _, l := range f.Links {
		b = b.WithLink(l)
	}
	if f.Bandwidth != nil {
		b = b.WithBandwidth(*f.Bandwidth)
	}
	if f.AvgLatency != nil {
		b = b.WithAvgLatency(*f.AvgLatency)
	}
	if f.FreqGHz > 0 {
		b = b.WithFreq(sim.Freq(f.FreqGHz) * sim.GHz)
	}

	for _, opt := range opts {
		b = opt(b)
	}

	name := f.Name
	if name == "" {
		name = "pe_array"
	}

	return b.Build(name)
}
