// SPDX-License-Identifier: MIT

// Package config loads the YAML analysis profile consumed by cmd/socnet.
//
// A profile names the network to analyse (a generated topology or an
// explicit edge list), the analyses to run and how to log. Zero fields fall
// back to Default; the merged profile is checked with validator/v10.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile wraps every validation failure.
var ErrInvalidProfile = errors.New("config: invalid profile")

// DefaultFileNames are probed, in order, by LoadDir.
var DefaultFileNames = []string{"socnet.yml", "socnet.yaml"}

// Topology kinds.
const (
	KindStar     = "star"
	KindCycle    = "cycle"
	KindLattice  = "lattice"
	KindComplete = "complete"
	KindPath     = "path"
	KindWheel    = "wheel"
	KindRandom   = "random"
	KindEdges    = "edges"
)

// Profile is the root document.
type Profile struct {
	Network  Network  `yaml:"network"`
	Analysis Analysis `yaml:"analysis"`
	Log      Log      `yaml:"log"`
}

// Network describes the graph to build.
type Network struct {
	Kind        string   `yaml:"kind" validate:"required,oneof=star cycle lattice complete path wheel random edges"`
	Vertices    int      `yaml:"vertices,omitempty" validate:"gte=0,lte=100000"`
	Degree      int      `yaml:"degree,omitempty" validate:"gte=0"`
	Probability float64  `yaml:"probability,omitempty" validate:"gte=0,lte=1"`
	Seed        int64    `yaml:"seed,omitempty"`
	Directed    bool     `yaml:"directed,omitempty"`
	MaxWeight   int      `yaml:"maxWeight,omitempty" validate:"gte=0"`
	Relations   []string `yaml:"relations,omitempty" validate:"dive,required"`
	Edges       []Edge   `yaml:"edges,omitempty" validate:"required_if=Kind edges,dive"`
}

// Edge is one tie of an explicit edge list. An absent Weight means 1; an
// explicit 0 is kept as a zero-weight tie.
type Edge struct {
	From     int      `yaml:"from"`
	To       int      `yaml:"to"`
	Weight   *float64 `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
	Relation int      `yaml:"relation,omitempty" validate:"gte=0"`
	Directed bool     `yaml:"directed,omitempty"`
}

// Analysis selects what to compute.
type Analysis struct {
	Workers       int      `yaml:"workers,omitempty" validate:"gte=0,lte=1024"`
	InvertWeights bool     `yaml:"invertWeights,omitempty"`
	Weighted      bool     `yaml:"weighted,omitempty"`
	Indices       []string `yaml:"indices,omitempty" validate:"dive,oneof=DC DP CC IRCC BC SC EC PC IC PP PRP"`
	Census        bool     `yaml:"census,omitempty"`
	Clustering    bool     `yaml:"clustering,omitempty"`
	Walks         int      `yaml:"walks,omitempty" validate:"gte=0,lte=64"`
	Damping       float64  `yaml:"damping,omitempty" validate:"gte=0,lte=1"`
}

// Log configures the CLI logger.
type Log struct {
	Level      string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format     string `yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"maxSizeMB,omitempty" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups,omitempty" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// EdgeWeight returns the tie weight, 1 when the profile leaves it out.
func (e Edge) EdgeWeight() float64 {
	if e.Weight == nil {
		return 1
	}

	return *e.Weight
}

// Default returns the profile used when no file is given: a five-vertex
// star with every index, the census and clustering.
func Default() *Profile {
	return &Profile{
		Network: Network{Kind: KindStar, Vertices: 5},
		Analysis: Analysis{
			Indices:    []string{"DC", "CC", "BC", "SC", "EC", "PC", "IC", "DP", "PP", "PRP"},
			Census:     true,
			Clustering: true,
		},
		Log: Log{Level: "info", Format: "text", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(data)
}

// LoadDir probes dir for DefaultFileNames. It returns Default (not an
// error) when none exists.
func LoadDir(dir string) (*Profile, error) {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		return Load(path)
	}

	return Default(), nil
}

// Validate checks field tags and the cross-field rules tags cannot express.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	n := p.Network
	if n.Kind != KindEdges && n.Vertices == 0 {
		return fmt.Errorf("%w: network.vertices is required for kind %q", ErrInvalidProfile, n.Kind)
	}
	if n.Kind == KindLattice && (n.Degree < 2 || n.Degree%2 != 0 || n.Degree >= n.Vertices) {
		return fmt.Errorf("%w: network.degree must be even, ≥ 2 and < vertices", ErrInvalidProfile)
	}
	relations := max(1, len(n.Relations))
	for i, e := range n.Edges {
		if e.Relation >= relations {
			return fmt.Errorf("%w: edges[%d].relation %d has no name", ErrInvalidProfile, i, e.Relation)
		}
	}

	return nil
}
