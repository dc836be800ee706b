// SPDX-License-Identifier: MIT

// Package config loads cegen job files.
package config

import (
	"github.com/katalvlaran/celattice/supercell"
)

// Job is one generation run: a parent lattice, a supercell, decoration
// plans and where to write the results.
type Job struct {
	// Pristine is the reference configuration.
	Pristine Configuration `yaml:"pristine"`
	// Substitutions lists V_Sim files (doublestar globs allowed) holding
	// fully substituted configurations of the pristine geometry.
	Substitutions []string `yaml:"substitutions,omitempty"`
	// Candidates gives each site's candidate list explicitly instead.
	Candidates [][]string `yaml:"candidates,omitempty"`
	// Tolerance for geometry comparison, Å.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	Supercell   Supercell    `yaml:"supercell"`
	Decorations []Decoration `yaml:"decorations"`

	// Seed drives all randomness; nil means "pick one at run time".
	Seed    *int64 `yaml:"seed,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
	Output  Output `yaml:"output"`

	// baseDir resolves relative paths; the job file's directory.
	baseDir string
}

// Configuration is either a V_Sim file or an inline structure.
type Configuration struct {
	File   string        `yaml:"file,omitempty"`
	Cell   [3][3]float64 `yaml:"cell,omitempty"`
	PBC    *[3]bool      `yaml:"pbc,omitempty"`
	Scaled bool          `yaml:"scaled,omitempty"`
	Sites  []Site        `yaml:"sites,omitempty"`
}

// Site is one inline atom.
type Site struct {
	Symbol   string     `yaml:"symbol"`
	Position [3]float64 `yaml:"position"`
}

// Supercell selects exactly one form of transformation.
type Supercell struct {
	Scalar int     `yaml:"scalar,omitempty"`
	Repeat []int   `yaml:"repeat,omitempty"`
	Matrix [][]int `yaml:"matrix,omitempty"`
}

// Decoration is one batch of structures with identical counts.
type Decoration struct {
	Name string `yaml:"name"`
	// Counts maps sublattice id to substituent counts.
	Counts map[int][]int `yaml:"counts"`
	// Structures is how many to generate; 1 when omitted.
	Structures int `yaml:"structures,omitempty"`
}

// Output controls export.
type Output struct {
	Dir      string `yaml:"dir,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Compress bool   `yaml:"compress,omitempty"`
}

// Transformation returns the configured supercell transformation.
// Call after Validate.
func (s Supercell) Transformation() supercell.Transformation {
	switch {
	case len(s.Repeat) == 3:
		return supercell.Repeat(s.Repeat[0], s.Repeat[1], s.Repeat[2])
	case len(s.Matrix) == 3:
		var p [3][3]int
		for i := range p {
			copy(p[i][:], s.Matrix[i])
		}
		return supercell.Matrix(p)
	default:
		return supercell.Scalar(s.Scalar)
	}
}

// BaseDir returns the directory relative paths resolve against.
func (j *Job) BaseDir() string { return j.baseDir }
