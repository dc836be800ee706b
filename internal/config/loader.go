// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/structset"
	"github.com/katalvlaran/celattice/vsim"
)

// Defaults applied after decoding.
const (
	DefaultWorkers   = 1
	DefaultOutputDir = "structures"
)

// Load reads, defaults and validates the job file at path. Relative paths
// inside the job resolve against the file's directory.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open job: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f, filepath.Dir(path))
}

// LoadFromReader decodes a job from r; baseDir resolves relative paths.
func LoadFromReader(r io.Reader, baseDir string) (*Job, error) {
	var job Job

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true) // reject unknown fields

	if err := decoder.Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}
	job.baseDir = baseDir

	applyDefaults(&job)
	if err := Validate(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// applyDefaults fills every omitted optional field.
func applyDefaults(job *Job) {
	if job.Tolerance == 0 {
		job.Tolerance = lattice.DefaultTolerance
	}
	if job.Workers == 0 {
		job.Workers = DefaultWorkers
	}
	if job.Output.Dir == "" {
		job.Output.Dir = DefaultOutputDir
	}
	if job.Output.Prefix == "" {
		job.Output.Prefix = structset.DefaultPrefix
	}
	sc := &job.Supercell
	if sc.Scalar == 0 && len(sc.Repeat) == 0 && len(sc.Matrix) == 0 {
		sc.Scalar = 1
	}
	for i := range job.Decorations {
		d := &job.Decorations[i]
		if d.Name == "" {
			d.Name = fmt.Sprintf("decoration_%d", i)
		}
		if d.Structures == 0 {
			d.Structures = 1
		}
	}
}

// Resolve returns path relative to the job's directory unless absolute.
func (j *Job) Resolve(path string) string {
	if filepath.IsAbs(path) || j.baseDir == "" {
		return path
	}
	return filepath.Join(j.baseDir, path)
}

// OutputDir returns the resolved output directory.
func (j *Job) OutputDir() string { return j.Resolve(j.Output.Dir) }

// PristineAtoms loads the pristine configuration from file or inline data.
func (j *Job) PristineAtoms() (*atoms.Atoms, error) {
	p := j.Pristine
	if p.File != "" {
		return vsim.ReadFile(j.Resolve(p.File))
	}

	raw := make([]string, len(p.Sites))
	coords := make([]atoms.Vec3, len(p.Sites))
	for i, s := range p.Sites {
		raw[i] = s.Symbol
		coords[i] = s.Position
	}
	symbols, err := element.ParseAll(raw)
	if err != nil {
		return nil, fmt.Errorf("pristine sites: %w", err)
	}
	pbc := [3]bool{true, true, true}
	if p.PBC != nil {
		pbc = *p.PBC
	}
	if p.Scaled {
		return atoms.FromScaled(symbols, coords, p.Cell, pbc)
	}
	return atoms.New(symbols, coords, p.Cell, pbc)
}

// SubstitutionFiles expands every substitution pattern against the job
// directory. Matches of one pattern are sorted; pattern order is kept and
// repeated files are listed once.
func (j *Job) SubstitutionFiles() ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range j.Substitutions {
		matches, err := j.glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("substitution %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("substitution %q: %w", pattern, ErrNoMatch)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (j *Job) glob(pattern string) ([]string, error) {
	if filepath.IsAbs(pattern) {
		return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	}
	base := j.baseDir
	if base == "" {
		base = "."
	}
	matches, err := doublestar.Glob(os.DirFS(base), filepath.ToSlash(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Join(base, filepath.FromSlash(m))
	}
	return matches, nil
}

// CandidateLists parses the explicit candidates into species lists, so
// vacancy aliases and case variants name the same species.
func (j *Job) CandidateLists() ([][]element.Species, error) {
	out := make([][]element.Species, len(j.Candidates))
	for i, cand := range j.Candidates {
		sp, err := element.ParseAll(cand)
		if err != nil {
			return nil, fmt.Errorf("candidates of site %d: %w", i, err)
		}
		out[i] = sp
	}
	return out, nil
}
