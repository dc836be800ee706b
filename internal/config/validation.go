// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"
)

// Validate checks the structure of a defaulted job and reports every
// problem found at once.
func Validate(job *Job) error {
	var errs []string

	p := job.Pristine
	switch {
	case p.File == "" && len(p.Sites) == 0:
		errs = append(errs, "pristine: either file or sites is required")
	case p.File != "" && len(p.Sites) > 0:
		errs = append(errs, "pristine: file and sites are mutually exclusive")
	}
	for i, s := range p.Sites {
		if strings.TrimSpace(s.Symbol) == "" {
			errs = append(errs, fmt.Sprintf("pristine: site %d: symbol is required", i))
		}
	}

	if len(job.Substitutions) > 0 && len(job.Candidates) > 0 {
		errs = append(errs, "substitutions and candidates are mutually exclusive")
	}
	if job.Tolerance < 0 {
		errs = append(errs, "tolerance must be non-negative")
	}
	if job.Workers < 1 {
		errs = append(errs, "workers must be at least 1")
	}

	errs = append(errs, validateSupercell(job.Supercell)...)

	if len(job.Decorations) == 0 {
		errs = append(errs, "at least one decoration is required")
	}
	names := make(map[string]bool)
	for i, d := range job.Decorations {
		if names[d.Name] {
			errs = append(errs, fmt.Sprintf("decoration %d: duplicate name %q", i, d.Name))
		}
		names[d.Name] = true
		if d.Structures < 0 {
			errs = append(errs, fmt.Sprintf("decoration %q: structures must be positive", d.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidJob, strings.Join(errs, "\n  - "))
	}
	return nil
}

func validateSupercell(s Supercell) []string {
	forms := 0
	if s.Scalar != 0 {
		forms++
	}
	if len(s.Repeat) > 0 {
		forms++
	}
	if len(s.Matrix) > 0 {
		forms++
	}
	if forms > 1 {
		return []string{"supercell: scalar, repeat and matrix are mutually exclusive"}
	}

	var errs []string
	if s.Scalar < 0 {
		errs = append(errs, "supercell: scalar must be positive")
	}
	if len(s.Repeat) > 0 && len(s.Repeat) != 3 {
		errs = append(errs, "supercell: repeat needs 3 values")
	}
	if len(s.Matrix) > 0 {
		if len(s.Matrix) != 3 {
			errs = append(errs, "supercell: matrix needs 3 rows")
		}
		for i, row := range s.Matrix {
			if len(row) != 3 {
				errs = append(errs, fmt.Sprintf("supercell: matrix row %d needs 3 values", i))
			}
		}
	}
	return errs
}
