// SPDX-License-Identifier: MIT

// Package job runs a loaded cegen job: parent lattice, supercell,
// decoration batches, structure set and export.
package job

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/internal/config"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/structset"
	"github.com/katalvlaran/celattice/supercell"
	"github.com/katalvlaran/celattice/vsim"
)

// Result summarizes a finished run.
type Result struct {
	Seed        int64
	SuperCell   *supercell.SuperCell
	Set         *structset.Set
	Manifest    *structset.Manifest
	Sublattices []supercell.SublatticeType
}

// BuildLattice constructs the parent lattice described by j, from
// substitution files or explicit candidates.
func BuildLattice(j *config.Job, logger *slog.Logger) (*lattice.ParentLattice, error) {
	logger = orDefault(logger)

	pristine, err := j.PristineAtoms()
	if err != nil {
		return nil, fmt.Errorf("failed to load pristine configuration: %w", err)
	}
	logger.Debug("loaded pristine", "sites", pristine.Len(), "formula", pristine.Formula())

	if len(j.Candidates) > 0 {
		candidates, err := j.CandidateLists()
		if err != nil {
			return nil, err
		}
		return lattice.FromCandidates(pristine, candidates)
	}

	files, err := j.SubstitutionFiles()
	if err != nil {
		return nil, err
	}
	subs := make([]*atoms.Atoms, len(files))
	for i, path := range files {
		if subs[i], err = vsim.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to load substitution: %w", err)
		}
		logger.Debug("loaded substitution", "file", path, "formula", subs[i].Formula())
	}
	return lattice.FromSubstitutions(pristine, subs, lattice.WithTolerance(j.Tolerance))
}

// BuildSuperCell constructs the parent lattice and expands it.
func BuildSuperCell(j *config.Job, logger *slog.Logger) (*supercell.SuperCell, error) {
	pl, err := BuildLattice(j, logger)
	if err != nil {
		return nil, err
	}
	return supercell.New(pl, j.Supercell.Transformation())
}

// Run generates every decoration batch into one set and exports it.
// A job without a seed gets a time-based one, reported in the result.
func Run(ctx context.Context, j *config.Job, logger *slog.Logger) (*Result, error) {
	logger = orDefault(logger)

	sc, err := BuildSuperCell(j, logger)
	if err != nil {
		return nil, err
	}
	res := &Result{SuperCell: sc, Sublattices: sc.SublatticeTypes()}
	logger.Info("supercell ready",
		"transformation", sc.Transformation().String(),
		"sites", sc.NumSites(),
		"sublattices", len(res.Sublattices))

	if j.Seed != nil {
		res.Seed = *j.Seed
	} else {
		res.Seed = time.Now().UnixNano()
		logger.Info("no seed configured, using time-based seed", "seed", res.Seed)
	}
	master := rand.New(rand.NewSource(res.Seed))

	if res.Set, err = structset.New(sc.Parent()); err != nil {
		return nil, err
	}
	for _, d := range j.Decorations {
		start := time.Now()
		sts, err := sc.Generate(ctx, d.Structures, d.Counts,
			supercell.WithRand(master), supercell.WithWorkers(j.Workers))
		if err != nil {
			return nil, fmt.Errorf("decoration %q: %w", d.Name, err)
		}
		if _, err := res.Set.AddAll(sts); err != nil {
			return nil, fmt.Errorf("decoration %q: %w", d.Name, err)
		}
		logger.Info("generated decoration",
			"name", d.Name,
			"structures", len(sts),
			"duration", time.Since(start))
	}

	if dups := res.Set.Duplicates(); len(dups) > 0 {
		logger.Warn("set contains duplicate structures", "fingerprints", len(dups))
	}

	res.Manifest, err = res.Set.Export(j.OutputDir(), structset.ExportOptions{
		Compress: j.Output.Compress,
		Prefix:   j.Output.Prefix,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("exported structures", "dir", j.OutputDir(), "count", len(res.Manifest.Structures))

	return res, nil
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
