package job

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/internal/config"
	"github.com/katalvlaran/celattice/structset"
	"github.com/katalvlaran/celattice/supercell"
	"github.com/katalvlaran/celattice/vsim"
)

func writeJob(t *testing.T, body string) *config.Job {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	j, err := config.Load(path)
	require.NoError(t, err)
	return j
}

func TestRun_Candidates(t *testing.T) {
	j := writeJob(t, `
pristine:
  cell: [[4, 0, 0], [0, 4, 0], [0, 0, 4]]
  scaled: true
  sites:
    - {symbol: Pd, position: [0, 0, 0]}
    - {symbol: Pd, position: [0.5, 0.5, 0]}
    - {symbol: Pd, position: [0.5, 0, 0.5]}
    - {symbol: X, position: [0, 0.5, 0.5]}
candidates: [[Pd], [Pd], [Pd, Na], [X, O]]
supercell: {repeat: [2, 2, 1]}
decorations:
  - {name: low, counts: {1: [1]}, structures: 3}
  - {name: high, counts: {1: [3], 2: [4]}, structures: 2}
seed: 7
workers: 2
output: {prefix: pdna}
`)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	res, err := Run(context.Background(), j, logger)
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.Seed)
	assert.Equal(t, 16, res.SuperCell.NumSites())
	assert.Len(t, res.Sublattices, 3)
	assert.Equal(t, 5, res.Set.Len())
	require.Len(t, res.Manifest.Structures, 5)

	last, err := res.Set.At(4)
	require.NoError(t, err)
	assert.Equal(t, map[int][]int{1: {3}, 2: {4}}, last.Counts())

	back, err := structset.ReadManifest(j.OutputDir())
	require.NoError(t, err)
	assert.Equal(t, res.Manifest, back)
	_, err = os.Stat(filepath.Join(j.OutputDir(), "pdna_0004.ascii"))
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "generated decoration")
	assert.Contains(t, logs.String(), "name=high")

	// same seed, same structures
	again, err := Run(context.Background(), j, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)
	assert.Equal(t, res.Set.Fingerprints(), again.Set.Fingerprints())
}

func TestBuildLattice_Substitutions(t *testing.T) {
	j := writeJob(t, `
pristine: {file: pristine.ascii}
substitutions: ["subs/*.ascii"]
decorations: [{counts: {}}]
`)
	cell := atoms.Cell{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}
	pos := []atoms.Vec3{{0, 0, 0}, {1.5, 1.5, 1.5}}
	write := func(rel string, symbols ...element.Species) {
		a, err := atoms.New(symbols, pos, cell, [3]bool{true, true, true})
		require.NoError(t, err)
		path := j.Resolve(rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, vsim.WriteFile(path, a))
	}
	write("pristine.ascii", "Cu", "Cu")
	write("subs/1.ascii", "Au", "Cu")
	write("subs/2.ascii", "Au", element.Vacancy)

	pl, err := BuildLattice(j, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]element.Species{{"Cu", "Au"}, {"Cu", element.Vacancy}}, pl.Candidates())
}

func TestRun_Errors(t *testing.T) {
	j := writeJob(t, `
pristine:
  cell: [[3, 0, 0], [0, 3, 0], [0, 0, 3]]
  sites: [{symbol: Cu, position: [0, 0, 0]}]
candidates: [[Cu, Au]]
decorations: [{counts: {0: [2]}}]
seed: 1
`)
	_, err := Run(context.Background(), j, nil)
	require.ErrorIs(t, err, supercell.ErrOverAllocation)
	assert.Contains(t, err.Error(), "decoration_0")
}
