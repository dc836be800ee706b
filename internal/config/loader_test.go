package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/structset"
	"github.com/katalvlaran/celattice/supercell"
	"github.com/katalvlaran/celattice/vsim"
)

const inlineJob = `
pristine:
  cell: [[4, 0, 0], [0, 4, 0], [0, 0, 4]]
  scaled: true
  sites:
    - {symbol: Pd, position: [0, 0, 0]}
    - {symbol: Pd, position: [0.5, 0.5, 0]}
    - {symbol: Pd, position: [0.5, 0, 0.5]}
    - {symbol: va, position: [0, 0.5, 0.5]}
candidates: [[Pd], [Pd], [pd, Na], [vacancy, O]]
supercell:
  repeat: [2, 2, 1]
decorations:
  - counts: {1: [2], 2: [1]}
    structures: 5
seed: 42
`

func TestLoadFromReader_Inline(t *testing.T) {
	job, err := LoadFromReader(strings.NewReader(inlineJob), "/jobs")
	require.NoError(t, err)

	// defaults
	assert.Equal(t, lattice.DefaultTolerance, job.Tolerance)
	assert.Equal(t, DefaultWorkers, job.Workers)
	assert.Equal(t, filepath.Join("/jobs", DefaultOutputDir), job.OutputDir())
	assert.Equal(t, structset.DefaultPrefix, job.Output.Prefix)
	require.Len(t, job.Decorations, 1)
	assert.Equal(t, "decoration_0", job.Decorations[0].Name)
	assert.Equal(t, map[int][]int{1: {2}, 2: {1}}, job.Decorations[0].Counts)
	require.NotNil(t, job.Seed)
	assert.Equal(t, int64(42), *job.Seed)

	assert.Equal(t, supercell.Repeat(2, 2, 1), job.Supercell.Transformation())

	a, err := job.PristineAtoms()
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	assert.Equal(t, atoms.Vec3{2, 2, 0}, a.Position(1))
	assert.Equal(t, element.Species("X"), a.Symbol(3))
	assert.Equal(t, [3]bool{true, true, true}, a.PBC())

	candidates, err := job.CandidateLists()
	require.NoError(t, err)
	assert.Equal(t, []element.Species{"Pd", "Na"}, candidates[2])
	assert.Equal(t, []element.Species{element.Vacancy, "O"}, candidates[3])
}

func TestCandidateLists_BadSymbol(t *testing.T) {
	job := &Job{Candidates: [][]string{{"Pd"}, {"Na", " "}}}
	_, err := job.CandidateLists()
	assert.ErrorIs(t, err, element.ErrBadSpecies)
	assert.Contains(t, err.Error(), "site 1")

	job = &Job{Pristine: Configuration{
		Cell:  atoms.Cell{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}},
		Sites: []Site{{Symbol: ""}},
	}}
	_, err = job.PristineAtoms()
	assert.ErrorIs(t, err, element.ErrBadSpecies)
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(inlineJob+"colour: blue\n"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse job YAML")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"NoPristine", "decorations: [{counts: {}}]\n", "either file or sites"},
		{"BothPristine", "pristine: {file: a.ascii, sites: [{symbol: Na}]}\ndecorations: [{counts: {}}]\n", "mutually exclusive"},
		{"NoDecorations", "pristine: {file: a.ascii}\n", "at least one decoration"},
		{"TwoForms", "pristine: {file: a.ascii}\nsupercell: {scalar: 2, repeat: [1, 1, 1]}\ndecorations: [{counts: {}}]\n", "scalar, repeat and matrix"},
		{"ShortRepeat", "pristine: {file: a.ascii}\nsupercell: {repeat: [1, 1]}\ndecorations: [{counts: {}}]\n", "repeat needs 3"},
		{"DuplicateName", "pristine: {file: a.ascii}\ndecorations: [{name: a, counts: {}}, {name: a, counts: {}}]\n", "duplicate name"},
		{"SubsAndCandidates", "pristine: {file: a.ascii}\nsubstitutions: [b.ascii]\ncandidates: [[Na]]\ndecorations: [{counts: {}}]\n", "substitutions and candidates"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tc.yaml), "")
			require.ErrorIs(t, err, ErrInvalidJob)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_FilesAndGlobs(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string, symbols ...element.Species) {
		a, err := atoms.New(symbols, []atoms.Vec3{{0, 0, 0}, {1.5, 1.5, 1.5}},
			atoms.Cell{{3, 0, 0}, {0, 3, 0}, {0, 0, 3}}, [3]bool{true, true, true})
		require.NoError(t, err)
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, vsim.WriteFile(path, a))
	}
	write("pristine.ascii", "Cu", "Cu")
	write("subs/a/gold.ascii", "Au", "Cu")
	write("subs/b/zinc.ascii.zst", "Cu", "Zn")

	jobYAML := `
pristine: {file: pristine.ascii}
substitutions: ["subs/**/*.ascii*", "subs/a/gold.ascii"]
supercell: {scalar: 2}
decorations: [{counts: {0: [1]}}]
output: {dir: out, compress: true}
`
	jobPath := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(jobPath, []byte(jobYAML), 0o644))

	job, err := Load(jobPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out"), job.OutputDir())

	files, err := job.SubstitutionFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "subs", "a", "gold.ascii"),
		filepath.Join(dir, "subs", "b", "zinc.ascii.zst"),
	}, files)

	a, err := job.PristineAtoms()
	require.NoError(t, err)
	assert.Equal(t, "Cu2", a.Formula())

	job.Substitutions = []string{"nothing/*.ascii"}
	_, err = job.SubstitutionFiles()
	assert.ErrorIs(t, err, ErrNoMatch)
}
