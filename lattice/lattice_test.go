package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
)

var rocksalt = atoms.Cell{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}}

// config builds a 4-site configuration on fixed positions with the given species.
func config(t *testing.T, symbols ...element.Species) *atoms.Atoms {
	t.Helper()
	a, err := atoms.New(symbols, []atoms.Vec3{
		{0, 0, 0}, {2, 2, 0}, {2, 0, 2}, {0, 2, 2},
	}, rocksalt, [3]bool{true, true, true})
	require.NoError(t, err)
	return a
}

func TestFromSubstitutions_Candidates(t *testing.T) {
	pristine := config(t, "Pd", "Pd", "Pd", element.Vacancy)
	subNa := config(t, "Pd", "Pd", "Na", element.Vacancy)
	subO := config(t, "Pd", "Pd", "Na", "O")

	pl, err := lattice.FromSubstitutions(pristine, []*atoms.Atoms{subNa, subO})
	require.NoError(t, err)
	require.Equal(t, pristine.Len(), pl.NumSites())

	want := [][]element.Species{
		{"Pd"},
		{"Pd"},
		{"Pd", "Na"},
		{element.Vacancy, "O"},
	}
	assert.Equal(t, want, pl.Candidates())
	for i := 0; i < pl.NumSites(); i++ {
		assert.Equal(t, pristine.Symbol(i), pl.Site(i).Pristine(), "site %d pristine-first", i)
	}
	assert.Equal(t, []element.Species{"Pd", "Na", element.Vacancy, "O"}, pl.Species())
}

func TestFromSubstitutions_NoSubstitutions(t *testing.T) {
	pl, err := lattice.FromSubstitutions(config(t, "Na", "Cl", "Na", "Cl"), nil)
	require.NoError(t, err)
	for _, s := range pl.Sites() {
		assert.Equal(t, 1, s.NumCandidates())
	}
}

func TestFromSubstitutions_ShapeMismatch(t *testing.T) {
	pristine := config(t, "Pd", "Pd", "Pd", "Pd")

	short, err := atoms.New([]element.Species{"Na"}, []atoms.Vec3{{0, 0, 0}}, rocksalt, [3]bool{true, true, true})
	require.NoError(t, err)
	bigger, err := atoms.New(pristine.Symbols(), pristine.Positions(),
		atoms.Cell{{5, 0, 0}, {0, 5, 0}, {0, 0, 5}}, pristine.PBC())
	require.NoError(t, err)
	shifted := pristine.Positions()
	shifted[2][0] += 0.5
	moved, err := atoms.New(pristine.Symbols(), shifted, rocksalt, pristine.PBC())
	require.NoError(t, err)

	cases := []struct {
		name  string
		sub   *atoms.Atoms
		field string
		index int
	}{
		{"Count", short, atoms.FieldCount, -1},
		{"Cell", bigger, atoms.FieldCell, -1},
		{"Position", moved, atoms.FieldPosition, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.FromSubstitutions(pristine, []*atoms.Atoms{config(t, "Na", "Pd", "Pd", "Pd"), tc.sub})
			require.ErrorIs(t, err, lattice.ErrShapeMismatch)
			var sm *lattice.ShapeMismatchError
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, 1, sm.Input)
			assert.Equal(t, tc.field, sm.Field)
			assert.Equal(t, tc.index, sm.Index)
		})
	}
}

func TestFromSubstitutions_Tolerance(t *testing.T) {
	pristine := config(t, "Pd", "Pd", "Pd", "Pd")
	shifted := pristine.Positions()
	shifted[0][1] += 1e-3
	noisy, err := atoms.New([]element.Species{"Na", "Pd", "Pd", "Pd"}, shifted, rocksalt, pristine.PBC())
	require.NoError(t, err)

	_, err = lattice.FromSubstitutions(pristine, []*atoms.Atoms{noisy})
	require.ErrorIs(t, err, lattice.ErrShapeMismatch)

	_, err = lattice.FromSubstitutions(pristine, []*atoms.Atoms{noisy}, lattice.WithTolerance(1e-2))
	require.NoError(t, err)
}

func TestFromCandidates(t *testing.T) {
	pristine := config(t, "Pd", "Pd", "Pd", element.Vacancy)
	pl, err := lattice.FromCandidates(pristine, [][]element.Species{
		{"Pd"}, {"Pd"}, {"Pd", "Na", "Pd"}, {"Vacancy", "O"},
	})
	require.NoError(t, err)
	assert.Equal(t, []element.Species{"Pd", "Na"}, pl.Site(2).Candidates(), "repeats collapse")
	assert.Equal(t, element.Vacancy, pl.Site(3).Pristine(), "vacancy alias normalizes")

	idx, ok := pl.Site(3).Allows("O")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = pl.Site(0).Allows("Na")
	assert.False(t, ok)
}

func TestFromCandidates_Errors(t *testing.T) {
	pristine := config(t, "Pd", "Pd", "Pd", "Pd")

	_, err := lattice.FromCandidates(pristine, [][]element.Species{{"Pd"}})
	require.ErrorIs(t, err, lattice.ErrShapeMismatch)

	_, err = lattice.FromCandidates(pristine, [][]element.Species{{"Pd"}, {}, {"Pd"}, {"Pd"}})
	require.ErrorIs(t, err, lattice.ErrEmptyCandidates)
	var ec *lattice.EmptyCandidatesError
	require.ErrorAs(t, err, &ec)
	assert.Equal(t, 1, ec.Site)

	_, err = lattice.FromCandidates(pristine, [][]element.Species{{"Pd"}, {" "}, {"Pd"}, {"Pd"}})
	require.ErrorIs(t, err, element.ErrBadSpecies)

	_, err = lattice.FromCandidates(nil, nil)
	require.ErrorIs(t, err, lattice.ErrNilInput)

	empty, err := atoms.New(nil, nil, rocksalt, [3]bool{true, true, true})
	require.NoError(t, err)
	_, err = lattice.FromCandidates(empty, nil)
	require.ErrorIs(t, err, lattice.ErrNoSites)
}

func TestPartition(t *testing.T) {
	cands := [][]element.Species{
		{"Pd"}, {"Pd"}, {"Pd", "Na"}, {element.Vacancy, "O"}, {"Na", "Pd"}, {"Pd", "Na"},
	}
	groups := lattice.Partition(cands)
	require.Len(t, groups, 4)

	assert.Equal(t, []int{0, 1}, groups[0].Sites)
	assert.Equal(t, []int{2, 5}, groups[1].Sites)
	assert.Equal(t, []int{3}, groups[2].Sites)
	assert.Equal(t, []int{4}, groups[3].Sites, "same set, different order is a different sublattice")

	assert.Equal(t, []int{0, 8}, groups[2].Codes)
	assert.Equal(t, []int{46, 11}, groups[1].Codes)
	assert.False(t, groups[0].Active())
	assert.Equal(t, []element.Species{"Na"}, groups[1].Substituents())

	// partition property
	seen := make(map[int]int)
	total := 0
	for id, g := range groups {
		assert.Equal(t, id, g.ID)
		total += g.Size()
		for _, s := range g.Sites {
			seen[s]++
		}
	}
	assert.Equal(t, len(cands), total)
	for i := range cands {
		assert.Equal(t, 1, seen[i], "site %d in exactly one group", i)
	}
}
