package structset_test

import (
	"context"
	"path/filepath"
	"sync"
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

// nacl is a 2-site lattice: [Na, X] and [Cl, O].
func nacl(t *testing.T) *lattice.ParentLattice {
	t.Helper()
	pristine, err := atoms.New(
		[]element.Species{"Na", "Cl"},
		[]atoms.Vec3{{0, 0, 0}, {2.8, 2.8, 2.8}},
		atoms.Cell{{5.6, 0, 0}, {0, 5.6, 0}, {0, 0, 5.6}},
		[3]bool{true, true, true},
	)
	require.NoError(t, err)
	pl, err := lattice.FromCandidates(pristine, [][]element.Species{
		{"Na", element.Vacancy}, {"Cl", "O"},
	})
	require.NoError(t, err)
	return pl
}

func generate(t *testing.T, pl *lattice.ParentLattice, n int) []*supercell.Structure {
	t.Helper()
	sc, err := supercell.New(pl, supercell.Repeat(2, 1, 1))
	require.NoError(t, err)
	out, err := sc.Generate(context.Background(), n, map[int][]int{0: {1}, 1: {1}}, supercell.WithSeed(11))
	require.NoError(t, err)
	return out
}

func TestSet_AddAndAccess(t *testing.T) {
	pl := nacl(t)
	set, err := structset.New(pl)
	require.NoError(t, err)
	assert.NotEmpty(t, set.ID())
	assert.Same(t, pl, set.Parent())

	sts := generate(t, pl, 3)
	n, err := set.AddAll(sts)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := set.At(2)
	require.NoError(t, err)
	assert.Same(t, sts[2], got)

	_, err = set.At(3)
	assert.ErrorIs(t, err, structset.ErrIndexOutOfRange)
	_, err = set.At(-1)
	assert.ErrorIs(t, err, structset.ErrIndexOutOfRange)

	all := set.All()
	all[0] = nil
	first, _ := set.At(0)
	assert.NotNil(t, first, "All returns a copy")
}

func TestSet_Rejects(t *testing.T) {
	set, err := structset.New(nacl(t))
	require.NoError(t, err)

	_, err = set.Add(nil)
	assert.ErrorIs(t, err, structset.ErrNilStructure)

	// equal content, different lattice instance
	foreign := generate(t, nacl(t), 1)[0]
	_, err = set.Add(foreign)
	assert.ErrorIs(t, err, structset.ErrForeignLattice)
	assert.Zero(t, set.Len())

	_, err = structset.New(nil)
	assert.ErrorIs(t, err, structset.ErrNilParent)
}

func TestSet_ConcurrentAdd(t *testing.T) {
	pl := nacl(t)
	set, err := structset.New(pl)
	require.NoError(t, err)
	sts := generate(t, pl, 40)

	var wg sync.WaitGroup
	for _, st := range sts {
		wg.Add(1)
		go func(st *supercell.Structure) {
			defer wg.Done()
			_, err := set.Add(st)
			assert.NoError(t, err)
			_ = set.Len()
		}(st)
	}
	wg.Wait()
	assert.Equal(t, len(sts), set.Len())
}

func TestSet_Duplicates(t *testing.T) {
	pl := nacl(t)
	set, err := structset.New(pl)
	require.NoError(t, err)
	st := generate(t, pl, 1)[0]
	_, err = set.AddAll([]*supercell.Structure{st, st})
	require.NoError(t, err)

	dups := set.Duplicates()
	require.Len(t, dups, 1)
	assert.Equal(t, []int{0, 1}, dups[st.Fingerprint()])
	assert.Equal(t, 2, set.Len(), "duplicates are kept")
}

func TestSet_Export(t *testing.T) {
	pl := nacl(t)
	set, err := structset.New(pl)
	require.NoError(t, err)
	_, err = set.AddAll(generate(t, pl, 2))
	require.NoError(t, err)

	for _, compress := range []bool{false, true} {
		dir := t.TempDir()
		m, err := set.Export(dir, structset.ExportOptions{Compress: compress, Prefix: "nacl"})
		require.NoError(t, err)
		require.Len(t, m.Structures, 2)
		assert.Equal(t, set.ID(), m.SetID)
		assert.Equal(t, 2, m.ParentSites)
		assert.Equal(t, "2x1x1", m.Supercell)

		want := "nacl_0001.ascii"
		if compress {
			want += vsim.ZstdSuffix
		}
		assert.Equal(t, want, m.Structures[1].File)

		back, err := structset.ReadManifest(dir)
		require.NoError(t, err)
		assert.Equal(t, m, back)

		a, err := vsim.ReadFile(filepath.Join(dir, m.Structures[0].File))
		require.NoError(t, err)
		assert.Equal(t, 3, a.Len(), "one of two Na sites is vacant")
		assert.Equal(t, m.Structures[0].Sites, a.Len())
		assert.Equal(t, m.Structures[0].Formula, a.Formula())
	}
}
