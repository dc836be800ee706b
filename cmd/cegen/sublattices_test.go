package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/internal/config"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/supercell"
)

func TestPrintSublattices(t *testing.T) {
	pristine, err := atoms.New([]element.Species{"Na", "Cl"},
		[]atoms.Vec3{{0, 0, 0}, {2.8, 2.8, 2.8}},
		atoms.Cell{{5.6, 0, 0}, {0, 5.6, 0}, {0, 0, 5.6}}, [3]bool{true, true, true})
	require.NoError(t, err)
	pl, err := lattice.FromCandidates(pristine, [][]element.Species{{"Na", "K"}, {"Cl"}})
	require.NoError(t, err)
	sc, err := supercell.New(pl, supercell.Scalar(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printSublattices(&buf, sc))

	want := "supercell 2x2x2: 16 sites\n" +
		"ID  SPECIES  CODES  SITES\n" +
		"0   Na,K     11,19  8\n" +
		"1   Cl       17     8\n"
	assert.Equal(t, want, buf.String())
}

func TestApplyOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)

	j := &config.Job{
		Pristine:    config.Configuration{File: "p.ascii"},
		Decorations: []config.Decoration{{Name: "d", Structures: 1}},
		Workers:     1,
		Supercell:   config.Supercell{Scalar: 1},
	}
	viper.Set("seed", 5)
	viper.Set("workers", 3)
	viper.Set("compress", true)
	viper.Set("output", "out")
	require.NoError(t, applyOverrides(j))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "out"), j.Output.Dir)

	require.NotNil(t, j.Seed)
	assert.Equal(t, int64(5), *j.Seed)
	assert.Equal(t, 3, j.Workers)
	assert.True(t, j.Output.Compress)

	viper.Set("workers", 0)
	assert.ErrorIs(t, applyOverrides(j), config.ErrInvalidJob)
}
