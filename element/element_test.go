package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/celattice/element"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want element.Species
	}{
		{"Na", "Na"},
		{" na ", "Na"},
		{"PD", "Pd"},
		{"Vacancy", element.Vacancy},
		{"vac", element.Vacancy},
		{"X", element.Vacancy},
		{"Xe", "Xe"},
		{"Dummy", "Dummy"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := element.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := element.Parse("   ")
	assert.ErrorIs(t, err, element.ErrBadSpecies)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, element.Species("Cu"), element.MustParse("cu"))
	assert.Equal(t, element.Vacancy, element.MustParse("va"))
	assert.Panics(t, func() { element.MustParse("") })
}

func TestParseAll(t *testing.T) {
	got, err := element.ParseAll([]string{"au", "CU", "vacancy"})
	require.NoError(t, err)
	assert.Equal(t, []element.Species{"Au", "Cu", element.Vacancy}, got)

	_, err = element.ParseAll([]string{"Au", ""})
	assert.ErrorIs(t, err, element.ErrBadSpecies)
	assert.Contains(t, err.Error(), "symbol 1")
}

func TestCode(t *testing.T) {
	z, ok := element.Species("Pd").Code()
	assert.True(t, ok)
	assert.Equal(t, 46, z)

	z, ok = element.Vacancy.Code()
	assert.True(t, ok)
	assert.Equal(t, element.VacancyCode, z)

	_, ok = element.Species("Dummy").Code()
	assert.False(t, ok)

	sp, ok := element.FromCode(8)
	assert.True(t, ok)
	assert.Equal(t, element.Species("O"), sp)
	_, ok = element.FromCode(119)
	assert.False(t, ok)
}

func TestDedupAndFormula(t *testing.T) {
	in := []element.Species{"Au", "Cu", "Au", element.Vacancy, "Cu"}
	assert.Equal(t, []element.Species{"Au", "Cu", element.Vacancy}, element.Dedup(in))
	assert.Len(t, in, 5, "input must not be modified")
	assert.Equal(t, "Au2Cu2", element.Formula(in))
	assert.True(t, element.Equal(in[:2], []element.Species{"Au", "Cu"}))
	assert.False(t, element.Equal(in[:2], []element.Species{"Cu", "Au"}))
}
