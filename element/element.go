// SPDX-License-Identifier: MIT

package element

import (
	"fmt"
	"strings"
)

// Species is a chemical symbol ("Na", "O") or Vacancy.
type Species string

// Vacancy is the pseudo-species of an unoccupied site.
const Vacancy Species = "X"

// VacancyCode is the canonical code of Vacancy.
const VacancyCode = 0

// vacancyAliases are accepted spellings of Vacancy (compared case-insensitively).
var vacancyAliases = map[string]struct{}{
	"x":       {},
	"va":      {},
	"vac":     {},
	"vacancy": {},
}

// symbols lists element symbols by atomic number (index 0 is the vacancy).
var symbols = [...]string{
	"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// codes maps symbol -> atomic number, built once from symbols.
var codes = func() map[Species]int {
	m := make(map[Species]int, len(symbols))
	for z, s := range symbols {
		m[Species(s)] = z
	}
	return m
}()

// Parse normalizes a symbol: surrounding space is trimmed, vacancy aliases
// map to Vacancy, and known element symbols are case-normalized ("na" ->
// "Na"). Unknown symbols are returned trimmed but otherwise unchanged.
// Errors: ErrBadSpecies for an empty symbol.
func Parse(s string) (Species, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", fmt.Errorf("Parse(%q): %w", s, ErrBadSpecies)
	}
	lower := strings.ToLower(t)
	if _, ok := vacancyAliases[lower]; ok {
		return Vacancy, nil
	}
	canon := strings.ToUpper(lower[:1]) + lower[1:]
	if _, ok := codes[Species(canon)]; ok {
		return Species(canon), nil
	}

	return Species(t), nil
}

// MustParse is Parse for literals in tests and examples; it panics on error.
func MustParse(s string) Species {
	sp, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sp
}

// ParseAll parses every symbol in order.
func ParseAll(ss []string) ([]Species, error) {
	out := make([]Species, len(ss))
	for i, s := range ss {
		sp, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		out[i] = sp
	}

	return out, nil
}

// FromCode returns the species with atomic number z (0 = Vacancy).
func FromCode(z int) (Species, bool) {
	if z < 0 || z >= len(symbols) {
		return "", false
	}
	return Species(symbols[z]), true
}

// Code returns the canonical identifying code: the atomic number, or
// VacancyCode for Vacancy. ok is false for symbols outside the table.
func (s Species) Code() (code int, ok bool) {
	code, ok = codes[s]
	return code, ok
}

// IsVacancy reports whether s denotes an empty site.
func (s Species) IsVacancy() bool { return s == Vacancy }

// String implements fmt.Stringer.
func (s Species) String() string { return string(s) }

// Strings converts species to plain strings (for output formats).
func Strings(sp []Species) []string {
	out := make([]string, len(sp))
	for i, s := range sp {
		out[i] = string(s)
	}
	return out
}

// Dedup returns sp with repeated symbols collapsed to their first
// occurrence, preserving order. The input is not modified.
func Dedup(sp []Species) []Species {
	seen := make(map[Species]struct{}, len(sp))
	out := make([]Species, 0, len(sp))
	for _, s := range sp {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Equal reports whether a and b hold the same symbols in the same order.
func Equal(a, b []Species) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Formula renders a reduced-free chemical formula in first-appearance
// order, skipping vacancies: [Na Na Cl X] -> "Na2Cl".
func Formula(sp []Species) string {
	counts := make(map[Species]int, len(sp))
	order := make([]Species, 0, len(sp))
	for _, s := range sp {
		if s.IsVacancy() {
			continue
		}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	var sb strings.Builder
	for _, s := range order {
		sb.WriteString(string(s))
		if n := counts[s]; n > 1 {
			fmt.Fprintf(&sb, "%d", n)
		}
	}
	return sb.String()
}
