// SPDX-License-Identifier: MIT

package vsim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
)

// Bohr is the Bohr radius in Å.
const Bohr = 0.52917721067

// Comment is the first line written by Write.
const Comment = "===== v_sim input file created by celattice ===="

const keywordPrefix = "keyword:"

const (
	methodRead  = "Read"
	methodWrite = "Write"
)

// Read parses one configuration.
// Errors: ErrSyntax (*SyntaxError), ErrUnsupported (surface), element.ErrBadSpecies,
// atoms.ErrBadCellParams, I/O errors.
func Read(r io.Reader) (*atoms.Atoms, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	if _, ok := next(); !ok {
		return nil, scanErr(sc, line, "missing comment line")
	}
	var box []float64
	for i := 0; i < 2; i++ {
		text, ok := next()
		if !ok {
			return nil, scanErr(sc, line, "missing box line")
		}
		for _, f := range strings.Fields(text) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("box value %q", f)}
			}
			box = append(box, v)
		}
	}
	if len(box) < 6 {
		return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("box has %d values, want 6", len(box))}
	}

	keywords := make(map[string]bool)
	var (
		coords  []atoms.Vec3
		symbols []element.Species
	)
	for {
		text, ok := next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		if trimmed[0] == '#' || trimmed[0] == '!' {
			body := strings.ToLower(strings.ReplaceAll(trimmed[1:], ",", " "))
			if strings.HasPrefix(body, keywordPrefix) {
				for _, k := range strings.Fields(body[len(keywordPrefix):]) {
					keywords[k] = true
				}
			}
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 4 {
			return nil, &SyntaxError{Line: line, Msg: "node line needs x y z symbol"}
		}
		var v atoms.Vec3
		for k := 0; k < 3; k++ {
			x, err := strconv.ParseFloat(fields[k], 64)
			if err != nil {
				return nil, &SyntaxError{Line: line, Msg: fmt.Sprintf("coordinate %q", fields[k])}
			}
			v[k] = x
		}
		sp, err := element.Parse(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", methodRead, line, err)
		}
		coords = append(coords, v)
		symbols = append(symbols, sp)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRead, err)
	}

	if keywords["surface"] {
		return nil, fmt.Errorf("%s: surface: %w", methodRead, ErrUnsupported)
	}

	unit := 1.0
	if keywords["bohr"] || keywords["bohrd0"] || keywords["atomic"] || keywords["atomicd0"] {
		unit = Bohr
	}

	var cell atoms.Cell
	if keywords["angdeg"] {
		c, err := atoms.FromParams([6]float64{box[0], box[1], box[2], box[3], box[4], box[5]})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRead, err)
		}
		cell = c
	} else {
		cell = atoms.Cell{
			{box[0] * unit, 0, 0},
			{box[1] * unit, box[2] * unit, 0},
			{box[3] * unit, box[4] * unit, box[5] * unit},
		}
	}
	// freeBC and a missing boundary keyword both leave every axis open.
	pbc := [3]bool{}
	if keywords["periodic"] {
		pbc = [3]bool{true, true, true}
	}

	if keywords["reduced"] {
		return atoms.FromScaled(symbols, coords, cell, pbc)
	}
	for i := range coords {
		for k := 0; k < 3; k++ {
			coords[i][k] *= unit
		}
	}
	return atoms.New(symbols, coords, cell, pbc)
}

func scanErr(sc *bufio.Scanner, line int, msg string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", methodRead, err)
	}
	return &SyntaxError{Line: line + 1, Msg: msg}
}

// Write emits a in V_Sim ascii with reduced coordinates in Å.
// Errors: ErrUnsupported (pbc other than all, none or [T,F,T]),
// atoms.ErrDegenerateCell, atoms.ErrBadCellParams, I/O errors.
func Write(w io.Writer, a *atoms.Atoms) error {
	boundary, err := boundaryKeyword(a.PBC())
	if err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	scaled, err := a.ScaledPositions()
	if err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	cell, err := atoms.FromParams(a.Cell().Params())
	if err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Comment)
	fmt.Fprintln(bw, join(cell[0][0], cell[1][0], cell[1][1]))
	fmt.Fprintln(bw, join(cell[2][0], cell[2][1], cell[2][2]))
	fmt.Fprintln(bw, "#keyword: reduced")
	fmt.Fprintln(bw, "#keyword: angstroem")
	fmt.Fprintf(bw, "#keyword: %s\n", boundary)
	for i, f := range scaled {
		fmt.Fprintf(bw, "%s %s\n", join(f[0], f[1], f[2]), a.Symbol(i))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWrite, err)
	}
	return nil
}

func boundaryKeyword(pbc [3]bool) (string, error) {
	switch pbc {
	case [3]bool{true, true, true}:
		return "periodic", nil
	case [3]bool{}:
		return "freeBC", nil
	case [3]bool{true, false, true}:
		return "surface", nil
	default:
		return "", fmt.Errorf("pbc %v: %w", pbc, ErrUnsupported)
	}
}

func join(xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
