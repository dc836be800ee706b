// SPDX-License-Identifier: MIT

package supercell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/matrix"
)

const methodNew = "New"

// imageEps is the tolerance on supercell fractional coordinates when
// deciding whether a parent-lattice translation lies inside the supercell.
const imageEps = 1e-8

// Origin records where a supercell site comes from.
type Origin struct {
	// Site is the parent site index.
	Site int
	// Image is the parent-lattice translation, in units of parent vectors.
	Image [3]int
}

// SuperCell is a ParentLattice expanded by an integer transformation.
// It is immutable and safe for concurrent use.
type SuperCell struct {
	parent    *lattice.ParentLattice
	trans     Transformation
	cell      atoms.Cell
	pbc       [3]bool
	images    [][3]int
	positions []atoms.Vec3
	origins   []Origin
}

// New expands parent by t. Sites are laid out image-major: for each
// lattice translation inside the supercell (lexicographic), every parent
// site in order. Positions are wrapped into the supercell along periodic
// axes; each replica keeps its parent site's candidate list.
//
// Errors: ErrNilParent, ErrSingularTransformation (*SingularTransformationError),
// atoms.ErrDegenerateCell.
// Complexity: O(det(P)·n) for n parent sites.
func New(parent *lattice.ParentLattice, t Transformation) (*SuperCell, error) {
	if parent == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilParent)
	}
	if err := t.validate(parent.PBC()); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodNew, t, err)
	}

	v := parent.Cell()
	s, err := t.cell(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	sc := &SuperCell{
		parent: parent,
		trans:  t,
		cell:   atoms.Cell(s),
		pbc:    parent.PBC(),
	}
	inv, err := sc.cell.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	images, err := latticeImages(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	sc.images = images

	n := parent.NumSites()
	sc.positions = make([]atoms.Vec3, 0, len(images)*n)
	sc.origins = make([]Origin, 0, len(images)*n)
	for _, img := range images {
		shift := v.Cartesian(atoms.Vec3{float64(img[0]), float64(img[1]), float64(img[2])})
		for i := 0; i < n; i++ {
			r := parent.Site(i).Position()
			r = atoms.Vec3{r[0] + shift[0], r[1] + shift[1], r[2] + shift[2]}
			f := atoms.WrapFractional(inv.Cartesian(r), sc.pbc)
			sc.positions = append(sc.positions, sc.cell.Cartesian(f))
			sc.origins = append(sc.origins, Origin{Site: i, Image: img})
		}
	}

	return sc, nil
}

// latticeImages enumerates the integer translations t with t·P⁻¹ in
// [0,1)³, scanning the bounding box of P's corners. Exactly det(P)
// translations qualify.
func latticeImages(t Transformation) ([][3]int, error) {
	p := t.P()
	pm, err := t.dense()
	if err != nil {
		return nil, err
	}
	pinv, err := matrix.Inverse(pm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t, ErrSingularTransformation)
	}

	// bounding box of the 8 corners n0·P[0] + n1·P[1] + n2·P[2], n ∈ {0,1}
	lo := [3]int{}
	hi := [3]int{}
	for mask := 0; mask < 8; mask++ {
		var c [3]int
		for r := 0; r < 3; r++ {
			if mask&(1<<r) == 0 {
				continue
			}
			for k := 0; k < 3; k++ {
				c[k] += p[r][k]
			}
		}
		for k := 0; k < 3; k++ {
			if c[k] < lo[k] {
				lo[k] = c[k]
			}
			if c[k] > hi[k] {
				hi[k] = c[k]
			}
		}
	}

	want := t.Det()
	images := make([][3]int, 0, want)
	vec := make([]float64, 3)
	for a := lo[0]; a <= hi[0]; a++ {
		for b := lo[1]; b <= hi[1]; b++ {
			for c := lo[2]; c <= hi[2]; c++ {
				vec[0], vec[1], vec[2] = float64(a), float64(b), float64(c)
				f, err := matrix.VecMat(vec, pinv)
				if err != nil {
					return nil, err
				}
				if inUnitCube(f) {
					images = append(images, [3]int{a, b, c})
				}
			}
		}
	}
	if len(images) != want {
		return nil, fmt.Errorf("%s: found %d images, want %d: %w", t, len(images), want, ErrSingularTransformation)
	}

	return images, nil
}

func inUnitCube(f []float64) bool {
	for _, x := range f {
		if x < -imageEps || x >= 1-imageEps || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// Parent returns the parent lattice.
func (sc *SuperCell) Parent() *lattice.ParentLattice { return sc.parent }

// Transformation returns P.
func (sc *SuperCell) Transformation() Transformation { return sc.trans }

// Cell returns S = P·V.
func (sc *SuperCell) Cell() atoms.Cell { return sc.cell }

// PBC returns the parent's periodicity.
func (sc *SuperCell) PBC() [3]bool { return sc.pbc }

// NumSites returns det(P) × parent site count.
func (sc *SuperCell) NumSites() int { return len(sc.positions) }

// NumImages returns det(P).
func (sc *SuperCell) NumImages() int { return len(sc.images) }

// Position returns the Cartesian position of supercell site i.
func (sc *SuperCell) Position(i int) atoms.Vec3 { return sc.positions[i] }

// Positions returns a copy of all site positions.
func (sc *SuperCell) Positions() []atoms.Vec3 {
	out := make([]atoms.Vec3, len(sc.positions))
	copy(out, sc.positions)
	return out
}

// Origin returns the parent site and translation of supercell site i.
func (sc *SuperCell) Origin(i int) Origin { return sc.origins[i] }

// Site returns the parent site replicated at supercell site i.
func (sc *SuperCell) Site(i int) lattice.Site { return sc.parent.Site(sc.origins[i].Site) }

// Candidates returns a copy of every supercell site's candidate list.
func (sc *SuperCell) Candidates() [][]element.Species {
	out := make([][]element.Species, len(sc.origins))
	for i := range sc.origins {
		out[i] = sc.Site(i).Candidates()
	}
	return out
}

// Sublattices partitions the supercell sites by candidate list. Ids follow
// first appearance over supercell sites, which matches the parent's ids
// because the first image replicates the parent sites in order.
func (sc *SuperCell) Sublattices() []lattice.Sublattice {
	return lattice.Partition(sc.Candidates())
}

// SublatticeType summarizes one sublattice for display.
type SublatticeType struct {
	ID      int
	Species []element.Species
	Codes   []int
	Size    int
}

// SublatticeTypes returns, per sublattice id, its candidate species, their
// codes and its site count.
func (sc *SuperCell) SublatticeTypes() []SublatticeType {
	groups := sc.Sublattices()
	out := make([]SublatticeType, len(groups))
	for i, g := range groups {
		out[i] = SublatticeType{ID: g.ID, Species: g.Species, Codes: g.Codes, Size: g.Size()}
	}
	return out
}

// Pristine returns the supercell with every site at its pristine occupant.
func (sc *SuperCell) Pristine() *Structure {
	return newStructure(sc, make([]int, sc.NumSites()))
}
