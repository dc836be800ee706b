package supercell_test

import (
	"fmt"

	"github.com/katalvlaran/celattice/atoms"
	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/supercell"
)

// ExampleSuperCell_Decorate places 3 Au atoms on a 2×2×2 Cu supercell.
func ExampleSuperCell_Decorate() {
	cu, _ := atoms.New([]element.Species{"Cu"}, []atoms.Vec3{{0, 0, 0}},
		atoms.Cell{{3.6, 0, 0}, {0, 3.6, 0}, {0, 0, 3.6}}, [3]bool{true, true, true})
	pl, _ := lattice.FromCandidates(cu, [][]element.Species{{"Cu", "Au"}})

	sc, _ := supercell.New(pl, supercell.Scalar(2))
	for _, st := range sc.SublatticeTypes() {
		fmt.Printf("sublattice %d: %v on %d sites\n", st.ID, st.Species, st.Size)
	}

	s, _ := sc.Decorate(map[int][]int{0: {3}}, supercell.WithSeed(42))
	fmt.Println(s.Counts())
	fmt.Printf("Au fraction: %.3f\n", s.Concentration()["Au"])

	// Output:
	// sublattice 0: [Cu Au] on 8 sites
	// map[0:[3]]
	// Au fraction: 0.375
}
