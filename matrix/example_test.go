package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/celattice/matrix"
)

// ExampleDet shows the volume of the fcc primitive cell (a = 4.05 Å),
// a quarter of the conventional cubic cell.
func ExampleDet() {
	h := 4.05 / 2
	cell, _ := matrix.NewFromRows([][]float64{
		{0, h, h},
		{h, 0, h},
		{h, h, 0},
	})
	vol, _ := matrix.Det(cell)
	fmt.Printf("volume: %.4f\n", vol)
	fmt.Printf("cubic/4: %.4f\n", 4.05*4.05*4.05/4)

	// Output:
	// volume: 16.6075
	// cubic/4: 16.6075
}
