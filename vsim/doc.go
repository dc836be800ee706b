// Package vsim reads and writes atomic configurations in the V_Sim 3.5+
// ascii format.
//
// Layout:
//
//	line 1       free comment
//	lines 2-3    box "dxx dyx dyy" / "dzx dzy dzz" (lower-triangular cell),
//	             or "a b c" / "alpha beta gamma" with #keyword: angdeg
//	#keyword: k1, k2   format switches (case-insensitive)
//	# or !       comment lines
//	x y z Sym    one node per line
//
// Recognized keywords: reduced (fractional node coordinates), bohr, bohrd0,
// atomic, atomicd0 (Bohr length unit), angdeg, periodic, freeBC. Without
// periodic every axis is open. Files declaring surface boundaries are
// rejected with ErrUnsupported.
//
// Write re-expresses the cell in its lower-triangular form (same lengths
// and angles), emits reduced coordinates and a boundary keyword. Files
// whose name ends in ".zst" are transparently zstd (de)compressed by
// ReadFile and WriteFile.
package vsim
