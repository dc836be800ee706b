// SPDX-License-Identifier: MIT

// Package main provides the cegen CLI: parent lattices, supercells and
// random decorations for cluster-expansion training sets.
package main

func main() {
	Execute()
}
