// SPDX-License-Identifier: MIT

package structset

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/celattice/lattice"
	"github.com/katalvlaran/celattice/supercell"
)

// Set is an ordered, append-only collection of structures sharing one
// parent lattice.
type Set struct {
	mu         sync.RWMutex
	id         string
	parent     *lattice.ParentLattice
	structures []*supercell.Structure
}

// New returns an empty set bound to parent.
func New(parent *lattice.ParentLattice) (*Set, error) {
	if parent == nil {
		return nil, ErrNilParent
	}
	return &Set{id: uuid.New().String(), parent: parent}, nil
}

// ID returns the set's unique identifier.
func (s *Set) ID() string { return s.id }

// Parent returns the parent lattice every member is built on.
func (s *Set) Parent() *lattice.ParentLattice { return s.parent }

// Add appends st and returns the new member count.
// Errors: ErrNilStructure, ErrForeignLattice.
func (s *Set) Add(st *supercell.Structure) (int, error) {
	if st == nil {
		return 0, fmt.Errorf("Add: %w", ErrNilStructure)
	}
	if st.SuperCell().Parent() != s.parent {
		return 0, fmt.Errorf("Add: %w", ErrForeignLattice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.structures = append(s.structures, st)
	return len(s.structures), nil
}

// AddAll appends every structure in order, stopping at the first error.
func (s *Set) AddAll(sts []*supercell.Structure) (int, error) {
	n := s.Len()
	for i, st := range sts {
		var err error
		if n, err = s.Add(st); err != nil {
			return n, fmt.Errorf("AddAll: structure %d: %w", i, err)
		}
	}
	return n, nil
}

// Len returns the member count.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.structures)
}

// At returns member i. Errors: ErrIndexOutOfRange.
func (s *Set) At(i int) (*supercell.Structure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.structures) {
		return nil, fmt.Errorf("At: %d of %d: %w", i, len(s.structures), ErrIndexOutOfRange)
	}
	return s.structures[i], nil
}

// All returns a copy of the member slice.
func (s *Set) All() []*supercell.Structure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*supercell.Structure, len(s.structures))
	copy(out, s.structures)
	return out
}

// Fingerprints returns every member's fingerprint in order.
func (s *Set) Fingerprints() []string {
	all := s.All()
	out := make([]string, len(all))
	for i, st := range all {
		out[i] = st.Fingerprint()
	}
	return out
}

// Duplicates maps each repeated fingerprint to the indices sharing it.
// Members are never removed.
func (s *Set) Duplicates() map[string][]int {
	byFP := make(map[string][]int)
	for i, fp := range s.Fingerprints() {
		byFP[fp] = append(byFP[fp], i)
	}
	for fp, idx := range byFP {
		if len(idx) < 2 {
			delete(byFP, fp)
		}
	}
	return byFP
}
