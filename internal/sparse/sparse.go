// Package sparse provides the state set used by NFA simulation.
//
// A sparse set supports O(1) insert, membership and clear while keeping its
// members in a dense slice in insertion order. Clearing does not touch the
// backing arrays, which is what makes it cheap to reuse one set per input
// byte.
package sparse

import "github.com/coregx/regexfa/internal/conv"

// SparseSet is a set of uint32 values drawn from [0, capacity).
//
// sparse maps a value to its index in dense; a value is a member iff that
// index is below size and dense at that index holds the value back. Stale
// entries in sparse are therefore harmless.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet creates a set able to hold values in [0, capacity).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, capacity),
	}
}

// Capacity returns the exclusive upper bound on storable values.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Resize changes the capacity to hold values in [0, capacity). Growing keeps
// the current members; shrinking clears the set.
func (s *SparseSet) Resize(capacity uint32) {
	if int(capacity) <= len(s.sparse) {
		s.sparse = s.sparse[:capacity]
		s.dense = s.dense[:capacity]
		s.size = 0
		return
	}
	sparse := make([]uint32, capacity)
	dense := make([]uint32, capacity)
	copy(sparse, s.sparse)
	copy(dense, s.dense[:s.size])
	s.sparse, s.dense = sparse, dense
}

// Insert adds value and reports whether it was newly added.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense[s.size] = value
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether value is in the set. Values outside the capacity
// are never members.
func (s *SparseSet) Contains(value uint32) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear removes all elements in O(1).
func (s *SparseSet) Clear() {
	s.size = 0
}

// Len returns the number of elements.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the members in insertion order. The slice aliases the set
// and is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Clone returns an independent copy of s.
func (s *SparseSet) Clone() *SparseSet {
	c := NewSparseSet(conv.IntToUint32(s.Capacity()))
	for _, v := range s.Values() {
		c.Insert(v)
	}
	return c
}

// SparseSets is a pair of sets used as the current and next state sets of a
// simulation step.
type SparseSets struct {
	Set1 *SparseSet
	Set2 *SparseSet
}

// NewSparseSets creates two sets of the same capacity.
func NewSparseSets(capacity uint32) *SparseSets {
	return &SparseSets{
		Set1: NewSparseSet(capacity),
		Set2: NewSparseSet(capacity),
	}
}

// Swap exchanges Set1 and Set2.
func (ss *SparseSets) Swap() {
	ss.Set1, ss.Set2 = ss.Set2, ss.Set1
}

// Resize resizes both sets.
func (ss *SparseSets) Resize(capacity uint32) {
	ss.Set1.Resize(capacity)
	ss.Set2.Resize(capacity)
}
