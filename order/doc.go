// Package order provides totally-ordered elements and canonical ordered
// sets with lexicographic (lectic) comparison.
//
// A Set[E] is a balanced-tree-backed collection (github.com/google/btree)
// of elements drawn from a totally-ordered domain. Membership, insertion,
// and removal are O(log n); First/Last are O(log n) tree-descent (the
// underlying btree does not cache extremes, so these are not O(1), but
// remain logarithmic rather than linear).
//
// Two sets S and T over the same element domain admit a lectic order:
// given the ambient total order e1 < e2 < ... < en, S is lectically
// smaller than T iff the least element of the symmetric difference S Δ T
// belongs to T. This is the order Next-Closure enumerates concepts in.
package order

import (
	"github.com/google/btree"
)

// Less reports whether a sorts strictly before b under the domain's total
// order. Implementations must be a strict weak order stable for the
// lifetime of any element stored in a Set.
type Less[E any] func(a, b E) bool

// Set is a canonical ordered set of elements of type E.
//
// The zero value is not usable; construct with NewSet. A Set is not safe
// for concurrent mutation — callers needing concurrent readers during a
// single-writer phase should follow the same quiesce-before-read
// discipline as the rest of this module (see dgraph.Graph).
type Set[E any] struct {
	less Less[E]
	tree *btree.BTreeG[E]
}

// degree is the btree branching factor; 32 is the library's documented
// sweet spot for small-to-medium in-memory sets of this shape.
const degree = 32

// NewSet returns an empty Set ordered by less.
func NewSet[E any](less Less[E]) *Set[E] {
	return &Set[E]{
		less: less,
		tree: btree.NewG(degree, less),
	}
}

// NewSetFrom returns a Set containing the given elements, ordered by less.
// Duplicate elements (per less) collapse to one.
func NewSetFrom[E any](less Less[E], elems ...E) *Set[E] {
	s := NewSet(less)
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts e, returning true if it was not already present.
func (s *Set[E]) Add(e E) bool {
	_, existed := s.tree.ReplaceOrInsert(e)

	return !existed
}

// Remove deletes e, returning true if it was present.
func (s *Set[E]) Remove(e E) bool {
	_, existed := s.tree.Delete(e)

	return existed
}

// Contains reports whether e is a member of s.
func (s *Set[E]) Contains(e E) bool {
	return s.tree.Has(e)
}

// Len returns the number of elements in s.
func (s *Set[E]) Len() int {
	return s.tree.Len()
}

// IsEmpty reports whether s has no elements.
func (s *Set[E]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// First returns the least element under less, or the zero value and false
// if s is empty.
func (s *Set[E]) First() (E, bool) {
	return s.tree.Min()
}

// Last returns the greatest element under less, or the zero value and
// false if s is empty.
func (s *Set[E]) Last() (E, bool) {
	return s.tree.Max()
}

// Elements returns the members of s in ascending order. The returned
// slice is a fresh copy; mutating it does not affect s.
func (s *Set[E]) Elements() []E {
	out := make([]E, 0, s.tree.Len())
	s.tree.Ascend(func(e E) bool {
		out = append(out, e)

		return true
	})

	return out
}

// Clone returns an independent copy of s. Because btree.BTreeG uses
// copy-on-write internally, Clone is O(1) and safe to call concurrently
// with reads of the original (but not with concurrent writes).
func (s *Set[E]) Clone() *Set[E] {
	return &Set[E]{
		less: s.less,
		tree: s.tree.Clone(),
	}
}

// Equal reports whether s and other contain exactly the same elements.
func (s *Set[E]) Equal(other *Set[E]) bool {
	if other == nil {
		return s.IsEmpty()
	}
	if s.Len() != other.Len() {
		return false
	}

	equal := true
	s.tree.Ascend(func(e E) bool {
		if !other.Contains(e) {
			equal = false

			return false
		}

		return true
	})

	return equal
}

// SubsetOf reports whether every element of s is also in other.
func (s *Set[E]) SubsetOf(other *Set[E]) bool {
	if other == nil {
		return s.IsEmpty()
	}

	subset := true
	s.tree.Ascend(func(e E) bool {
		if !other.Contains(e) {
			subset = false

			return false
		}

		return true
	})

	return subset
}

// Union returns a new Set containing every element of s or other.
func (s *Set[E]) Union(other *Set[E]) *Set[E] {
	out := s.Clone()
	if other == nil {
		return out
	}
	other.tree.Ascend(func(e E) bool {
		out.Add(e)

		return true
	})

	return out
}

// Intersect returns a new Set containing elements present in both s and
// other.
func (s *Set[E]) Intersect(other *Set[E]) *Set[E] {
	out := NewSet(s.less)
	if other == nil {
		return out
	}

	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	small.tree.Ascend(func(e E) bool {
		if large.Contains(e) {
			out.Add(e)
		}

		return true
	})

	return out
}

// Diff returns a new Set containing elements of s not present in other
// (s \ other).
func (s *Set[E]) Diff(other *Set[E]) *Set[E] {
	out := NewSet(s.less)
	s.tree.Ascend(func(e E) bool {
		if other == nil || !other.Contains(e) {
			out.Add(e)
		}

		return true
	})

	return out
}

// SymmetricDiff returns a new Set containing elements in exactly one of
// s and other.
func (s *Set[E]) SymmetricDiff(other *Set[E]) *Set[E] {
	return s.Diff(other).Union(other.Diff(s))
}

// CompareLectic compares s and other under the lectic order: the set
// containing the smaller element of the symmetric difference is the
// lectically smaller one. Returns -1 if s < other, +1 if s > other, 0 if
// equal.
func (s *Set[E]) CompareLectic(other *Set[E]) int {
	diff := s.SymmetricDiff(other)
	if diff.IsEmpty() {
		return 0
	}

	least, _ := diff.First()
	if other.Contains(least) {
		return -1 // least differing element favors other => s is lectically smaller
	}

	return 1
}
