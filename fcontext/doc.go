// Package fcontext implements the formal context: a binary relation
// between observations and attributes, closure-system realization
// cl(S) = intent(extent(S)), with bitset-accelerated intent/extent
// lookups via github.com/RoaringBitmap/roaring.
//
// Every mutating method validates, applies, and leaves derived structures
// consistent before returning: rebuild() recomputes the positional arrays
// and bitsets eagerly after any change to the observation set, attribute
// set, or relation, trading incremental bit-twiddling for a simpler,
// always-consistent batch rebuild.
package fcontext
