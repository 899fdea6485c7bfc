// File: nextclosure.go
// Role: Next-Closure lectic enumeration (Ganter/Wille).
//
// Next-Closure is mathematically guaranteed never to revisit a closed
// set, so AllClosures relies on NextClosure's explicit bottom (ok == false)
// signal to stop rather than a defensive "contains" check against the
// previously-seen set.
package closure

import "github.com/go-fca/lattice/order"

// NextClosure computes the lectically next closed set after x (which
// must itself be closed). Returns (nil, false) if x is the top element
// (no lectically-larger closed set exists).
//
// Complexity: O(|E| · T_closure).
func NextClosure[E any](sys System[E], x *order.Set[E]) (*order.Set[E], bool) {
	less := sys.Less()
	elems := sys.Elements().Elements() // ascending; scanned in reverse below

	current := x.Clone()
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if current.Contains(e) {
			current.Remove(e)

			continue
		}

		candidate := current.Clone()
		candidate.Add(e)
		y := sys.Closure(candidate)

		diff := y.Diff(current)
		minimal := true
		for _, d := range diff.Elements() {
			if less(d, e) {
				minimal = false

				break
			}
		}
		if minimal {
			return y, true
		}
	}

	return nil, false
}

// AllClosures enumerates every closed set of sys, starting from cl(∅), in
// strictly increasing lectic order. Terminates on NextClosure's explicit
// bottom signal (see file doc above) rather than a defensive duplicate
// check.
func AllClosures[E any](sys System[E]) []*order.Set[E] {
	bottom := sys.Closure(order.NewSet(sys.Less()))
	out := []*order.Set[E]{bottom}

	current := bottom
	for {
		next, ok := NextClosure(sys, current)
		if !ok {
			return out
		}
		out = append(out, next)
		current = next
	}
}
