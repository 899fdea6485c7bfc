// File: key.go
// Role: a canonical string key for a closed set, used to deduplicate
// concepts by their closed set.
package lattice

import (
	"strings"

	"github.com/go-fca/lattice/closure"
	"github.com/go-fca/lattice/order"
)

// unitSep is unlikely to appear in any element's ID; used to join IDs
// into one lookup key without ambiguity between, say, {"a,b"} and
// {"a","b"}.
const unitSep = "\x1f"

func canonicalKey[E any](sys closure.System[E], s *order.Set[E]) string {
	elems := s.Elements()
	ids := make([]string, len(elems))
	for i, e := range elems {
		ids[i] = sys.ID(e)
	}

	return strings.Join(ids, unitSep)
}
