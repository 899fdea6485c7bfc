// File: implication_text.go
// Role: the implicational system text format: each line
// `premise1 premise2 … -> conclusion1 conclusion2 …`; element
// vocabulary is the union of all tokens across every line.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-fca/lattice/implication"
	"github.com/go-fca/lattice/order"
)

// ReadImplications parses an ImplicationalSystem from the text format
// above. Returns ErrMalformedInput (wrapped with the offending line) if
// a non-empty line has no "->" separator.
func ReadImplications(r io.Reader) (*implication.System[string], error) {
	sys := implication.New[string](stringLess, stringID)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sides := strings.SplitN(line, "->", 2)
		if len(sides) != 2 {
			return nil, fmt.Errorf("%w: rule missing '->': %q", ErrMalformedInput, line)
		}

		premise := order.NewSetFrom(stringLess, strings.Fields(sides[0])...)
		conclusion := order.NewSetFrom(stringLess, strings.Fields(sides[1])...)
		sys.AddRule(premise, conclusion)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return sys, nil
}

// WriteImplications serializes sys's rules, one per line, in
// declaration order.
func WriteImplications(w io.Writer, sys *implication.System[string]) error {
	for _, r := range sys.Rules() {
		premise := strings.Join(r.Premise.Elements(), " ")
		conclusion := strings.Join(r.Conclusion.Elements(), " ")
		if _, err := fmt.Fprintf(w, "%s -> %s\n", premise, conclusion); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	return nil
}
