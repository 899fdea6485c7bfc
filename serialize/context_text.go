// File: context_text.go
// Role: the context text format:
//
//	Observations: o1 o2 o3 …
//	Attributes:   a1 a2 a3 …
//	o1 : a1 a3
//	o2 : a1 a2
//	…
//
// Tokens not previously declared in a relation row are silently ignored
// — deliberate, not an oversight.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-fca/lattice/fcontext"
)

func stringLess(a, b string) bool { return a < b }
func stringID(a string) string    { return a }

// ReadContext parses a Context from the text format above. Returns
// ErrMalformedInput (wrapped with the offending line) if the first two
// lines are not the declared Observations:/Attributes: headers.
func ReadContext(r io.Reader) (*fcontext.Context[string, string], error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	obsLine := scanner.Text()
	obsTokens, ok := splitHeader(obsLine, "Observations:")
	if !ok {
		return nil, fmt.Errorf("%w: expected \"Observations:\" header, got %q", ErrMalformedInput, obsLine)
	}

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: missing Attributes: header", ErrMalformedInput)
	}
	attrLine := scanner.Text()
	attrTokens, ok := splitHeader(attrLine, "Attributes:")
	if !ok {
		return nil, fmt.Errorf("%w: expected \"Attributes:\" header, got %q", ErrMalformedInput, attrLine)
	}

	ctx := fcontext.New[string, string](stringLess, stringLess, stringID, stringID)
	for _, o := range obsTokens {
		ctx.AddObservation(o)
	}
	for _, a := range attrTokens {
		ctx.AddAttribute(a)
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sep := strings.Index(line, ":")
		if sep < 0 {
			return nil, fmt.Errorf("%w: relation line missing ':': %q", ErrMalformedInput, line)
		}

		o := strings.TrimSpace(line[:sep])
		for _, a := range strings.Fields(line[sep+1:]) {
			// Tokens not declared in the headers are silently ignored;
			// AddRelation itself already returns false for an undeclared
			// side, which is exactly that silent-skip behavior.
			ctx.AddRelation(o, a)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	return ctx, nil
}

// WriteContext serializes ctx in the text format above, with
// observations and attributes in their declared ascending order.
func WriteContext(w io.Writer, ctx *fcontext.Context[string, string]) error {
	obs := ctx.Observations().Elements()
	attrs := ctx.Attributes().Elements()

	if _, err := fmt.Fprintf(w, "Observations: %s\n", strings.Join(obs, " ")); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}
	if _, err := fmt.Fprintf(w, "Attributes: %s\n", strings.Join(attrs, " ")); err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	for _, o := range obs {
		intent := ctx.Intent(o).Elements()
		sort.Strings(intent)
		if _, err := fmt.Fprintf(w, "%s : %s\n", o, strings.Join(intent, " ")); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	return nil
}

func splitHeader(line, prefix string) ([]string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return nil, false
	}

	return strings.Fields(strings.TrimPrefix(line, prefix)), true
}
