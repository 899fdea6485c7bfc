// errors.go — sentinel errors for the serialize package: malformed input
// surfaces to the caller with partial state discarded; an I/O failure
// wraps the underlying error. An undeclared token in a relation line is
// silently skipped, not treated as an error.
package serialize

import "errors"

var (
	// ErrMalformedInput is returned (wrapped with line context) when a
	// text-format file cannot be parsed: a missing header, a row with no
	// ':' separator, or a rule with no '->' separator.
	ErrMalformedInput = errors.New("serialize: malformed input")

	// ErrUnknownExtension is returned by Registry.Get/Unregister for an
	// extension with no registered reader or writer.
	ErrUnknownExtension = errors.New("serialize: unknown extension")

	// ErrIOFailure wraps an underlying read/write error: surfaced to the
	// caller, never silently swallowed.
	ErrIOFailure = errors.New("serialize: I/O failure")
)
