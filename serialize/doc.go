// Package serialize provides the external, file-facing adapters that sit
// outside the core engine: the context and implicational-system text
// formats, a DOT writer for DGraph-shaped structures, and an injected
// Registry mapping file extension to reader/writer, modeled as an
// injected value rather than a hidden package global.
//
// These adapters operate on string-keyed Context/System instances —
// the text formats are inherently string-vocabulary wire formats, so the
// generic element types elsewhere in this module specialize to string
// here at the I/O boundary.
package serialize
