// Package outline implements the pure outline model for outdent.
//
// A document is a flat list of classified lines (headline, inline task, or
// body text) produced by scanning raw text against marker-run rules.
// Offsets are 0-based byte offsets into the original text.
package outline
