// Package indent computes per-level indentation prefixes and marker-run
// hide regions for outline documents.
//
// All computations are pure: callers install the results wholesale and
// re-render. Widths are terminal cell counts, not byte counts.
package indent
