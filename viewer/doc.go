// Package viewer provides a read-only Bubble Tea component that renders an
// outline document with the outdent minor mode applied: per-level
// indentation prefixes, hidden marker runs, and hierarchical numbering
// labels.
//
// The viewer is also the reference host integration: it owns one mode
// session per document and implements the host callbacks the mode package
// expects (table install, region install, redraw, refresh trigger).
package viewer
