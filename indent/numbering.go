package indent

import (
	"strconv"
	"strings"
)

// Format renders one hierarchical counter path, e.g. [1 2 3] -> "1.2.3".
type Format func(counters []int) string

// Numbering describes the host's headline-numbering configuration.
//
// The zero value means numbering is off and has no effect on indentation
// or marker hiding.
type Numbering struct {
	Enabled bool
	// MaxLevel bounds the numbered depth. Zero means unbounded.
	MaxLevel int
	// Format renders counter paths. Required when Enabled; a nil Format is
	// treated as numbering having no width.
	Format Format
}

// Numbers reports whether numbering applies at level.
func (n Numbering) Numbers(level int) bool {
	if !n.Enabled || n.Format == nil || level < 0 {
		return false
	}
	return n.MaxLevel == 0 || level <= n.MaxLevel
}

// DotFormat joins counters with dots: [1 1 1] -> "1.1.1".
func DotFormat(counters []int) string {
	parts := make([]string, len(counters))
	for i, c := range counters {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}
