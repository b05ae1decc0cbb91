package indent

import "github.com/iw2rmb/outdent/internal/textwidth"

// PrefixWidth returns the cell width a rendered headline prefix occupies at
// the given nesting level.
//
// Without numbering at that level this is the raw marker run plus one
// separator: level+1 cells. With numbering it is the width of the deepest
// all-ones counter path at that level, e.g. level 3 measures "1.1.1".
//
// The all-ones path is a width proxy: Format functions whose output width
// depends on the actual counter values (not just the depth) are over- or
// under-estimated.
func PrefixWidth(level int, num Numbering) int {
	if level < 0 {
		level = 0
	}
	if !num.Numbers(level) {
		return level + 1
	}
	counters := make([]int, level)
	for i := range counters {
		counters[i] = 1
	}
	return textwidth.Width(num.Format(counters))
}
