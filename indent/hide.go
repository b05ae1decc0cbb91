package indent

import (
	"strings"
	"unicode/utf8"
)

// Region is a half-open byte span [Start, End) of document text that the
// renderer should draw at zero width. Content is never modified.
type Region struct {
	Start int
	End   int
}

// HideRegions finds the marker runs that numbering replaces visually.
//
// A run matches when a line starts with 1..MaxLevel marker runes followed
// by exactly one separator rune; the region spans the run plus the
// separator. MaxLevel 0 means unbounded. Regions come back in document
// order and never overlap. Numbering off means nothing is hidden.
//
// Every refresh replaces the previous region set wholesale; callers must
// not merge the result with earlier regions.
func HideRegions(text string, marker, separator rune, num Numbering) []Region {
	if !num.Enabled {
		return nil
	}
	if marker == 0 {
		marker = '*'
	}
	if separator == 0 {
		separator = ' '
	}

	var regions []Region
	offset := 0
	for _, raw := range strings.SplitAfter(text, "\n") {
		line := strings.TrimSuffix(raw, "\n")
		if end, ok := matchMarkerRun(line, marker, separator, num.MaxLevel); ok {
			regions = append(regions, Region{Start: offset, End: offset + end})
		}
		offset += len(raw)
	}
	return regions
}

// matchMarkerRun reports the byte length of a maximal marker run plus one
// separator at the start of line. A run longer than maxLevel does not
// match at all: its markers stay visible because numbering skips it.
func matchMarkerRun(line string, marker, separator rune, maxLevel int) (end int, ok bool) {
	count := 0
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r != marker {
			break
		}
		count++
		i += size
	}
	if count == 0 || (maxLevel > 0 && count > maxLevel) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(line[i:])
	if r != separator {
		return 0, false
	}
	return i + size, true
}
