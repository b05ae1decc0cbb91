package indent

import "strings"

// Tables holds per-level indentation prefixes. Entry n holds the prefix
// for nesting level n+1; use the level-keyed accessors rather than
// indexing directly. All three slices always have the same length.
//
// The zero value means "no indentation override installed".
type Tables struct {
	// Text prefixes body-text lines. Every entry is the same width: body
	// text aligns to one left margin regardless of the enclosing level.
	Text []string
	// InlineTask prefixes inline-task lines; identical to Text.
	InlineTask []string
	// Headline prefixes headline lines, before the marker run or number.
	// Shallower levels get more leading space so the growing prefix width
	// is compensated and all titles start at the same column; the deepest
	// numbered level gets none beyond its own prefix width.
	Headline []string
}

// BuildTables computes indentation tables for a document whose deepest
// headline level is deepest.
//
// A document without headlines (deepest <= 0) yields zero Tables. The
// caller installs the result wholesale, replacing any previous tables.
func BuildTables(deepest int, num Numbering) Tables {
	if deepest <= 0 {
		return Tables{}
	}

	reference := deepest
	if num.Enabled && num.MaxLevel > 0 && num.MaxLevel < deepest {
		reference = num.MaxLevel
	}
	lineIndent := PrefixWidth(reference, num)

	t := Tables{
		Text:       make([]string, deepest),
		InlineTask: make([]string, deepest),
		Headline:   make([]string, deepest),
	}
	linePrefix := strings.Repeat(" ", lineIndent)
	for n := 0; n < deepest; n++ {
		t.Text[n] = linePrefix
		t.InlineTask[n] = linePrefix
		pad := lineIndent - PrefixWidth(n+1, num)
		if pad < 0 {
			pad = 0
		}
		t.Headline[n] = strings.Repeat(" ", pad)
	}
	return t
}

// LevelCount returns the number of level entries.
func (t Tables) LevelCount() int { return len(t.Text) }

// IsZero reports whether no tables are installed.
func (t Tables) IsZero() bool { return len(t.Text) == 0 }

// TextPrefix returns the body-text prefix for a 1-based level, clamped to
// the table bounds. Empty tables yield "".
func (t Tables) TextPrefix(level int) string { return levelEntry(t.Text, level) }

// InlineTaskPrefix returns the inline-task prefix for a 1-based level,
// clamped.
func (t Tables) InlineTaskPrefix(level int) string { return levelEntry(t.InlineTask, level) }

// HeadlinePrefix returns the headline prefix for a 1-based level, clamped.
func (t Tables) HeadlinePrefix(level int) string { return levelEntry(t.Headline, level) }

func levelEntry(entries []string, level int) string {
	if len(entries) == 0 {
		return ""
	}
	n := level - 1
	if n < 0 {
		n = 0
	}
	if n >= len(entries) {
		n = len(entries) - 1
	}
	return entries[n]
}
