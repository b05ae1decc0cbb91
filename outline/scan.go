package outline

import (
	"strings"
	"unicode/utf8"
)

// Rules controls how marker runs are recognized at the start of a line.
type Rules struct {
	// Marker is the headline marker character. Zero value means '*'.
	Marker rune
	// Separator must follow the marker run for the line to be a headline.
	// Zero value means ' '.
	Separator rune
	// InlineTaskMinLevel classifies headlines at or beyond this level as
	// inline tasks. Zero disables inline-task classification.
	InlineTaskMinLevel int
}

func (r Rules) WithDefaults() Rules {
	if r.Marker == 0 {
		r.Marker = '*'
	}
	if r.Separator == 0 {
		r.Separator = ' '
	}
	return r
}

type Kind int

const (
	KindText Kind = iota
	KindHeadline
	KindInlineTask
)

// Line is one classified document line.
type Line struct {
	Kind Kind
	// Level is the marker-run length for headlines and inline tasks, 0 for
	// body text.
	Level int
	// Enclosing is the level of the governing headline (0 before the first
	// headline). For headline lines it equals Level.
	Enclosing int
	// Start is the byte offset of the line start in the document text.
	Start int
	// MarkerEnd is the byte offset just past the marker run and its
	// separator. Equal to Start for body text lines.
	MarkerEnd int
	// Text is the raw line content without the trailing newline.
	Text string
}

// Document is an immutable scanned outline.
type Document struct {
	text    string
	rules   Rules
	lines   []Line
	deepest int
}

// Scan classifies every line of text against rules.
func Scan(text string, rules Rules) *Document {
	rules = rules.WithDefaults()

	d := &Document{text: text, rules: rules}

	offset := 0
	current := 0
	for _, raw := range strings.SplitAfter(text, "\n") {
		if raw == "" && offset == len(text) && len(d.lines) > 0 {
			break
		}
		line := strings.TrimSuffix(raw, "\n")

		ln := Line{
			Kind:      KindText,
			Start:     offset,
			MarkerEnd: offset,
			Text:      line,
		}

		if level, end, ok := markerRun(line, rules); ok {
			ln.Level = level
			ln.MarkerEnd = offset + end
			if rules.InlineTaskMinLevel > 0 && level >= rules.InlineTaskMinLevel {
				ln.Kind = KindInlineTask
			} else {
				ln.Kind = KindHeadline
				current = level
				if level > d.deepest {
					d.deepest = level
				}
			}
		}
		if ln.Kind == KindHeadline {
			ln.Enclosing = ln.Level
		} else {
			ln.Enclosing = current
		}

		d.lines = append(d.lines, ln)
		offset += len(raw)
	}

	return d
}

// markerRun reports the marker-run length of line and the byte offset just
// past the separator. ok is false when the line is not a headline.
func markerRun(line string, rules Rules) (level, end int, ok bool) {
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r != rules.Marker {
			break
		}
		level++
		i += size
	}
	if level == 0 {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(line[i:])
	if r != rules.Separator {
		return 0, 0, false
	}
	return level, i + size, true
}

func (d *Document) Text() string { return d.text }

func (d *Document) Rules() Rules { return d.rules }

func (d *Document) Lines() []Line { return d.lines }

func (d *Document) LineCount() int { return len(d.lines) }

// Line returns the classified line for row, or a zero Line out of range.
func (d *Document) Line(row int) Line {
	if row < 0 || row >= len(d.lines) {
		return Line{}
	}
	return d.lines[row]
}

// DeepestLevel returns the deepest headline level in the document.
// Inline tasks do not count; a document without headlines returns 0.
func (d *Document) DeepestLevel() int { return d.deepest }

// Outline reports whether the document supports outline indentation.
// Scanned documents always do; hosts wrapping other document types use
// this to gate mode activation.
func (d *Document) Outline() bool { return d != nil }
