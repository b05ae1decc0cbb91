package viewer

import (
	"github.com/iw2rmb/outdent/indent"
	"github.com/iw2rmb/outdent/outline"
)

// Config configures the viewer Model.
type Config struct {
	// Text is the document to display.
	Text string

	// Markdown parses Text as markdown (goldmark) instead of scanning it
	// with Rules; headings inside fenced code blocks stay body text.
	Markdown bool

	// Rules select the marker-run syntax. Zero values mean '*' and ' '.
	// Ignored when Markdown is set.
	Rules outline.Rules

	// Numbering is the initial numbering configuration; ToggleNumbering
	// flips its Enabled flag at runtime.
	Numbering indent.Numbering

	// Rendering options.
	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap
}
