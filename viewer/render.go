package viewer

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/outdent/outline"
)

func (s *session) renderLines(st Style, showLineNums bool) []string {
	lines := s.doc.Lines()
	digits := 0
	if showLineNums {
		digits = lineNumDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	for row, ln := range lines {
		var sb strings.Builder
		if showLineNums {
			sb.WriteString(st.LineNum.Render(fmt.Sprintf("%*d ", digits, row+1)))
		}
		sb.WriteString(s.renderLine(row, ln, st))
		out = append(out, sb.String())
	}
	return out
}

func (s *session) renderLine(row int, ln outline.Line, st Style) string {
	switch ln.Kind {
	case outline.KindHeadline:
		return s.renderHeadline(row, ln, st, s.tables.HeadlinePrefix(ln.Level))
	case outline.KindInlineTask:
		return s.renderHeadline(row, ln, st, s.tables.InlineTaskPrefix(ln.Level))
	default:
		return s.tables.TextPrefix(ln.Enclosing) + st.Text.Render(ln.Text)
	}
}

func (s *session) renderHeadline(row int, ln outline.Line, st Style, pad string) string {
	var sb strings.Builder
	sb.WriteString(pad)

	runLen := ln.MarkerEnd - ln.Start
	rest := ln.Text[runLen:]

	label := s.label(row)
	if span, ok := s.hiddenSpan(ln); ok && label != "" {
		// The numbering label replaces the hidden run (markers + separator).
		sb.WriteString(st.Number.Render(label))
		sb.WriteString(st.Headline.Render(ln.Text[span:]))
		return sb.String()
	}

	sb.WriteString(st.Marker.Render(ln.Text[:runLen]))
	sb.WriteString(st.Headline.Render(rest))
	return sb.String()
}

func lineNumDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}
