package outline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownRules are the marker-run rules matching ATX headings.
var MarkdownRules = Rules{Marker: '#', Separator: ' '}

// ScanMarkdown builds a Document from markdown source using goldmark.
//
// Unlike Scan with MarkdownRules, the goldmark pass only treats real ATX
// headings as headlines: a "# ..." line inside a fenced code block stays
// body text.
func ScanMarkdown(src []byte) *Document {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	headingLines := map[int]bool{}
	lineStarts := lineStartOffsets(src)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}
		seg := h.Lines().At(0)
		headingLines[rowForOffset(lineStarts, seg.Start)] = true
		return ast.WalkContinue, nil
	})

	body := string(src)
	d := &Document{text: body, rules: MarkdownRules}

	offset := 0
	current := 0
	for row, raw := range strings.SplitAfter(body, "\n") {
		if raw == "" && offset == len(body) && len(d.lines) > 0 {
			break
		}
		line := strings.TrimSuffix(raw, "\n")

		ln := Line{
			Kind:      KindText,
			Start:     offset,
			MarkerEnd: offset,
			Text:      line,
		}

		if headingLines[row] {
			if level, end, ok := markerRun(line, MarkdownRules); ok {
				ln.Kind = KindHeadline
				ln.Level = level
				ln.MarkerEnd = offset + end
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

func lineStartOffsets(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' && i+1 < len(src) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// rowForOffset returns the row whose line contains the byte offset.
func rowForOffset(starts []int, offset int) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
