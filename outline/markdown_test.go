package outline

import "testing"

func TestScanMarkdown_HeadingLevels(t *testing.T) {
	src := []byte("# Title\n\nintro text\n\n## Section\n\n### Sub\n")
	d := ScanMarkdown(src)

	if got, want := d.DeepestLevel(), 3; got != want {
		t.Fatalf("deepest level: got %d, want %d", got, want)
	}
	if got := d.Line(0).Kind; got != KindHeadline {
		t.Fatalf("row 0: got kind=%d, want headline", got)
	}
	if got := d.Line(0).Level; got != 1 {
		t.Fatalf("row 0 level: got %d, want 1", got)
	}
	if got := d.Line(4).Level; got != 2 {
		t.Fatalf("row 4 level: got %d, want 2", got)
	}
	if got := d.Line(2).Kind; got != KindText {
		t.Fatalf("row 2: got kind=%d, want text", got)
	}
}

func TestScanMarkdown_IgnoresFencedCode(t *testing.T) {
	src := []byte("# Real\n\n```\n# not a heading\n```\n")
	d := ScanMarkdown(src)

	if got := d.DeepestLevel(); got != 1 {
		t.Fatalf("deepest level: got %d, want 1", got)
	}
	if got := d.Line(3).Kind; got != KindText {
		t.Fatalf("fenced line: got kind=%d, want text", got)
	}
}

func TestScanMarkdown_MarkerRunOffsets(t *testing.T) {
	src := []byte("## Two\n")
	d := ScanMarkdown(src)

	ln := d.Line(0)
	if ln.Kind != KindHeadline {
		t.Fatalf("row 0: got kind=%d, want headline", ln.Kind)
	}
	// "## " — two markers plus one separator.
	if got, want := ln.MarkerEnd-ln.Start, 3; got != want {
		t.Fatalf("marker run width: got %d, want %d", got, want)
	}
}
