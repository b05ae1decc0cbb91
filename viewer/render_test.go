package viewer

import (
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/outdent/indent"
	"github.com/iw2rmb/outdent/outline"
)

func plainLines(m Model) []string {
	return m.sess.renderLines(Style{}, false)
}

func TestRender_OuterIndentWithoutNumbering(t *testing.T) {
	m := New(Config{Text: "* a\nbody\n** b\n*** c\n"})

	got := plainLines(m)
	want := []string{
		"  * a",
		"    body",
		" ** b",
		"*** c",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_NumberingReplacesMarkerRuns(t *testing.T) {
	num := indent.Numbering{
		Enabled:  true,
		MaxLevel: 2,
		Format:   func(c []int) string { return indent.DotFormat(c) + " " },
	}
	m := New(Config{Text: "* a\n** b\n*** c\n", Numbering: num})

	got := plainLines(m)
	// lineIndent is the width of "1.1 "; titles align at column 4. The
	// level-3 run exceeds MaxLevel, so its markers stay visible.
	want := []string{
		"  1 a",
		"1.1 b",
		"*** c",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_SiblingCounters(t *testing.T) {
	num := indent.Numbering{Enabled: true, Format: func(c []int) string { return indent.DotFormat(c) + " " }}
	m := New(Config{Text: "* a\n** b\n** c\n* d\n", Numbering: num})

	got := plainLines(m)
	want := []string{
		"  1 a",
		"1.1 b",
		"1.2 c",
		"  2 d",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_InlineTasksUseBodyIndent(t *testing.T) {
	m := New(Config{
		Text:  "* a\n*** todo\n",
		Rules: outline.Rules{InlineTaskMinLevel: 3},
	})

	got := plainLines(m)
	// Only the level-1 headline counts for depth, so body indent is 2 and
	// the headline itself needs no pad.
	want := []string{
		"* a",
		"  *** todo",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ToggleIndentOffRestoresRawLayout(t *testing.T) {
	m := New(Config{Text: "* a\nbody\n** b\n"})
	m = m.ToggleIndent()

	if m.IndentEnabled() {
		t.Fatalf("mode should be off after toggle")
	}
	if !m.Tables().IsZero() {
		t.Fatalf("zero tables expected after disable, got %d levels", m.Tables().LevelCount())
	}
	got := plainLines(m)
	want := []string{"* a", "body", "** b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ToggleCycleRestoresTables(t *testing.T) {
	cfg := Config{
		Text:      "* a\n** b\n*** c\n",
		Numbering: indent.Numbering{Enabled: true, MaxLevel: 2, Format: indent.DotFormat},
	}
	m := New(cfg)
	fresh := m.Tables()
	freshRegions := m.HiddenRegions()

	m = m.ToggleIndent()
	m = m.ToggleIndent()

	if !reflect.DeepEqual(m.Tables(), fresh) {
		t.Fatalf("tables after toggle cycle differ:\n got: %+v\nwant: %+v", m.Tables(), fresh)
	}
	if !reflect.DeepEqual(m.HiddenRegions(), freshRegions) {
		t.Fatalf("regions after toggle cycle differ:\n got: %v\nwant: %v", m.HiddenRegions(), freshRegions)
	}
}

func TestRender_ToggleNumberingRefreshesWholesale(t *testing.T) {
	m := New(Config{
		Text:      "* a\n** b\n",
		Numbering: indent.Numbering{Format: indent.DotFormat},
	})

	if got := len(m.HiddenRegions()); got != 0 {
		t.Fatalf("regions before numbering: got %d, want 0", got)
	}

	m = m.ToggleNumbering()
	if got := len(m.HiddenRegions()); got != 2 {
		t.Fatalf("regions with numbering: got %d, want 2", got)
	}

	m = m.ToggleNumbering()
	if got := len(m.HiddenRegions()); got != 0 {
		t.Fatalf("regions after numbering off: got %d, want 0", got)
	}
}

func TestRender_MarkdownDocument(t *testing.T) {
	m := New(Config{Text: "# A\ntext\n## B\n", Markdown: true})

	got := plainLines(m)
	want := []string{
		" # A",
		"   text",
		"## B",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rendered lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_StyledNumberLabel(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Text:     r.NewStyle(),
		Headline: r.NewStyle().Bold(true),
		Marker:   r.NewStyle().Faint(true),
		Number:   r.NewStyle().Underline(true),
	}

	m := New(Config{
		Text:      "* a\n",
		Numbering: indent.Numbering{Enabled: true, Format: func(c []int) string { return indent.DotFormat(c) + " " }},
	})

	got := m.sess.renderLines(st, false)
	want := []string{st.Number.Render("1 ") + st.Headline.Render("a")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("styled render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_LineNumberGutter(t *testing.T) {
	m := New(Config{Text: "* a\nbody\n"})

	got := m.sess.renderLines(Style{}, true)
	want := []string{
		"1 * a",
		"2   body",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("gutter render:\n got: %q\nwant: %q", got, want)
	}
}
