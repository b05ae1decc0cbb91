package viewer

import (
	"sort"

	"github.com/iw2rmb/outdent/indent"
	"github.com/iw2rmb/outdent/mode"
	"github.com/iw2rmb/outdent/outline"
)

// session is the per-document host state the mode installs into. Model
// values share one session pointer across copies, the same way an editor
// model shares its underlying buffer.
type session struct {
	doc       *outline.Document
	numbering indent.Numbering

	mode *mode.Mode

	tables  indent.Tables
	regions []indent.Region
	labels  []string

	refreshFn func()
	dirty     bool
}

func newSession(cfg Config) *session {
	var doc *outline.Document
	if cfg.Markdown {
		doc = outline.ScanMarkdown([]byte(cfg.Text))
	} else {
		doc = outline.Scan(cfg.Text, cfg.Rules)
	}

	s := &session{doc: doc, numbering: cfg.Numbering}
	s.mode = mode.New(mode.Config{
		Doc:       doc,
		Rules:     doc.Rules(),
		Numbering: func() indent.Numbering { return s.numbering },
		InstallTables: func(t indent.Tables) {
			s.tables = t
		},
		SetHiddenRegions: func(r []indent.Region) {
			s.regions = r
		},
		RequestRedraw: func() {
			s.relabel()
			s.dirty = true
		},
		SubscribeRefresh: func(fn func()) func() {
			s.refreshFn = fn
			return func() { s.refreshFn = nil }
		},
	})
	return s
}

// fireRefresh simulates the host's refresh trigger; it only reaches the
// mode while the mode is enabled (the subscription is cancelled on
// disable).
func (s *session) fireRefresh() {
	if s.refreshFn != nil {
		s.refreshFn()
	}
}

func (s *session) toggleNumbering() {
	s.numbering.Enabled = !s.numbering.Enabled
	s.fireRefresh()
}

func (s *session) toggleIndent() {
	if s.mode.Enabled() {
		s.mode.Disable()
		return
	}
	// Scanned documents always pass the outline precondition.
	_ = s.mode.Enable()
}

// relabel assigns hierarchical numbering labels to headlines within the
// numbered range. Inline tasks are not numbered.
func (s *session) relabel() {
	s.labels = nil
	if !s.numbering.Enabled || s.numbering.Format == nil || !s.mode.Enabled() {
		return
	}

	labels := make([]string, s.doc.LineCount())
	var counters []int
	for row, ln := range s.doc.Lines() {
		if ln.Kind != outline.KindHeadline || !s.numbering.Numbers(ln.Level) {
			continue
		}
		if ln.Level > len(counters) {
			for len(counters) < ln.Level {
				counters = append(counters, 1)
			}
		} else {
			counters = counters[:ln.Level]
			counters[ln.Level-1]++
		}
		labels[row] = s.numbering.Format(counters)
	}
	s.labels = labels
}

func (s *session) label(row int) string {
	if row < 0 || row >= len(s.labels) {
		return ""
	}
	return s.labels[row]
}

// hiddenSpan returns the byte length of the hidden marker run at the start
// of ln, if any. Regions are line-anchored and sorted in document order.
func (s *session) hiddenSpan(ln outline.Line) (int, bool) {
	i := sort.Search(len(s.regions), func(i int) bool {
		return s.regions[i].Start >= ln.Start
	})
	if i < len(s.regions) && s.regions[i].Start == ln.Start {
		return s.regions[i].End - ln.Start, true
	}
	return 0, false
}
