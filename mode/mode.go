package mode

import (
	"errors"

	"github.com/iw2rmb/outdent/indent"
	"github.com/iw2rmb/outdent/outline"
)

// ErrUnsupportedDocument is returned by Enable when the session's document
// is not an outline.
var ErrUnsupportedDocument = errors.New("mode: document does not support outline indentation")

// Document is the read side of the host's document model.
type Document interface {
	// Outline reports whether the document supports outline indentation.
	Outline() bool
	// Text returns the full document text.
	Text() string
	// DeepestLevel returns the deepest headline level, 0 when there are
	// no headlines.
	DeepestLevel() int
}

// Config connects the mode to one host editing session.
//
// Doc is required. Callback fields may be nil when the host has no use for
// that output; nil callbacks are skipped.
type Config struct {
	Doc Document

	// Rules identify marker runs for hiding. Zero values mean '*' and ' '.
	Rules outline.Rules

	// Numbering returns the host's current numbering configuration.
	// Nil means numbering is always off.
	Numbering func() indent.Numbering

	// InstallTables replaces the host's indentation tables wholesale.
	// Disable installs zero Tables to restore host-default indentation.
	InstallTables func(indent.Tables)

	// SetHiddenRegions replaces the full hide-region set. Disable and
	// every refresh pass a complete new set, never a diff.
	SetHiddenRegions func([]indent.Region)

	// RequestRedraw asks the host to re-render visible lines.
	RequestRedraw func()

	// SubscribeRefresh registers fn with the host's refresh trigger
	// (numbering toggled, document edited) and returns a cancel func.
	// The mode unsubscribes on Disable.
	SubscribeRefresh func(fn func()) (cancel func())
}

// Mode is the outline-indentation minor mode for one editing session.
// It starts disabled.
type Mode struct {
	cfg     Config
	enabled bool
	cancel  func()
}

func New(cfg Config) *Mode {
	cfg.Rules = cfg.Rules.WithDefaults()
	return &Mode{cfg: cfg}
}

func (m *Mode) Enabled() bool { return m.enabled }

// Enable activates the mode: it checks the document precondition,
// subscribes to refresh triggers, and forces one full rebuild.
// Enabling an enabled mode is a no-op.
func (m *Mode) Enable() error {
	if m.enabled {
		return nil
	}
	if m.cfg.Doc == nil || !m.cfg.Doc.Outline() {
		return ErrUnsupportedDocument
	}
	if m.cfg.SubscribeRefresh != nil {
		m.cancel = m.cfg.SubscribeRefresh(m.Refresh)
	}
	m.enabled = true
	m.Refresh()
	return nil
}

// Disable deactivates the mode: it unsubscribes the refresh trigger,
// clears all hide regions, and installs zero tables so the host falls back
// to its default indentation. Disabling a disabled mode is a no-op.
func (m *Mode) Disable() {
	if !m.enabled {
		return
	}
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.enabled = false
	if m.cfg.SetHiddenRegions != nil {
		m.cfg.SetHiddenRegions(nil)
	}
	if m.cfg.InstallTables != nil {
		m.cfg.InstallTables(indent.Tables{})
	}
	m.redraw()
}

// Refresh recomputes hide regions and indentation tables from the current
// document and numbering state, installs both wholesale, and requests a
// redraw. Refresh on a disabled mode is a no-op.
func (m *Mode) Refresh() {
	if !m.enabled {
		return
	}

	num := indent.Numbering{}
	if m.cfg.Numbering != nil {
		num = m.cfg.Numbering()
	}

	if m.cfg.SetHiddenRegions != nil {
		regions := indent.HideRegions(m.cfg.Doc.Text(), m.cfg.Rules.Marker, m.cfg.Rules.Separator, num)
		m.cfg.SetHiddenRegions(regions)
	}
	if m.cfg.InstallTables != nil {
		m.cfg.InstallTables(indent.BuildTables(m.cfg.Doc.DeepestLevel(), num))
	}
	m.redraw()
}

func (m *Mode) redraw() {
	if m.cfg.RequestRedraw != nil {
		m.cfg.RequestRedraw()
	}
}
