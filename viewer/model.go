package viewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/outdent/indent"
)

// Model is a Bubble Tea component rendering one outline document with the
// indent mode applied. The document is read-only; keys toggle the mode and
// numbering, everything else scrolls the viewport.
type Model struct {
	cfg  Config
	km   KeyMap
	sess *session

	viewport viewport.Model
}

func New(cfg Config) Model {
	km := cfg.KeyMap
	if km.isZero() {
		km = DefaultKeyMap()
	}

	m := Model{
		cfg:      cfg,
		km:       km,
		sess:     newSession(cfg),
		viewport: viewport.New(0, 0),
	}
	// Scanned documents always pass the outline precondition, so the mode
	// starts enabled.
	_ = m.sess.mode.Enable()
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	return m
}

// IndentEnabled reports whether the indent mode is active.
func (m Model) IndentEnabled() bool { return m.sess.mode.Enabled() }

// NumberingEnabled reports whether headline numbering is active.
func (m Model) NumberingEnabled() bool { return m.sess.numbering.Enabled }

// Tables returns the currently installed indentation tables.
func (m Model) Tables() indent.Tables { return m.sess.tables }

// HiddenRegions returns the currently installed hide-region set.
func (m Model) HiddenRegions() []indent.Region { return m.sess.regions }

// ToggleIndent flips the indent mode on or off.
func (m Model) ToggleIndent() Model {
	m.sess.toggleIndent()
	m.rebuildContent()
	return m
}

// ToggleNumbering flips numbering and fires the mode's refresh trigger.
func (m Model) ToggleNumbering() Model {
	m.sess.toggleNumbering()
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.km.ToggleIndent):
			return m.ToggleIndent(), nil
		case key.Matches(msg, m.km.ToggleNumbering):
			return m.ToggleNumbering(), nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.sess.dirty {
		// A refresh fired outside Update (host-driven trigger); coalesce
		// into one rebuild.
		m.rebuildContent()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) rebuildContent() {
	lines := m.sess.renderLines(m.cfg.Style, m.cfg.ShowLineNums)
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.sess.dirty = false
}
