package editor

import (
	"math"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ted/composer"
	"github.com/iw2rmb/ted/metrics"
)

// caretCells is the room kept right of the wrap width: one cell for the
// caret and one for the gap an overflowed caret leaves.
const caretCells = 2

// Model is a Bubble Tea component that renders and edits a composer.
type Model struct {
	cfg  Config
	comp *composer.Composer

	focused bool
	err     error

	viewport viewport.Model

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.Width == nil {
		cfg.Width = metrics.Cells()
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg: cfg,
		comp: composer.New(cfg.Text, composer.Options{
			Capacity:     cfg.Capacity,
			HistoryLimit: cfg.HistoryLimit,
			Width:        cfg.Width,
			// Unwrapped until the first SetSize.
			MaxWidth: math.Inf(1),
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.comp.Version()
	m.rebuildContent()
	return m
}

// Composer exposes the underlying composer. Hosts that mutate it directly
// see the change rendered on the next Update.
func (m Model) Composer() *composer.Composer { return m.comp }

func (m Model) Init() tea.Cmd { return nil }

// Err reports why the last edit was rejected, e.g. buffer.ErrCapacityExceeded.
// It is cleared by the next edit that changes the text.
func (m Model) Err() error { return m.err }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.comp.SetMaxWidth(float64(m.contentWidth()))
	m.syncFromComposer()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.syncFromComposer() {
			m.followCursor()
		}
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Don't follow the cursor here; allow manual scrolling via mouse wheel.
		m.syncFromComposer()
		return m, cmd
	default:
		// Hosts may drive edits through Composer().
		if m.syncFromComposer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m Model) contentWidth() int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - caretCells
	if w < 1 {
		return 1
	}
	return w
}

// syncFromComposer rebuilds the content and fires OnChange when the composer
// version moved since the last sync.
func (m *Model) syncFromComposer() (changed bool) {
	ver := m.comp.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.comp))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	row := m.comp.Cursor().Row
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
