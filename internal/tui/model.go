package tui

import (
	"strings"

	"taskpick/pkg/manager"
)

// row is one rendered line of the picker: either a source header or a
// selectable task.
type row struct {
	header bool
	source int // index into sources
	item   manager.Item
}

// Model holds the picker state.
type Model struct {
	sources []manager.Source
	rows    []row

	cursor int // index into rows, always on a selectable row
	scroll int

	width  int
	height int
	ready  bool

	filterText string
	filtering  bool

	// Selection result, set when the user confirms a task.
	chosenSource *manager.Source
	chosenItem   manager.Item

	styles *Styles
	keys   KeyMap
}

// NewModel creates a picker model over the given sources.
func NewModel(sources []manager.Source) *Model {
	m := &Model{
		sources: sources,
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
	}
	m.rebuildRows()
	return m
}

// rebuildRows recomputes the flattened row list, applying the current
// filter, and keeps the cursor on a selectable row.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	filter := strings.ToLower(m.filterText)

	for si, src := range m.sources {
		var items []manager.Item
		for _, it := range src.Items {
			if filter == "" || strings.Contains(strings.ToLower(it.Label()), filter) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		m.rows = append(m.rows, row{header: true, source: si})
		for _, it := range items {
			m.rows = append(m.rows, row{source: si, item: it})
		}
	}

	m.clampCursor()
}

// clampCursor moves the cursor onto the nearest selectable row.
func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	// Headers are not selectable; walk down, then up.
	for m.cursor < len(m.rows) && m.rows[m.cursor].header {
		m.cursor++
	}
	if m.cursor >= len(m.rows) {
		for m.cursor = len(m.rows) - 1; m.cursor >= 0 && m.rows[m.cursor].header; m.cursor-- {
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
}

// MoveCursor moves the selection by delta, skipping header rows.
func (m *Model) MoveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}

	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}

	pos := m.cursor
	for delta > 0 {
		next := pos + step
		for next >= 0 && next < len(m.rows) && m.rows[next].header {
			next += step
		}
		if next < 0 || next >= len(m.rows) {
			break
		}
		pos = next
		delta--
	}
	m.cursor = pos
	m.adjustScroll()
}

// GoToTop moves the cursor to the first selectable row.
func (m *Model) GoToTop() {
	m.cursor = 0
	m.clampCursor()
	m.scroll = 0
}

// GoToBottom moves the cursor to the last selectable row.
func (m *Model) GoToBottom() {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if !m.rows[i].header {
			m.cursor = i
			break
		}
	}
	m.adjustScroll()
}

// visibleHeight returns the height available for list content.
func (m *Model) visibleHeight() int {
	// Account for header (1), filter line (1), footer (1), padding (2)
	h := m.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// adjustScroll keeps the cursor inside the visible window.
func (m *Model) adjustScroll() {
	visible := m.visibleHeight()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	} else if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

// SetSize sets the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFilter updates the filter text and rebuilds the visible rows.
func (m *Model) SetFilter(text string) {
	m.filterText = text
	m.rebuildRows()
}

// Select records the currently highlighted task as the selection.
func (m *Model) Select() bool {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return false
	}
	r := m.rows[m.cursor]
	if r.header || r.item == nil {
		return false
	}
	m.chosenSource = &m.sources[r.source]
	m.chosenItem = r.item
	return true
}

// Selection returns the confirmed source and item, or nils when the
// picker was dismissed.
func (m *Model) Selection() (*manager.Source, manager.Item) {
	return m.chosenSource, m.chosenItem
}
