// Package table provides a config-driven scrollable table used by the
// inventory and staff modes. Columns render their own cells so the table
// never needs to know about the row type.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"showroom/internal/ui/styles"
)

const (
	columnGap      = 2
	indicatorWidth = 2
)

// Column describes a single table column. Width is a fixed cell width;
// zero-width columns share the space the fixed columns leave over.
// Render produces the cell text and may style it; selected is true when
// the row under the cursor is being drawn.
type Column[T any] struct {
	Title  string
	Width  int
	Render func(row T, selected bool) string
}

// Config configures a table. ZoneID, when set, wraps each visible row in
// a bubblezone mark so the parent can hit-test mouse clicks.
type Config[T any] struct {
	Columns      []Column[T]
	EmptyMessage string
	ZoneID       func(index int, row T) string
}

// Model is the table state. Selection and scroll offset move together:
// the cursor is always kept inside the visible window.
type Model[T any] struct {
	config  Config[T]
	rows    []T
	cursor  int
	yOffset int
	width   int
	height  int
}

// New creates an empty table.
func New[T any](config Config[T]) Model[T] {
	return Model[T]{config: config}
}

// SetRows replaces the table contents, clamping cursor and scroll.
func (m Model[T]) SetRows(rows []T) Model[T] {
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m.scrollIntoView()
}

// SetSize updates the drawable area.
func (m Model[T]) SetSize(width, height int) Model[T] {
	m.width = width
	m.height = height
	return m.scrollIntoView()
}

// CursorUp moves the selection up one row.
func (m Model[T]) CursorUp() Model[T] {
	if m.cursor > 0 {
		m.cursor--
	}
	return m.scrollIntoView()
}

// CursorDown moves the selection down one row.
func (m Model[T]) CursorDown() Model[T] {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
	return m.scrollIntoView()
}

// SetCursor moves the selection to index. Out-of-range values are ignored.
func (m Model[T]) SetCursor(index int) Model[T] {
	if index >= 0 && index < len(m.rows) {
		m.cursor = index
	}
	return m.scrollIntoView()
}

// Selected returns the row under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor], true
	}
	var zero T
	return zero, false
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor
}

// Len returns the number of rows.
func (m Model[T]) Len() int {
	return len(m.rows)
}

// visibleRows is the row capacity below the header line.
func (m Model[T]) visibleRows() int {
	n := m.height - 1
	if n < 1 {
		n = 1
	}
	return n
}

func (m Model[T]) scrollIntoView() Model[T] {
	visible := m.visibleRows()
	if m.cursor < m.yOffset {
		m.yOffset = m.cursor
	}
	if m.cursor >= m.yOffset+visible {
		m.yOffset = m.cursor - visible + 1
	}
	if m.yOffset < 0 {
		m.yOffset = 0
	}
	return m
}

// columnWidths resolves fixed widths and splits the leftover space among
// the flexible columns.
func (m Model[T]) columnWidths() []int {
	widths := make([]int, len(m.config.Columns))
	remaining := m.width - indicatorWidth - columnGap*(len(m.config.Columns)-1)
	flexCount := 0
	for i, col := range m.config.Columns {
		if col.Width > 0 {
			widths[i] = col.Width
			remaining -= col.Width
		} else {
			flexCount++
		}
	}
	if flexCount > 0 {
		share := remaining / flexCount
		if share < 1 {
			share = 1
		}
		for i, col := range m.config.Columns {
			if col.Width == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// fitCell truncates the (possibly styled) cell to width and pads it out.
func fitCell(s string, width int) string {
	if width < 1 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(width), "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func (m Model[T]) headerView(widths []int) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextSecondaryColor)

	cells := make([]string, 0, len(m.config.Columns))
	for i, col := range m.config.Columns {
		title := runewidth.Truncate(col.Title, widths[i], "…")
		cells = append(cells, runewidth.FillRight(title, widths[i]))
	}
	gap := strings.Repeat(" ", columnGap)
	return strings.Repeat(" ", indicatorWidth) + headerStyle.Render(strings.Join(cells, gap))
}

func (m Model[T]) rowView(index int, widths []int) string {
	selected := index == m.cursor
	row := m.rows[index]

	cells := make([]string, 0, len(m.config.Columns))
	for i, col := range m.config.Columns {
		cells = append(cells, fitCell(col.Render(row, selected), widths[i]))
	}

	indicator := strings.Repeat(" ", indicatorWidth)
	if selected {
		indicator = styles.SelectionIndicatorStyle.Render("> ")
	}

	gap := strings.Repeat(" ", columnGap)
	line := indicator + strings.Join(cells, gap)
	if m.config.ZoneID != nil {
		line = zone.Mark(m.config.ZoneID(index, row), line)
	}
	return line
}

// View renders the header plus the visible row window.
func (m Model[T]) View() string {
	if len(m.rows) == 0 {
		msg := m.config.EmptyMessage
		if msg == "" {
			msg = "nothing here yet"
		}
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Padding(1, 2).
			Render(msg)
	}

	widths := m.columnWidths()

	var b strings.Builder
	b.WriteString(m.headerView(widths))

	end := m.yOffset + m.visibleRows()
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.yOffset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.rowView(i, widths))
	}
	return b.String()
}
