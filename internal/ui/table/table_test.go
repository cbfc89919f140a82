package table

import (
	"fmt"
	"strings"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

type row struct {
	make  string
	model string
}

func testConfig() Config[row] {
	return Config[row]{
		Columns: []Column[row]{
			{Title: "MAKE", Width: 10, Render: func(r row, _ bool) string { return r.make }},
			{Title: "MODEL", Render: func(r row, _ bool) string { return r.model }},
		},
		EmptyMessage: "no cars in stock",
	}
}

func testRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{make: fmt.Sprintf("Make%d", i), model: fmt.Sprintf("Model%d", i)})
	}
	return rows
}

func TestTable_EmptyMessage(t *testing.T) {
	m := New(testConfig()).SetSize(40, 10)
	require.Contains(t, m.View(), "no cars in stock")

	_, ok := m.Selected()
	require.False(t, ok)
}

func TestTable_CursorMovementClamped(t *testing.T) {
	m := New(testConfig()).SetSize(40, 10).SetRows(testRows(3))

	m = m.CursorUp() // already at the top
	require.Equal(t, 0, m.SelectedIndex())

	m = m.CursorDown()
	m = m.CursorDown()
	m = m.CursorDown() // clamped at the end
	require.Equal(t, 2, m.SelectedIndex())

	sel, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "Make2", sel.make)
}

func TestTable_SetRowsClampsCursor(t *testing.T) {
	m := New(testConfig()).SetSize(40, 10).SetRows(testRows(5))
	m = m.SetCursor(4)

	m = m.SetRows(testRows(2))
	require.Equal(t, 1, m.SelectedIndex())

	m = m.SetRows(nil)
	_, ok := m.Selected()
	require.False(t, ok)
}

func TestTable_ScrollFollowsCursor(t *testing.T) {
	// Height 4 leaves 3 visible rows under the header.
	m := New(testConfig()).SetSize(40, 4).SetRows(testRows(10))

	for i := 0; i < 6; i++ {
		m = m.CursorDown()
	}
	view := m.View()
	require.Contains(t, view, "Make6")
	require.NotContains(t, view, "Make0")

	for i := 0; i < 6; i++ {
		m = m.CursorUp()
	}
	view = m.View()
	require.Contains(t, view, "Make0")
	require.NotContains(t, view, "Make6")
}

func TestTable_ViewShowsHeaderAndIndicator(t *testing.T) {
	m := New(testConfig()).SetSize(40, 10).SetRows(testRows(2)).SetCursor(1)
	view := m.View()

	require.Contains(t, view, "MAKE")
	require.Contains(t, view, "MODEL")
	require.Contains(t, view, "> ")

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3) // header + 2 rows
}

func TestTable_LongCellsTruncated(t *testing.T) {
	m := New(testConfig()).SetSize(24, 10).SetRows([]row{
		{make: "Lamborghini", model: "Aventador SVJ Roadster"},
	})
	view := m.View()
	require.Contains(t, view, "…")
	require.NotContains(t, view, "Lamborghini")
}

func TestTable_ZoneMarksRows(t *testing.T) {
	zone.NewGlobal()
	defer zone.Close()

	cfg := testConfig()
	cfg.ZoneID = func(index int, _ row) string { return fmt.Sprintf("row-%d", index) }

	m := New(cfg).SetSize(40, 10).SetRows(testRows(2))
	raw := m.View()
	scanned := zone.Scan(raw)

	// Scan strips the zone markers but keeps the content.
	require.NotEqual(t, raw, scanned)
	require.Contains(t, scanned, "Make0")
	require.Contains(t, scanned, "Make1")
}
