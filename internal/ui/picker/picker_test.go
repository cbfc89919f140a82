package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func options() []Option {
	return []Option{
		{Label: "Unassigned", Value: 0},
		{Label: "Ame", Value: 3},
		{Label: "Bo", Value: 7},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_CursorMovement(t *testing.T) {
	m := New("Assign salesperson", options())
	require.Equal(t, int64(0), m.Selected().Value)

	m, _ = m.Update(key("j"))
	require.Equal(t, int64(3), m.Selected().Value)

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j")) // clamped at the end
	require.Equal(t, int64(7), m.Selected().Value)

	m, _ = m.Update(key("k"))
	require.Equal(t, int64(3), m.Selected().Value)
}

func TestPicker_SetSelected(t *testing.T) {
	m := New("t", options()).SetSelected(2)
	require.Equal(t, "Bo", m.Selected().Label)

	// Out of range is ignored.
	m = m.SetSelected(99)
	require.Equal(t, "Bo", m.Selected().Label)
}

func TestPicker_Empty(t *testing.T) {
	m := New("t", nil)
	require.True(t, m.Empty())
	require.Equal(t, Option{}, m.Selected())
	require.Contains(t, m.View(), "nothing to pick")
}

func TestPicker_ViewListsOptions(t *testing.T) {
	view := New("Assign salesperson", options()).View()
	require.Contains(t, view, "Assign salesperson")
	require.Contains(t, view, "Ame")
	require.Contains(t, view, "> ")
}
