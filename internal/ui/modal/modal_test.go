package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModal_StartsOnCancel(t *testing.T) {
	m := New(Config{Title: "Confirm Delete"})

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	require.IsType(t, CancelMsg{}, cmd())
}

func TestModal_TabThenEnterConfirms(t *testing.T) {
	m := New(Config{Title: "Confirm Delete"})

	m, _ = m.Update(keyMsg("tab"))
	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	require.IsType(t, ConfirmMsg{}, cmd())
}

func TestModal_ArrowKeysToggleFocus(t *testing.T) {
	m := New(Config{Title: "t"})

	m, _ = m.Update(keyMsg("l"))
	m, _ = m.Update(keyMsg("h"))

	// Back on Cancel after two toggles.
	_, cmd := m.Update(keyMsg("enter"))
	require.IsType(t, CancelMsg{}, cmd())
}

func TestModal_EscCancels(t *testing.T) {
	m := New(Config{Title: "t"})

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	require.IsType(t, CancelMsg{}, cmd())
}

func TestModal_ViewContainsTitleAndMessage(t *testing.T) {
	m := New(Config{Title: "Remove car", Message: "This cannot be undone."})

	view := m.View()
	require.Contains(t, view, "Remove car")
	require.Contains(t, view, "This cannot be undone.")
	require.Contains(t, view, "Confirm")
	require.Contains(t, view, "Cancel")
}
