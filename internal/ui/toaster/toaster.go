// Package toaster provides transient notification toasts. The app owns a
// single toaster; modes ask for toasts by returning ShowMsg commands.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"showroom/internal/ui/overlay"
	"showroom/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows a green-bordered toast.
	StyleSuccess Style = iota
	// StyleError shows a red-bordered toast.
	StyleError
	// StyleInfo shows a highlight-bordered toast.
	StyleInfo
)

// DefaultDuration is how long a toast stays up before auto-dismissing.
const DefaultDuration = 3 * time.Second

// ShowMsg asks the app to display a toast. Modes return it as a command so
// they never need to own toast state.
type ShowMsg struct {
	Message string
	Style   Style
}

// DismissMsg signals that the visible toast should be hidden.
type DismissMsg struct{}

// Show returns a command producing a ShowMsg.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Message: message, Style: style}
	}
}

// ScheduleDismiss returns a command that dismisses the toast after d.
func ScheduleDismiss(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{}
	})
}

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	width   int
	height  int
}

// New creates an empty toaster.
func New() Model {
	return Model{}
}

// Show displays a toast with the given message and style.
func (m Model) Show(message string, style Style) Model {
	m.message = message
	m.style = style
	m.visible = true
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// SetSize updates the viewport dimensions for overlay positioning.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var prefix string
	switch m.style {
	case StyleError:
		box = box.BorderForeground(styles.ToastBorderErrorColor)
		prefix = "✗ "
	case StyleInfo:
		box = box.BorderForeground(styles.ToastBorderInfoColor)
		prefix = "• "
	default:
		box = box.BorderForeground(styles.ToastBorderSuccessColor)
		prefix = "✓ "
	}

	return box.Render(prefix + m.message)
}

// Overlay renders the toast bottom-center over the background view.
func (m Model) Overlay(bg string) string {
	if !m.visible || m.message == "" {
		return bg
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}
