// Package modal provides a confirmation dialog rendered as an overlay.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"showroom/internal/ui/overlay"
	"showroom/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota // blue (default)
	ButtonDanger                       // red, for destructive actions
)

// Config controls modal appearance.
type Config struct {
	Title          string        // e.g. "Confirm Delete"
	Message        string        // prompt text under the title
	ConfirmLabel   string        // default "Confirm"
	CancelLabel    string        // default "Cancel"
	ConfirmVariant ButtonVariant // default ButtonPrimary
	MinWidth       int           // default 40
}

// ConfirmMsg is sent when the user confirms.
type ConfirmMsg struct{}

// CancelMsg is sent when the user cancels (Esc or the Cancel button).
type CancelMsg struct{}

// Model is the confirmation dialog state.
type Model struct {
	config    Config
	onConfirm bool // which button is focused
	width     int
	height    int
}

// New creates a confirmation dialog. Focus starts on Cancel so a stray
// Enter cannot confirm a destructive action.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	if cfg.MinWidth == 0 {
		cfg.MinWidth = 40
	}
	return Model{config: cfg}
}

// SetSize records the viewport dimensions for overlay placement.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// Update handles messages for the dialog.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		m.onConfirm = !m.onConfirm
		return m, nil

	case "enter":
		if m.onConfirm {
			return m, func() tea.Msg { return ConfirmMsg{} }
		}
		return m, func() tea.Msg { return CancelMsg{} }

	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, nil
}

// View renders the dialog box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.config.Title))
	if m.config.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(messageStyle.Render(m.config.Message))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Width(max(m.config.MinWidth, lipgloss.Width(m.config.Title)+6))

	return boxStyle.Render(b.String())
}

// Overlay renders the dialog centered over the background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.View(), bg)
}

func (m Model) renderButtons() string {
	var confirm, cancel string

	switch {
	case m.onConfirm && m.config.ConfirmVariant == ButtonDanger:
		confirm = styles.DangerButtonFocusedStyle.Render(m.config.ConfirmLabel)
	case m.onConfirm:
		confirm = styles.PrimaryButtonFocusedStyle.Render(m.config.ConfirmLabel)
	case m.config.ConfirmVariant == ButtonDanger:
		confirm = styles.DangerButtonStyle.Render(m.config.ConfirmLabel)
	default:
		confirm = styles.PrimaryButtonStyle.Render(m.config.ConfirmLabel)
	}

	if m.onConfirm {
		cancel = styles.SecondaryButtonStyle.Render(m.config.CancelLabel)
	} else {
		cancel = styles.SecondaryButtonFocusedStyle.Render(m.config.CancelLabel)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)
}
