// Package picker provides a generic option picker overlay. The parent mode
// owns confirm/cancel handling and reads Selected() on enter.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"showroom/internal/ui/overlay"
	"showroom/internal/ui/styles"
)

// Option is a pickable entry. Value carries the record identifier the
// option stands for.
type Option struct {
	Label string
	Value int64
}

// Model holds the picker state.
type Model struct {
	title          string
	options        []Option
	selected       int
	viewportWidth  int
	viewportHeight int
}

// New creates a picker with the given title and options.
func New(title string, options []Option) Model {
	return Model{
		title:   title,
		options: options,
	}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// SetSelected sets the initially selected index.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.options) {
		m.selected = index
	}
	return m
}

// Selected returns the currently selected option.
func (m Model) Selected() Option {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected]
	}
	return Option{}
}

// Empty reports whether the picker has no options.
func (m Model) Empty() bool {
	return len(m.options) == 0
}

// Update handles cursor movement. Enter and Esc are the parent's business.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down", "ctrl+n":
			if m.selected < len(m.options)-1 {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > 0 {
				m.selected--
			}
		}
	}
	return m, nil
}

// View renders the picker box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)

	optionStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.options) == 0 {
		b.WriteString(hintStyle.Render("nothing to pick"))
	}
	for i, opt := range m.options {
		if i == m.selected {
			b.WriteString(styles.SelectionIndicatorStyle.Render("> "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(optionStyle.Render(opt.Label))
		if i < len(m.options)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("j/k move · enter select · esc cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(b.String())
}

// Overlay renders the picker centered over the background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:  m.viewportWidth,
		Height: m.viewportHeight,
	}, m.View(), bg)
}
