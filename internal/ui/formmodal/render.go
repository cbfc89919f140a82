package formmodal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showroom/internal/ui/modal"
	"showroom/internal/ui/overlay"
	"showroom/internal/ui/styles"
)

// View renders the modal content without the overlay placement.
func (m Model) View() string {
	width := m.config.MinWidth
	if width == 0 {
		width = 50
	}
	contentWidth := width - 4

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)
	titleBorder := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", width))

	pad := lipgloss.NewStyle().PaddingLeft(1)

	var content strings.Builder
	content.WriteString(pad.Render(titleStyle.Render(m.config.Title)))
	content.WriteString("\n")
	content.WriteString(titleBorder)
	content.WriteString("\n\n")

	for i := range m.fields {
		content.WriteString(pad.Render(m.renderField(i, contentWidth)))
		content.WriteString("\n\n")
	}

	if m.validationError != "" {
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		content.WriteString(pad.Render(" " + errStyle.Render(m.validationError)))
		content.WriteString("\n\n")
	}

	content.WriteString(pad.Render(" " + m.renderButtons()))
	content.WriteString("\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(content.String())
}

func (m Model) renderField(index, width int) string {
	fs := &m.fields[index]
	focused := m.focusedIndex == index

	switch fs.config.Type {
	case FieldTypeText:
		return formSection(fs.config.Label, fs.config.Hint, []string{fs.textInput.View()}, width, focused)

	case FieldTypeSelect:
		rows := make([]string, 0, len(fs.listItems))
		for i, item := range fs.listItems {
			prefix := " "
			if focused && i == fs.listCursor {
				prefix = styles.SelectionIndicatorStyle.Render(">")
			}
			radio := "( )"
			if item.selected {
				radio = "(●)"
			}
			rows = append(rows, prefix+radio+" "+item.label)
		}
		if len(rows) == 0 {
			rows = []string{" (no options)"}
		}
		return formSection(fs.config.Label, fs.config.Hint, rows, width, focused)
	}
	return ""
}

// formSection draws a labeled, bordered input section. The border picks
// up the focus color when the field has focus.
func formSection(label, hint string, content []string, width int, focused bool) string {
	labelColor := styles.FormLabelColor
	borderColor := styles.FormInputBorderColor
	if focused {
		labelColor = styles.FormLabelFocusedColor
		borderColor = styles.FormInputFocusedBorderColor
	}

	header := lipgloss.NewStyle().Foreground(labelColor).Render(label)
	if hint != "" {
		header += " " + lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(hint)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width).
		Render(strings.Join(content, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, box)
}

func (m Model) renderButtons() string {
	onButtons := m.focusedIndex == -1

	submitLabel := m.config.SubmitLabel
	if submitLabel == "" {
		submitLabel = "Save"
	}
	var submitStyle lipgloss.Style
	switch {
	case m.config.SubmitVariant == modal.ButtonDanger && onButtons && m.focusedButton == 0:
		submitStyle = styles.DangerButtonFocusedStyle
	case m.config.SubmitVariant == modal.ButtonDanger:
		submitStyle = styles.DangerButtonStyle
	case onButtons && m.focusedButton == 0:
		submitStyle = styles.PrimaryButtonFocusedStyle
	default:
		submitStyle = styles.PrimaryButtonStyle
	}

	cancelLabel := m.config.CancelLabel
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	cancelStyle := styles.SecondaryButtonStyle
	if onButtons && m.focusedButton == 1 {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	return submitStyle.Render(submitLabel) + "  " + cancelStyle.Render(cancelLabel)
}

// Overlay renders the form centered over the background view.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:  m.width,
		Height: m.height,
	}, m.View(), bg)
}
