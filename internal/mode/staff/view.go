package staff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showroom/internal/ui/styles"
)

// View implements mode.Controller.
func (m Model) View() string {
	base := m.baseView()

	switch m.state {
	case viewForm:
		return m.form.Overlay(base)
	case viewConfirmDelete:
		return m.confirm.Overlay(base)
	case viewAssign:
		return m.carPicker.Overlay(base)
	default:
		return base
	}
}

func (m Model) baseView() string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextSecondaryColor).
		Render("Staff"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	return b.String()
}
