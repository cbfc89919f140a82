package inventory

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showroom/internal/dealership"
	"showroom/internal/ui/overlay"
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
	case viewDetails:
		return overlay.Place(overlay.Config{
			Width:  m.width,
			Height: m.height,
		}, m.detailsView(), base)
	default:
		return base
	}
}

func (m Model) baseView() string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextSecondaryColor).
		Render("Inventory")
	if m.query != "" {
		header += lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Render(fmt.Sprintf("  (make: %q, esc clears)", m.query))
	}
	b.WriteString(header)
	b.WriteString("\n")

	if m.state == viewSearch {
		b.WriteString(m.searchInput.View())
	}
	b.WriteString("\n")

	b.WriteString(m.table.View())
	return b.String()
}

func (m Model) detailsView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		Render(m.detailsCar.Title())

	hint := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render("esc close")

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.details.View(), "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(body)
}

func (m Model) detailsContent(car dealership.Car) string {
	label := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Width(14)
	value := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)

	row := func(name, v string) string {
		if v == "" {
			v = "-"
		}
		return label.Render(name) + value.Render(v)
	}

	salesperson := m.services.Dealership.SalespersonName(car.SalespersonID)

	rows := []string{
		row("Stock #", car.StockNumber),
		row("Make", car.Make),
		row("Model", car.Model),
		row("Year", fmt.Sprintf("%d", car.Year)),
		row("Price", formatPrice(m.services.Config.UI.CurrencyCode, car.Price)),
		row("Color", car.Color),
		row("Body", car.BodyType),
		row("Condition", string(car.Condition)),
		row("Drive train", car.DriveTrain),
		row("Engine", formatCC(car.EnginePowerCC)),
		row("Fuel tank", formatLiters(car.FuelCapacityL)),
		row("Salesperson", salesperson),
	}
	return strings.Join(rows, "\n")
}

func formatCC(cc int) string {
	if cc == 0 {
		return ""
	}
	return fmt.Sprintf("%d cc", cc)
}

func formatLiters(l int) string {
	if l == 0 {
		return ""
	}
	return fmt.Sprintf("%d l", l)
}
