// Package inventory implements the car inventory mode: a scrollable table
// over the dealership's cars with add/edit forms, delete confirmation,
// a detail pane and search-by-make.
package inventory

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"showroom/internal/dealership"
	"showroom/internal/log"
	"showroom/internal/mode"
	"showroom/internal/ui/formmodal"
	"showroom/internal/ui/modal"
	"showroom/internal/ui/styles"
	"showroom/internal/ui/table"
)

// viewState tracks which layer of the mode has input focus.
type viewState int

const (
	viewTable viewState = iota
	viewForm
	viewDetails
	viewConfirmDelete
	viewSearch
)

const rowZonePrefix = "inventory-car-"

// Model is the inventory mode controller.
type Model struct {
	services mode.Services
	state    viewState

	table table.Model[dealership.Car]
	query string // active search-by-make filter, "" shows everything

	form      formmodal.Model
	editingID int64 // 0 while adding

	confirm  modal.Model
	deleteID int64

	details    viewport.Model
	detailsCar dealership.Car

	searchInput textinput.Model

	width, height int
}

// New creates the inventory mode.
func New(services mode.Services) Model {
	si := textinput.New()
	si.Placeholder = "make"
	si.Prompt = "search: "
	si.CharLimit = 40

	m := Model{
		services:    services,
		table:       table.New(carTableConfig(services)),
		searchInput: si,
		details:     viewport.New(0, 0),
	}
	return m.refresh()
}

func carTableConfig(services mode.Services) table.Config[dealership.Car] {
	cell := func(render func(dealership.Car) string) func(dealership.Car, bool) string {
		primary := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
		selected := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
		return func(c dealership.Car, isSelected bool) string {
			if isSelected {
				return selected.Render(render(c))
			}
			return primary.Render(render(c))
		}
	}

	condition := func(c dealership.Car, _ bool) string {
		st := lipgloss.NewStyle().Foreground(styles.ConditionUsedColor)
		if c.Condition == dealership.ConditionNew {
			st = lipgloss.NewStyle().Foreground(styles.ConditionNewColor)
		}
		return st.Render(string(c.Condition))
	}

	return table.Config[dealership.Car]{
		Columns: []table.Column[dealership.Car]{
			{Title: "ID", Width: 4, Render: cell(func(c dealership.Car) string { return fmt.Sprintf("%d", c.ID) })},
			{Title: "YEAR", Width: 4, Render: cell(func(c dealership.Car) string { return fmt.Sprintf("%d", c.Year) })},
			{Title: "MAKE", Width: 12, Render: cell(func(c dealership.Car) string { return c.Make })},
			{Title: "MODEL", Render: cell(func(c dealership.Car) string { return c.Model })},
			{Title: "PRICE", Width: 14, Render: cell(func(c dealership.Car) string {
				return formatPrice(services.Config.UI.CurrencyCode, c.Price)
			})},
			{Title: "COND", Width: 6, Render: condition},
			{Title: "SALESPERSON", Width: 16, Render: cell(func(c dealership.Car) string {
				if name := services.Dealership.SalespersonName(c.SalespersonID); name != "" {
					return name
				}
				return "-"
			})},
		},
		EmptyMessage: "no cars in stock, press a to add one",
		ZoneID: func(index int, _ dealership.Car) string {
			return fmt.Sprintf("%s%d", rowZonePrefix, index)
		},
	}
}

func formatPrice(currency string, price float64) string {
	return fmt.Sprintf("%s %.2f", currency, price)
}

// refresh reloads the table rows from the dealership, applying the active
// search filter.
func (m Model) refresh() Model {
	var cars []dealership.Car
	if m.query == "" {
		cars = m.services.Dealership.Cars()
	} else {
		cars = m.services.Dealership.SearchCarsByMake(m.query)
	}
	m.table = m.table.SetRows(cars)
	return m
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.table = m.table.SetSize(width, height-2)
	m.form = m.form.SetSize(width, height)
	m.confirm = m.confirm.SetSize(width, height)
	m.details.Width = min(width-4, 72)
	m.details.Height = height - 6
	return m
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch m.state {
	case viewForm:
		return m.updateForm(msg)
	case viewConfirmDelete:
		return m.updateConfirmDelete(msg)
	case viewDetails:
		return m.updateDetails(msg)
	case viewSearch:
		return m.updateSearch(msg)
	default:
		return m.updateTable(msg)
	}
}

// Selected returns the car under the cursor.
func (m Model) Selected() (dealership.Car, bool) {
	return m.table.Selected()
}

// Busy reports whether an overlay (form, modal, search prompt, details)
// is capturing keyboard input, so the app holds back global keybindings.
func (m Model) Busy() bool {
	return m.state != viewTable
}

// Refresh reloads the table from the dealership. The app calls it when
// the mode becomes active again.
func (m Model) Refresh() Model {
	return m.refresh()
}

func logMode(msg string, kv ...any) {
	log.Debug(log.CatMode, msg, kv...)
}
