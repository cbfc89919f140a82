// Package staff implements the salesperson mode: the staff table with an
// add form, delete confirmation and a picker that assigns the selected
// salesperson to a car.
package staff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"showroom/internal/dealership"
	"showroom/internal/keys"
	"showroom/internal/log"
	"showroom/internal/mode"
	"showroom/internal/registry"
	"showroom/internal/ui/formmodal"
	"showroom/internal/ui/modal"
	"showroom/internal/ui/picker"
	"showroom/internal/ui/styles"
	"showroom/internal/ui/table"
	"showroom/internal/ui/toaster"
)

type viewState int

const (
	viewTable viewState = iota
	viewForm
	viewConfirmDelete
	viewAssign
)

const rowZonePrefix = "staff-sp-"

// Model is the staff mode controller.
type Model struct {
	services mode.Services
	state    viewState

	table table.Model[dealership.Salesperson]

	form formmodal.Model

	confirm  modal.Model
	deleteID int64

	carPicker picker.Model
	assignID  int64 // salesperson being assigned

	width, height int
}

// New creates the staff mode.
func New(services mode.Services) Model {
	m := Model{
		services: services,
		table:    table.New(staffTableConfig(services)),
	}
	return m.refresh()
}

func staffTableConfig(services mode.Services) table.Config[dealership.Salesperson] {
	cell := func(render func(dealership.Salesperson) string) func(dealership.Salesperson, bool) string {
		primary := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
		selected := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
		return func(sp dealership.Salesperson, isSelected bool) string {
			if isSelected {
				return selected.Render(render(sp))
			}
			return primary.Render(render(sp))
		}
	}

	return table.Config[dealership.Salesperson]{
		Columns: []table.Column[dealership.Salesperson]{
			{Title: "ID", Width: 4, Render: cell(func(sp dealership.Salesperson) string { return fmt.Sprintf("%d", sp.ID) })},
			{Title: "NAME", Width: 20, Render: cell(func(sp dealership.Salesperson) string { return sp.Name })},
			{Title: "PHONE", Width: 16, Render: cell(func(sp dealership.Salesperson) string { return sp.Phone })},
			{Title: "SPECIALTY", Render: cell(func(sp dealership.Salesperson) string { return sp.Specialty })},
			{Title: "CARS", Width: 4, Render: cell(func(sp dealership.Salesperson) string {
				return fmt.Sprintf("%d", assignedCount(services.Dealership, sp.ID))
			})},
		},
		EmptyMessage: "no salespeople yet, press a to add one",
		ZoneID: func(index int, _ dealership.Salesperson) string {
			return fmt.Sprintf("%s%d", rowZonePrefix, index)
		},
	}
}

func assignedCount(d *dealership.Dealership, spID int64) int {
	n := 0
	for _, car := range d.Cars() {
		if car.SalespersonID == spID {
			n++
		}
	}
	return n
}

func (m Model) refresh() Model {
	m.table = m.table.SetRows(m.services.Dealership.Salespeople())
	return m
}

// Busy reports whether an overlay is capturing keyboard input, so the
// app holds back global keybindings.
func (m Model) Busy() bool {
	return m.state != viewTable
}

// Refresh reloads the table from the dealership. The app calls it when
// the mode becomes active again.
func (m Model) Refresh() Model {
	return m.refresh()
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
	m.carPicker = m.carPicker.SetSize(width, height)
	return m
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch m.state {
	case viewForm:
		return m.updateForm(msg)
	case viewConfirmDelete:
		return m.updateConfirmDelete(msg)
	case viewAssign:
		return m.updateAssign(msg)
	default:
		return m.updateTable(msg)
	}
}

func (m Model) updateTable(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Default.Up):
			m.table = m.table.CursorUp()
			return m, nil

		case key.Matches(msg, keys.Default.Down):
			m.table = m.table.CursorDown()
			return m, nil

		case key.Matches(msg, keys.Default.Add):
			m.form = formmodal.New(salespersonFormConfig()).SetSize(m.width, m.height)
			m.state = viewForm
			return m, m.form.Init()

		case key.Matches(msg, keys.Default.Delete):
			return m.openDeleteConfirm()

		case key.Matches(msg, keys.Default.Assign):
			return m.openAssignPicker()
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			for i := 0; i < m.table.Len(); i++ {
				if z := zone.Get(fmt.Sprintf("%s%d", rowZonePrefix, i)); z != nil && z.InBounds(msg) {
					m.table = m.table.SetCursor(i)
					return m, nil
				}
			}
		}
	}
	return m, nil
}

func (m Model) openDeleteConfirm() (Model, tea.Cmd) {
	sp, ok := m.table.Selected()
	if !ok {
		return m, toaster.Show("no salesperson selected", toaster.StyleError)
	}
	m.deleteID = sp.ID

	message := fmt.Sprintf("Remove %s from staff?", sp.Name)
	if n := assignedCount(m.services.Dealership, sp.ID); n > 0 {
		message = fmt.Sprintf("Remove %s from staff? %d assigned car(s) will keep the stale reference.", sp.Name, n)
	}
	m.confirm = modal.New(modal.Config{
		Title:          "Delete Salesperson",
		Message:        message,
		ConfirmLabel:   "Delete",
		ConfirmVariant: modal.ButtonDanger,
	}).SetSize(m.width, m.height)
	m.state = viewConfirmDelete
	return m, nil
}

func (m Model) openAssignPicker() (Model, tea.Cmd) {
	sp, ok := m.table.Selected()
	if !ok {
		return m, toaster.Show("no salesperson selected", toaster.StyleError)
	}

	cars := m.services.Dealership.Cars()
	if len(cars) == 0 {
		return m, toaster.Show("no cars in inventory to assign", toaster.StyleError)
	}

	options := make([]picker.Option, 0, len(cars))
	selected := 0
	for i, car := range cars {
		label := car.Title()
		if car.SalespersonID != 0 {
			label += " (" + m.services.Dealership.SalespersonName(car.SalespersonID) + ")"
		}
		options = append(options, picker.Option{Label: label, Value: car.ID})
		if car.SalespersonID == sp.ID {
			selected = i
		}
	}

	m.assignID = sp.ID
	m.carPicker = picker.New("Assign "+sp.Name+" to", options).
		SetSelected(selected).
		SetSize(m.width, m.height)
	m.state = viewAssign
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case formmodal.SubmitMsg:
		return m.saveSalesperson(msg.Values)
	case formmodal.CancelMsg:
		m.state = viewTable
		return m, nil
	default:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg.(type) {
	case modal.ConfirmMsg:
		m.state = viewTable
		if err := m.services.Dealership.RemoveSalesperson(m.deleteID); err != nil {
			return m, toaster.Show(err.Error(), toaster.StyleError)
		}
		log.Debug(log.CatMode, "salesperson deleted", "id", m.deleteID)
		m = m.refresh()
		return m, toaster.Show("salesperson removed", toaster.StyleSuccess)
	case modal.CancelMsg:
		m.state = viewTable
		return m, nil
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

func (m Model) updateAssign(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.state = viewTable
			carID := m.carPicker.Selected().Value
			if err := m.services.Dealership.AssignSalesperson(carID, m.assignID); err != nil {
				return m, toaster.Show(err.Error(), toaster.StyleError)
			}
			log.Debug(log.CatMode, "salesperson assigned", "car", carID, "salesperson", m.assignID)
			m = m.refresh()
			return m, toaster.Show("salesperson assigned", toaster.StyleSuccess)
		case "esc":
			m.state = viewTable
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.carPicker, cmd = m.carPicker.Update(msg)
	return m, cmd
}

func (m Model) saveSalesperson(values map[string]any) (mode.Controller, tea.Cmd) {
	sp := dealership.Salesperson{
		Name:      strings.TrimSpace(values["name"].(string)),
		Phone:     strings.TrimSpace(values["phone"].(string)),
		Specialty: strings.TrimSpace(values["specialty"].(string)),
	}

	id, err := m.services.Dealership.AddSalesperson(sp)
	if err != nil {
		var vErr *registry.ValidationError
		if errors.As(err, &vErr) {
			m.form = m.form.SetError(err.Error())
			return m, nil
		}
		m.state = viewTable
		return m, toaster.Show(err.Error(), toaster.StyleError)
	}

	m.state = viewTable
	m = m.refresh()
	log.Debug(log.CatMode, "salesperson added", "id", id, "name", sp.Name)
	return m, toaster.Show(sp.Name+" added to staff", toaster.StyleSuccess)
}

func salespersonFormConfig() formmodal.FormConfig {
	return formmodal.FormConfig{
		Title: "Add Salesperson",
		Fields: []formmodal.FieldConfig{
			{Key: "name", Type: formmodal.FieldTypeText, Label: "Name", Hint: "required"},
			{Key: "phone", Type: formmodal.FieldTypeText, Label: "Phone"},
			{Key: "specialty", Type: formmodal.FieldTypeText, Label: "Specialty", Placeholder: "SUVs, sports cars, ..."},
		},
		SubmitLabel: "Add",
		Validate: func(values map[string]any) error {
			if strings.TrimSpace(values["name"].(string)) == "" {
				return errors.New("name is required")
			}
			return nil
		},
	}
}
