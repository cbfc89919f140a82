package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"showroom/internal/dealership"
	"showroom/internal/keys"
	"showroom/internal/mode"
	"showroom/internal/registry"
	"showroom/internal/ui/formmodal"
	"showroom/internal/ui/modal"
	"showroom/internal/ui/toaster"
)

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
			m = m.openAddForm()
			return m, m.form.Init()

		case key.Matches(msg, keys.Default.Edit):
			return m.openEditForm()

		case key.Matches(msg, keys.Default.Delete):
			return m.openDeleteConfirm()

		case key.Matches(msg, keys.Default.Enter):
			return m.openDetails()

		case key.Matches(msg, keys.Default.Search):
			m.state = viewSearch
			m.searchInput.SetValue(m.query)
			m.searchInput.Focus()
			return m, nil

		case key.Matches(msg, keys.Default.Escape):
			if m.query != "" {
				m.query = ""
				m = m.refresh()
			}
			return m, nil
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

func (m Model) openAddForm() Model {
	m.editingID = 0
	m.form = formmodal.New(carFormConfig("Add Car", "Add", dealership.Car{
		Year:      time.Now().Year(),
		Condition: dealership.ConditionNew,
	})).SetSize(m.width, m.height)
	m.state = viewForm
	return m
}

func (m Model) openEditForm() (Model, tea.Cmd) {
	car, ok := m.table.Selected()
	if !ok {
		return m, toaster.Show("no car selected", toaster.StyleError)
	}
	m.editingID = car.ID
	m.form = formmodal.New(carFormConfig("Edit "+car.Title(), "Save", car)).SetSize(m.width, m.height)
	m.state = viewForm
	return m, m.form.Init()
}

func (m Model) openDeleteConfirm() (Model, tea.Cmd) {
	car, ok := m.table.Selected()
	if !ok {
		return m, toaster.Show("no car selected", toaster.StyleError)
	}
	m.deleteID = car.ID
	m.confirm = modal.New(modal.Config{
		Title:          "Delete Car",
		Message:        fmt.Sprintf("Remove %s (stock %s) from inventory?", car.Title(), car.StockNumber),
		ConfirmLabel:   "Delete",
		ConfirmVariant: modal.ButtonDanger,
	}).SetSize(m.width, m.height)
	m.state = viewConfirmDelete
	return m, nil
}

func (m Model) openDetails() (mode.Controller, tea.Cmd) {
	car, ok := m.table.Selected()
	if !ok {
		return m, nil
	}
	m.detailsCar = car
	m.details.SetContent(m.detailsContent(car))
	m.details.GotoTop()
	m.state = viewDetails
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case formmodal.SubmitMsg:
		return m.saveCar(msg.Values)
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
		if err := m.services.Dealership.RemoveCar(m.deleteID); err != nil {
			return m, toaster.Show(err.Error(), toaster.StyleError)
		}
		logMode("car deleted", "id", m.deleteID)
		m = m.refresh()
		return m, toaster.Show("car removed", toaster.StyleSuccess)
	case modal.CancelMsg:
		m.state = viewTable
		return m, nil
	default:
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
}

func (m Model) updateDetails(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Default.Escape),
			key.Matches(keyMsg, keys.Default.Enter):
			m.state = viewTable
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.details, cmd = m.details.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (mode.Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.query = strings.TrimSpace(m.searchInput.Value())
			m.searchInput.Blur()
			m.state = viewTable
			m = m.refresh()
			logMode("search applied", "query", m.query)
			return m, nil
		case "esc":
			m.searchInput.Blur()
			m.state = viewTable
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// saveCar builds a car from the form values and adds or replaces it.
// Values were already shape-checked by the form's Validate, so the
// conversions cannot fail here.
func (m Model) saveCar(values map[string]any) (mode.Controller, tea.Cmd) {
	car := carFromValues(values)

	var err error
	if m.editingID == 0 {
		var id int64
		id, err = m.services.Dealership.AddCar(car)
		car.ID = id
	} else {
		// Full replace, but keep what the form does not expose.
		prev, getErr := m.services.Dealership.CarByID(m.editingID)
		if getErr != nil {
			m.state = viewTable
			return m, toaster.Show(getErr.Error(), toaster.StyleError)
		}
		car.SalespersonID = prev.SalespersonID
		err = m.services.Dealership.UpdateCar(m.editingID, car)
		car.ID = m.editingID
	}

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

	action := "added"
	if m.editingID != 0 {
		action = "updated"
	}
	logMode("car "+action, "id", car.ID, "make", car.Make, "model", car.Model)
	return m, toaster.Show(fmt.Sprintf("%s %s", car.Title(), action), toaster.StyleSuccess)
}

func carFormConfig(title, submitLabel string, initial dealership.Car) formmodal.FormConfig {
	num := func(n int) string {
		if n == 0 {
			return ""
		}
		return strconv.Itoa(n)
	}
	price := ""
	if initial.Price > 0 {
		price = strconv.FormatFloat(initial.Price, 'f', -1, 64)
	}

	return formmodal.FormConfig{
		Title: title,
		Fields: []formmodal.FieldConfig{
			{Key: "make", Type: formmodal.FieldTypeText, Label: "Make", Hint: "required", InitialValue: initial.Make},
			{Key: "model", Type: formmodal.FieldTypeText, Label: "Model", Hint: "required", InitialValue: initial.Model},
			{Key: "year", Type: formmodal.FieldTypeText, Label: "Year", Hint: "required", InitialValue: num(initial.Year)},
			{Key: "price", Type: formmodal.FieldTypeText, Label: "Price", Hint: "required", InitialValue: price},
			{Key: "color", Type: formmodal.FieldTypeText, Label: "Color", InitialValue: initial.Color},
			{Key: "body", Type: formmodal.FieldTypeText, Label: "Body Type", Placeholder: "Sedan, SUV, ...", InitialValue: initial.BodyType},
			{Key: "drivetrain", Type: formmodal.FieldTypeText, Label: "Drive Train", Placeholder: "FWD, AWD, ...", InitialValue: initial.DriveTrain},
			{Key: "engine", Type: formmodal.FieldTypeText, Label: "Engine Power (cc)", InitialValue: num(initial.EnginePowerCC)},
			{Key: "fuel", Type: formmodal.FieldTypeText, Label: "Fuel Capacity (l)", InitialValue: num(initial.FuelCapacityL)},
			{Key: "condition", Type: formmodal.FieldTypeSelect, Label: "Condition", Options: []formmodal.SelectOption{
				{Label: "New", Value: string(dealership.ConditionNew), Selected: initial.Condition != dealership.ConditionUsed},
				{Label: "Used", Value: string(dealership.ConditionUsed), Selected: initial.Condition == dealership.ConditionUsed},
			}},
		},
		SubmitLabel: submitLabel,
		Validate:    validateCarValues,
	}
}

func validateCarValues(values map[string]any) error {
	if strings.TrimSpace(values["make"].(string)) == "" {
		return errors.New("make is required")
	}
	if strings.TrimSpace(values["model"].(string)) == "" {
		return errors.New("model is required")
	}
	if _, err := strconv.Atoi(strings.TrimSpace(values["year"].(string))); err != nil {
		return errors.New("year must be a number")
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(values["price"].(string)), 64)
	if err != nil || p <= 0 {
		return errors.New("price must be a positive number")
	}
	for _, key := range []string{"engine", "fuel"} {
		if v := strings.TrimSpace(values[key].(string)); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				return errors.New(key + " capacity must be a number")
			}
		}
	}
	return nil
}

func carFromValues(values map[string]any) dealership.Car {
	str := func(key string) string { return strings.TrimSpace(values[key].(string)) }
	intVal := func(key string) int {
		n, _ := strconv.Atoi(str(key))
		return n
	}
	price, _ := strconv.ParseFloat(str("price"), 64)

	return dealership.Car{
		Make:          str("make"),
		Model:         str("model"),
		Year:          intVal("year"),
		Price:         price,
		Color:         str("color"),
		BodyType:      str("body"),
		DriveTrain:    str("drivetrain"),
		EnginePowerCC: intVal("engine"),
		FuelCapacityL: intVal("fuel"),
		Condition:     dealership.Condition(values["condition"].(string)),
	}
}
