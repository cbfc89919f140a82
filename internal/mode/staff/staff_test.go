package staff

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"showroom/internal/config"
	"showroom/internal/dealership"
	"showroom/internal/mode"
	"showroom/internal/ui/formmodal"
	"showroom/internal/ui/modal"
	"showroom/internal/ui/toaster"
)

func newTestMode(t *testing.T, names ...string) (Model, *dealership.Dealership) {
	t.Helper()
	d := dealership.New()
	for _, name := range names {
		_, err := d.AddSalesperson(dealership.Salesperson{Name: name})
		require.NoError(t, err)
	}
	cfg := config.Defaults()
	m := New(mode.Services{Dealership: d, Config: &cfg})
	m = m.SetSize(100, 30).(Model)
	return m, d
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestStaff_ViewListsSalespeople(t *testing.T) {
	m, _ := newTestMode(t, "Ame", "Bo")
	view := m.View()
	require.Contains(t, view, "Staff")
	require.Contains(t, view, "Ame")
	require.Contains(t, view, "Bo")
}

func TestStaff_AddFlow(t *testing.T) {
	m, d := newTestMode(t)
	m = press(t, m, "a")
	require.Equal(t, viewForm, m.state)

	next, cmd := m.Update(formmodal.SubmitMsg{Values: map[string]any{
		"name":      "Cleo",
		"phone":     "555-0101",
		"specialty": "SUVs",
	}})
	m = next.(Model)

	require.Equal(t, viewTable, m.state)
	require.Len(t, d.Salespeople(), 1)
	require.Equal(t, "Cleo", d.Salespeople()[0].Name)

	toast, ok := cmd().(toaster.ShowMsg)
	require.True(t, ok)
	require.Equal(t, toaster.StyleSuccess, toast.Style)
}

func TestStaff_AddWithEmptyNameKeepsFormOpen(t *testing.T) {
	m, d := newTestMode(t)
	m = press(t, m, "a")

	next, cmd := m.Update(formmodal.SubmitMsg{Values: map[string]any{
		"name": "   ", "phone": "", "specialty": "",
	}})
	m = next.(Model)

	require.Equal(t, viewForm, m.state)
	require.Nil(t, cmd)
	require.Empty(t, d.Salespeople())
}

func TestStaff_DeleteFlow(t *testing.T) {
	m, d := newTestMode(t, "Ame", "Bo")
	m = press(t, m, "j", "d")
	require.Equal(t, viewConfirmDelete, m.state)
	require.Contains(t, m.View(), "Remove Bo")

	next, _ := m.Update(modal.ConfirmMsg{})
	m = next.(Model)

	require.Equal(t, viewTable, m.state)
	require.Len(t, d.Salespeople(), 1)
	require.Equal(t, "Ame", d.Salespeople()[0].Name)
}

func TestStaff_DeleteWarnsAboutAssignedCars(t *testing.T) {
	m, d := newTestMode(t, "Ame")
	carID, err := d.AddCar(dealership.Car{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 20000})
	require.NoError(t, err)
	require.NoError(t, d.AssignSalesperson(carID, d.Salespeople()[0].ID))

	m = m.refresh()
	m = press(t, m, "d")
	require.Contains(t, m.View(), "1 assigned car")
}

func TestStaff_AssignFlow(t *testing.T) {
	m, d := newTestMode(t, "Ame")
	carID, err := d.AddCar(dealership.Car{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 20000})
	require.NoError(t, err)

	m = m.refresh()
	m = press(t, m, "v")
	require.Equal(t, viewAssign, m.state)
	require.Contains(t, m.View(), "Assign Ame to")
	require.Contains(t, m.View(), "2020 Toyota Corolla")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Equal(t, viewTable, m.state)
	car, err := d.CarByID(carID)
	require.NoError(t, err)
	require.Equal(t, d.Salespeople()[0].ID, car.SalespersonID)

	toast, ok := cmd().(toaster.ShowMsg)
	require.True(t, ok)
	require.Equal(t, toaster.StyleSuccess, toast.Style)

	// The CARS column reflects the assignment.
	require.Contains(t, m.View(), "1")
}

func TestStaff_AssignWithNoCarsShowsError(t *testing.T) {
	m, _ := newTestMode(t, "Ame")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(Model)

	require.Equal(t, viewTable, m.state)
	toast, ok := cmd().(toaster.ShowMsg)
	require.True(t, ok)
	require.Equal(t, toaster.StyleError, toast.Style)
}

func TestStaff_AssignEscCancels(t *testing.T) {
	m, d := newTestMode(t, "Ame")
	carID, err := d.AddCar(dealership.Car{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 20000})
	require.NoError(t, err)

	m = m.refresh()
	m = press(t, m, "v", "esc")
	require.Equal(t, viewTable, m.state)

	car, err := d.CarByID(carID)
	require.NoError(t, err)
	require.Zero(t, car.SalespersonID)
}
