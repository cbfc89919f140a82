package app

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"showroom/internal/config"
	"showroom/internal/dealership"
	"showroom/internal/pubsub"
	"showroom/internal/ui/toaster"
	"showroom/internal/watcher"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	code := m.Run()
	zone.Close()
	os.Exit(code)
}

func newTestApp(t *testing.T) Model {
	t.Helper()
	d := dealership.New()
	_, err := d.AddCar(dealership.Car{Make: "Toyota", Model: "Corolla", Year: 2020, Price: 20000})
	require.NoError(t, err)
	_, err = d.AddSalesperson(dealership.Salesperson{Name: "Ame"})
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.AutoReload = false // no watcher goroutine in tests

	m := New(d, cfg, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
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

func TestApp_StartsInInventory(t *testing.T) {
	m := newTestApp(t)
	view := m.View()
	require.Contains(t, view, "Inventory")
	require.Contains(t, view, "Toyota")
	require.Contains(t, view, "1 car, 1 salesperson")
}

func TestApp_TabSwitchesModes(t *testing.T) {
	m := newTestApp(t)

	m = press(t, m, "tab")
	require.Contains(t, m.View(), "Staff")
	require.Contains(t, m.View(), "Ame")

	m = press(t, m, "tab")
	require.Contains(t, m.View(), "Inventory")
}

func TestApp_SwitchRefreshesTargetMode(t *testing.T) {
	m := newTestApp(t)

	// Staff added after startup only shows up via the refresh-on-switch.
	_, err := m.services.Dealership.AddSalesperson(dealership.Salesperson{Name: "Bo"})
	require.NoError(t, err)

	m = press(t, m, "tab")
	require.Contains(t, m.View(), "Bo")
}

func TestApp_QuitFromTable(t *testing.T) {
	m := newTestApp(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestApp_QTypesInsideForm(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "a") // open the add form

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)

	if cmd != nil {
		require.NotEqual(t, tea.Quit(), cmd())
	}
	require.True(t, m.inventory.Busy()) // still in the form
}

func TestApp_HelpOverlayToggles(t *testing.T) {
	m := newTestApp(t)
	m = press(t, m, "?")
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Showroom")

	m = press(t, m, "x") // any key closes
	require.False(t, m.showHelp)
}

func TestApp_ToastShowAndDismiss(t *testing.T) {
	m := newTestApp(t)

	next, cmd := m.Update(toaster.ShowMsg{Message: "car added", Style: toaster.StyleSuccess})
	m = next.(Model)
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "car added")

	next, _ = m.Update(toaster.DismissMsg{})
	m = next.(Model)
	require.NotContains(t, m.View(), "car added")
}

func TestApp_ToggleStatusBarHidesIt(t *testing.T) {
	m := newTestApp(t)
	require.Contains(t, m.View(), "tab switch")

	m = press(t, m, "S")
	require.NotContains(t, m.View(), "tab switch")
	require.False(t, m.services.Config.UI.ShowStatusBar)
}

func TestApp_ConfigChangeReloadsTheme(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  highlight: \"#123456\"\n"), 0o600))

	d := dealership.New()
	cfg := config.Defaults()
	cfg.AutoReload = false
	m := New(d, cfg, path)

	next, cmd := m.Update(pubsub.Event[watcher.Event]{Type: pubsub.ChangedEvent, Payload: watcher.Event{Path: path}})
	m = next.(Model)

	require.Equal(t, "#123456", m.services.Config.Theme.Highlight)
	require.NotNil(t, cmd)
}

func TestApp_ConfigChangeWithBadFileToastsError(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("theme:\n  highlight: nope\n"), 0o600))

	d := dealership.New()
	cfg := config.Defaults()
	cfg.AutoReload = false
	m := New(d, cfg, path)
	before := m.services.Config.Theme.Highlight

	next, _ := m.Update(pubsub.Event[watcher.Event]{Type: pubsub.ChangedEvent, Payload: watcher.Event{Path: path}})
	m = next.(Model)

	require.Equal(t, before, m.services.Config.Theme.Highlight)
}
