// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"showroom/internal/config"
	"showroom/internal/dealership"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeInventory AppMode = iota
	ModeStaff
)

// String returns the mode name shown in the status bar.
func (m AppMode) String() string {
	switch m {
	case ModeStaff:
		return "staff"
	default:
		return "inventory"
	}
}

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Dealership *dealership.Dealership
	Config     *config.Config
	ConfigPath string
}
