// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"showroom/internal/config"
	"showroom/internal/dealership"
	"showroom/internal/keys"
	"showroom/internal/log"
	"showroom/internal/mode"
	"showroom/internal/mode/inventory"
	"showroom/internal/mode/staff"
	"showroom/internal/pubsub"
	"showroom/internal/ui/markdown"
	"showroom/internal/ui/overlay"
	"showroom/internal/ui/styles"
	"showroom/internal/ui/toaster"
	"showroom/internal/watcher"
)

// Model is the root application state. It owns the mode controllers, the
// centralized toaster, the help overlay and the config watcher.
type Model struct {
	currentMode mode.AppMode
	inventory   inventory.Model
	staff       staff.Model

	services mode.Services

	toaster  toaster.Model
	showHelp bool
	help     string // rendered help markdown, built lazily

	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Event]

	width, height int
}

// New creates the application model. configPath may be empty when no
// config file exists; hot reload is skipped in that case.
func New(d *dealership.Dealership, cfg config.Config, configPath string) Model {
	var (
		watcherHandle   *watcher.Watcher
		watcherCancel   context.CancelFunc
		watcherListener *pubsub.ContinuousListener[watcher.Event]
	)

	// Watcher init errors are not fatal, the app works without hot reload.
	if cfg.AutoReload && configPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(configPath))
		if err == nil {
			if err := w.Start(); err == nil {
				watcherHandle = w
				var ctx context.Context
				ctx, watcherCancel = context.WithCancel(context.Background())
				watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
			} else {
				_ = w.Stop()
			}
		}
	}

	services := mode.Services{
		Dealership: d,
		Config:     &cfg,
		ConfigPath: configPath,
	}

	return Model{
		currentMode:     mode.ModeInventory,
		inventory:       inventory.New(services),
		staff:           staff.New(services),
		services:        services,
		toaster:         toaster.New(),
		watcherHandle:   watcherHandle,
		watcherCancel:   watcherCancel,
		watcherListener: watcherListener,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inventory.Init()}
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := msg.Height
		if m.services.Config.UI.ShowStatusBar {
			contentHeight--
		}
		m.inventory = m.inventory.SetSize(msg.Width, contentHeight).(inventory.Model)
		m.staff = m.staff.SetSize(msg.Width, contentHeight).(staff.Model)
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.help = "" // re-render at the new width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.activeBusy() {
			switch {
			case key.Matches(msg, keys.Default.Quit):
				return m, tea.Quit

			case key.Matches(msg, keys.Default.SwitchMode):
				return m.switchMode()

			case key.Matches(msg, keys.Default.Help):
				m.showHelp = true
				if m.help == "" {
					m.help = renderHelp(m.width)
				}
				return m, nil

			case key.Matches(msg, keys.Default.ToggleStatus):
				return m.toggleStatusBar()
			}
		}

	case toaster.ShowMsg:
		m.toaster = m.toaster.Show(msg.Message, msg.Style)
		return m, toaster.ScheduleDismiss(toaster.DefaultDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case pubsub.Event[watcher.Event]:
		return m.handleConfigChanged()
	}

	return m.delegate(msg)
}

// delegate forwards the message to the active mode controller.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentMode {
	case mode.ModeStaff:
		var next mode.Controller
		next, cmd = m.staff.Update(msg)
		m.staff = next.(staff.Model)
	default:
		var next mode.Controller
		next, cmd = m.inventory.Update(msg)
		m.inventory = next.(inventory.Model)
	}
	return m, cmd
}

func (m Model) activeBusy() bool {
	if m.currentMode == mode.ModeStaff {
		return m.staff.Busy()
	}
	return m.inventory.Busy()
}

// switchMode toggles between the inventory and staff modes, refreshing
// the one becoming active so cross-mode edits show up.
func (m Model) switchMode() (tea.Model, tea.Cmd) {
	from := m.currentMode
	if m.currentMode == mode.ModeInventory {
		m.currentMode = mode.ModeStaff
		m.staff = m.staff.Refresh()
	} else {
		m.currentMode = mode.ModeInventory
		m.inventory = m.inventory.Refresh()
	}
	log.Info(log.CatMode, "switching mode", "from", from, "to", m.currentMode)
	return m, nil
}

// toggleStatusBar flips the status bar and persists the choice to the
// config file without clobbering its comments.
func (m Model) toggleStatusBar() (tea.Model, tea.Cmd) {
	m.services.Config.UI.ShowStatusBar = !m.services.Config.UI.ShowStatusBar

	contentHeight := m.height
	if m.services.Config.UI.ShowStatusBar {
		contentHeight--
	}
	m.inventory = m.inventory.SetSize(m.width, contentHeight).(inventory.Model)
	m.staff = m.staff.SetSize(m.width, contentHeight).(staff.Model)

	if m.services.ConfigPath == "" {
		return m, nil
	}
	if err := config.SaveShowStatusBar(m.services.ConfigPath, m.services.Config.UI.ShowStatusBar); err != nil {
		log.ErrorErr(log.CatConfig, "saving status bar setting", err)
		return m, toaster.Show("could not save setting: "+err.Error(), toaster.StyleError)
	}
	return m, nil
}

// handleConfigChanged re-reads the config file and applies the theme.
func (m Model) handleConfigChanged() (tea.Model, tea.Cmd) {
	listen := func() tea.Cmd {
		if m.watcherListener != nil {
			return m.watcherListener.Listen()
		}
		return nil
	}()

	cfg, err := config.Load(m.services.ConfigPath)
	if err != nil {
		log.ErrorErr(log.CatConfig, "reloading config", err)
		return m, tea.Batch(listen, toaster.Show("config reload failed: "+err.Error(), toaster.StyleError))
	}

	*m.services.Config = cfg
	styles.ApplyTheme(styles.Theme(cfg.Theme))
	log.Info(log.CatConfig, "config reloaded", "path", m.services.ConfigPath)

	return m, tea.Batch(listen, toaster.Show("config reloaded", toaster.StyleInfo))
}

// View implements tea.Model. The whole frame passes through zone.Scan so
// row click zones resolve to screen coordinates.
func (m Model) View() string {
	var view string
	switch m.currentMode {
	case mode.ModeStaff:
		view = m.staff.View()
	default:
		view = m.inventory.View()
	}

	if m.services.Config.UI.ShowStatusBar {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.statusBar())
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view)
	}

	if m.showHelp && m.help != "" {
		view = overlay.Place(overlay.Config{
			Width:  m.width,
			Height: m.height,
		}, m.helpBox(), view)
	}

	return zone.Scan(view)
}

func (m Model) statusBar() string {
	left := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor).
		Render(" " + m.currentMode.String() + " ")

	counts := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render(statusCounts(m.services.Dealership))

	hints := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render("tab switch · ? help · q quit ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(counts) - lipgloss.Width(hints)
	if gap < 1 {
		gap = 1
	}
	return left + counts + strings.Repeat(" ", gap) + hints
}

func statusCounts(d *dealership.Dealership) string {
	cars := len(d.Cars())
	people := len(d.Salespeople())

	carNoun := "cars"
	if cars == 1 {
		carNoun = "car"
	}
	peopleNoun := "salespeople"
	if people == 1 {
		peopleNoun = "salesperson"
	}
	return fmt.Sprintf("%d %s, %d %s", cars, carNoun, people, peopleNoun)
}

func (m Model) helpBox() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2).
		Render(m.help)
}

const helpMarkdown = "# Showroom\n\n" +
	"## Everywhere\n\n" +
	"- `tab` switch between inventory and staff\n" +
	"- `j`/`k` move, mouse click selects a row\n" +
	"- `S` toggle the status bar\n" +
	"- `?` this help, `q` quit\n\n" +
	"## Inventory\n\n" +
	"- `a` add a car, `e` edit, `d` delete\n" +
	"- `enter` detail pane\n" +
	"- `/` search by make, `esc` clears the filter\n\n" +
	"## Staff\n\n" +
	"- `a` add a salesperson, `d` delete\n" +
	"- `v` assign the selected salesperson to a car\n"

// renderHelp renders the help markdown at the given terminal width.
// Falls back to the raw markdown if glamour fails.
func renderHelp(width int) string {
	w := width - 10
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	r, err := markdown.New(w)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
