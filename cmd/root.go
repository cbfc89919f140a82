package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"showroom/internal/app"
	"showroom/internal/config"
	"showroom/internal/dealership"
	"showroom/internal/log"
	"showroom/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "showroom",
	Short:   "A terminal ui for car dealership record keeping",
	Long:    `A terminal user interface for keeping dealership records: the car inventory and the sales staff, with search and salesperson assignment. All records live in memory for the session.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/showroom/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to .showroom/debug.log")
	rootCmd.Flags().Bool("demo", false,
		"start with a few sample cars and salespeople")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .showroom/config.yaml (current directory)
		// 2. ~/.config/showroom/config.yaml (user config)
		if _, err := os.Stat(".showroom/config.yaml"); err == nil {
			viper.SetConfigFile(".showroom/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "showroom"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .showroom/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := filepath.Join(".showroom", "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	styles.ApplyTheme(styles.Theme(cfg.Theme))

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("SHOWROOM_DEBUG") != "" {
		cleanup, err := log.Init(filepath.Join(".showroom", "debug.log"), "showroom")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	d := dealership.New()
	if demo, _ := cmd.Flags().GetBool("demo"); demo || cfg.DemoData {
		if err := seedDemoData(d); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	configFilePath := viper.ConfigFileUsed()

	zone.NewGlobal()
	defer zone.Close()

	model := app.New(d, cfg, configFilePath)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
