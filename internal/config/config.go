// Package config provides configuration types, defaults, and persistence for
// showroom.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"showroom/internal/log"
)

// Config holds all configuration options for showroom.
type Config struct {
	// AutoReload re-applies the theme when the config file changes on disk.
	AutoReload bool        `mapstructure:"auto_reload"`
	DemoData   bool        `mapstructure:"demo_data"`
	UI         UIConfig    `mapstructure:"ui"`
	Theme      ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	CurrencyCode  string `mapstructure:"currency_code"` // ISO 4217 code shown next to prices
}

// ThemeConfig holds the color overrides users can set. Values are hex colors
// like "#54A0FF".
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Subtle    string `mapstructure:"subtle"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		AutoReload: true,
		DemoData:   false,
		UI: UIConfig{
			ShowStatusBar: true,
			CurrencyCode:  "USD",
		},
		Theme: ThemeConfig{
			Highlight: "#54A0FF",
			Subtle:    "#696969",
			Error:     "#FF8787",
			Success:   "#73F59F",
		},
	}
}

var (
	hexColorRe     = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Validate checks user-supplied values that viper cannot type-check.
func Validate(cfg Config) error {
	colors := map[string]string{
		"theme.highlight": cfg.Theme.Highlight,
		"theme.subtle":    cfg.Theme.Subtle,
		"theme.error":     cfg.Theme.Error,
		"theme.success":   cfg.Theme.Success,
	}
	for key, val := range colors {
		if val != "" && !hexColorRe.MatchString(val) {
			return fmt.Errorf("%s: %q is not a hex color like #54A0FF", key, val)
		}
	}
	if cc := cfg.UI.CurrencyCode; cc != "" && !currencyCodeRe.MatchString(cc) {
		return fmt.Errorf("ui.currency_code: %q is not a three-letter code like USD", cc)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written by
// `showroom config init`.
func DefaultConfigTemplate() string {
	return `# showroom configuration
# Lookup order: .showroom/config.yaml, then ~/.config/showroom/config.yaml.

# Re-apply the theme when this file changes on disk.
auto_reload: true

# Start with a few sample cars and salespeople. All records are in-memory
# only and discarded on exit either way.
demo_data: false

ui:
  show_status_bar: true
  # ISO 4217 code shown next to prices.
  currency_code: USD

theme:
  highlight: "#54A0FF"
  subtle: "#696969"
  error: "#FF8787"
  success: "#73F59F"
`
}

// WriteDefaultConfig writes the commented default config to configPath,
// creating parent directories as needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
