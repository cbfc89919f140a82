package config

import (
	"fmt"

	"github.com/spf13/viper"

	"showroom/internal/log"
)

// Load reads the config file at path on top of the defaults and validates
// the result. Used both at startup and when the watcher reports a change.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	log.Debug(log.CatConfig, "config loaded", "path", path)
	return cfg, nil
}

// SetDefaults registers the default values on a viper instance so missing
// keys fall back rather than zeroing out.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("auto_reload", defaults.AutoReload)
	v.SetDefault("demo_data", defaults.DemoData)
	v.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	v.SetDefault("ui.currency_code", defaults.UI.CurrencyCode)
	v.SetDefault("theme.highlight", defaults.Theme.Highlight)
	v.SetDefault("theme.subtle", defaults.Theme.Subtle)
	v.SetDefault("theme.error", defaults.Theme.Error)
	v.SetDefault("theme.success", defaults.Theme.Success)
}
