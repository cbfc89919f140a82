package styles

import "github.com/charmbracelet/lipgloss"

// Theme carries the user-overridable colors from the config file. Empty
// values leave the built-in color untouched.
type Theme struct {
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// ApplyTheme overrides the semantic colors with the user's hex values.
// Safe to call again when the config file changes; styles pick the new
// colors up on the next render.
func ApplyTheme(t Theme) {
	if c, ok := themeColor(t.Highlight); ok {
		BorderFocusColor = c
		BorderHighlightColor = c
		ToastBorderInfoColor = c
	}
	if c, ok := themeColor(t.Subtle); ok {
		TextMutedColor = c
		BorderDefaultColor = c
	}
	if c, ok := themeColor(t.Error); ok {
		StatusErrorColor = c
		ToastBorderErrorColor = c
	}
	if c, ok := themeColor(t.Success); ok {
		StatusSuccessColor = c
		ToastBorderSuccessColor = c
		ConditionNewColor = c
	}
}

func themeColor(hex string) (lipgloss.AdaptiveColor, bool) {
	if hex == "" {
		return lipgloss.AdaptiveColor{}, false
	}
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}, true
}
