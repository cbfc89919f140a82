package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_OverridesColors(t *testing.T) {
	origFocus := BorderFocusColor
	origError := StatusErrorColor
	t.Cleanup(func() {
		BorderFocusColor = origFocus
		StatusErrorColor = origError
	})

	ApplyTheme(Theme{Highlight: "#123456", Error: "#ABCDEF"})

	require.Equal(t, lipgloss.AdaptiveColor{Light: "#123456", Dark: "#123456"}, BorderFocusColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#ABCDEF", Dark: "#ABCDEF"}, StatusErrorColor)
}

func TestApplyTheme_EmptyValuesLeaveDefaults(t *testing.T) {
	before := TextMutedColor

	ApplyTheme(Theme{})

	require.Equal(t, before, TextMutedColor)
}
