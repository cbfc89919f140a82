package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func plainBackground(width, height int) string {
	line := strings.Repeat(".", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestPlace_CentersForeground(t *testing.T) {
	bg := plainBackground(10, 5)

	out := Place(Config{Width: 10, Height: 5}, "XX", bg)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5)
	require.Equal(t, "....XX....", lines[2])
	require.Equal(t, "..........", lines[0])
}

func TestPlace_BottomWithPadding(t *testing.T) {
	bg := plainBackground(6, 6)

	out := Place(Config{Width: 6, Height: 6, Position: Bottom, PadY: 1}, "!!", bg)
	lines := strings.Split(out, "\n")

	require.Equal(t, "..!!..", lines[4])
	require.Equal(t, "......", lines[5])
}

func TestPlace_ForegroundTallerThanViewport(t *testing.T) {
	bg := plainBackground(4, 2)
	fg := "A\nB\nC\nD"

	// Must not panic; overflow rows are dropped.
	out := Place(Config{Width: 4, Height: 2}, fg, bg)
	require.Len(t, strings.Split(out, "\n"), 2)
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 8, Height: 3}, "ZZ", "")
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	require.Contains(t, lines[1], "ZZ")
}
