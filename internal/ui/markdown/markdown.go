// Package markdown provides styled markdown rendering for the help overlay.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle strips document margins so rendered markdown sits flush
// inside bordered overlays.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with showroom-specific configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given word-wrap width.
// A fixed dark style is used instead of WithAutoStyle(): auto-detection
// queries the terminal background and the OSC response leaks into the
// Bubble Tea input stream.
func New(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown into styled terminal output.
func (r *Renderer) Render(md string) (string, error) {
	return r.renderer.Render(md)
}
