// Package preview renders generated markdown for terminal display.
package preview

import (
	"github.com/charmbracelet/glamour"
)

// Renderer converts markdown to styled terminal output using glamour.
type Renderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a custom style
	Width int    // terminal width, 0 = auto-detect
}

// NewRenderer creates a markdown renderer with auto-detected style and width.
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to terminal output. On any renderer failure the
// plain markdown is returned unchanged; preview is best-effort.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
