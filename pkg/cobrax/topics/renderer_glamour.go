package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour. Other topic formats
// are handled like PlainRenderer.
type GlamourRenderer struct {
	// Style is a glamour standard style name ("dark", "light", "notty")
	// or "auto" to follow the terminal background
	Style string
	// Width wraps rendered text; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer returns a renderer that detects the terminal style
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts[0] = glamour.WithStandardStyle(r.Style)
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}
	return opts
}

// Render converts markdown to terminal output. When glamour fails the raw
// content is returned.
func (r *GlamourRenderer) Render(content string, format string) string {
	plain := (&PlainRenderer{}).Render(content, format)
	if format != ".md" {
		return plain
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return plain
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return plain
	}
	return rendered
}
