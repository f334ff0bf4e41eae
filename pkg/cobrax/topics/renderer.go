package topics

import "strings"

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display.
	// format is the topic file extension, e.g. ".md".
	Render(content string, format string) string
}

// PlainRenderer is the default renderer. It prints content as written,
// ending in exactly one newline.
type PlainRenderer struct{}

// Render returns the content with trailing blank lines collapsed
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
