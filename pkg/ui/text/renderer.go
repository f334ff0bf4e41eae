// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arthur-debert/crosspath/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders any result type as plain text. Single values are
// printed bare so they can be consumed by scripts.
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Value:
		_, err := io.WriteString(r.output, withNewline(v.Value))
		return err
	case *display.Message:
		_, err := fmt.Fprintln(r.output, v.Message)
		return err
	case *display.PathReport:
		tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
		for _, f := range v.Fields() {
			if _, err := fmt.Fprintf(tw, "%s:\t%s\n", f.Key, f.Value); err != nil {
				return err
			}
		}
		return tw.Flush()
	case *display.BookmarkList:
		tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
		for _, b := range v.Bookmarks {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", b.Name, b.Path, b.Native); err != nil {
				return err
			}
		}
		return tw.Flush()
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func withNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
