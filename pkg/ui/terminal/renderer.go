// Package terminal provides rich terminal output with colors and tables
package terminal

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/ui/display"
	"github.com/arthur-debert/crosspath/pkg/ui/styles"
)

// Renderer provides rich terminal output using pterm tables and lipgloss
// styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.Value:
		_, err := fmt.Fprintln(r.output, styles.GetStyle("Path").Render(v.Value))
		return err
	case *display.Message:
		_, err := fmt.Fprint(r.output, pterm.Success.Sprintln(v.Message))
		return err
	case *display.PathReport:
		data := pterm.TableData{}
		for _, f := range v.Fields() {
			data = append(data, []string{styles.GetStyle("Key").Render(f.Key), f.Value})
		}
		return r.table(data, false)
	case *display.BookmarkList:
		if len(v.Bookmarks) == 0 {
			_, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render("No bookmarks configured"))
			return err
		}
		data := pterm.TableData{{"Name", "Path", "Native"}}
		for _, b := range v.Bookmarks {
			data = append(data, []string{b.Name, b.Path, b.Native})
		}
		return r.table(data, true)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) table(data pterm.TableData, header bool) error {
	out, err := pterm.DefaultTable.WithHasHeader(header).WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	code := errors.GetErrorCode(err)
	var line string
	if code != errors.ErrUnknown {
		line = fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(code)),
			err.Error())
	} else {
		line = fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	}
	_, werr := fmt.Fprintln(r.output, line)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprint(r.output, pterm.Info.Sprintln(msg))
	return err
}
