package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

// Format selects how results are written
type Format int

const (
	// FormatAuto picks FormatTerminal for colour terminals and FormatText otherwise
	FormatAuto Format = iota
	// FormatTerminal renders pterm tables and coloured prefixes
	FormatTerminal
	// FormatText renders unstyled text; single values are printed bare
	FormatText
	// FormatJSON renders indented JSON
	FormatJSON
	// FormatYAML renders YAML documents
	FormatYAML
)

// formatNames holds the canonical name of each format first, then aliases
var formatNames = map[Format][]string{
	FormatAuto:     {"auto", ""},
	FormatTerminal: {"term", "terminal"},
	FormatText:     {"text", "plain"},
	FormatJSON:     {"json"},
	FormatYAML:     {"yaml", "yml"},
}

// String returns the canonical name of f
func (f Format) String() string {
	if names, ok := formatNames[f]; ok {
		return names[0]
	}
	return "unknown"
}

// FormatNames returns the canonical format names, for flag completion
func FormatNames() []string {
	return []string{"auto", "term", "text", "json", "yaml"}
}

// ParseFormat parses a format name or alias, ignoring case
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	for f, names := range formatNames {
		for _, name := range names {
			if s == name {
				return f, nil
			}
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail("format", s)
}

// DetectFormat resolves FormatAuto for output. NO_COLOR, pipes, redirects
// and terminals without colour get FormatText.
func DetectFormat(output *os.File) Format {
	if termenv.EnvNoColor() {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
