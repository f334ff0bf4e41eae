package crosspath

import (
	"encoding"
	"fmt"
	"strings"
)

// Path is a validated path in canonical form. The zero value is the empty
// relative path.
type Path struct {
	s string
}

var (
	_ fmt.Stringer             = Path{}
	_ encoding.TextMarshaler   = Path{}
	_ encoding.TextUnmarshaler = (*Path)(nil)
)

// New validates and normalizes raw into a Path
func New(raw string) (Path, error) {
	s, err := normalize(raw)
	if err != nil {
		return Path{}, err
	}
	return Path{s: s}, nil
}

// MustNew is like New but panics if raw is invalid.
// This should only be used with hardcoded paths that must be valid.
func MustNew(raw string) Path {
	p, err := New(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid path %q: %v", raw, err))
	}
	return p
}

// String returns the canonical form
func (p Path) String() string {
	return p.s
}

// IsEmpty reports whether p is the empty path
func (p Path) IsEmpty() bool {
	return p.s == ""
}

// Equal reports whether p and other have the same canonical form
func (p Path) Equal(other Path) bool {
	return p.s == other.s
}

// IsAbsolute reports whether p is rooted, either at "/" or at the home
// directory token.
func (p Path) IsAbsolute() bool {
	return strings.HasPrefix(p.s, "/") || p.s == homeToken || strings.HasPrefix(p.s, homeToken+"/")
}

// Components returns the non-empty components of p
func (p Path) Components() []string {
	parts := strings.Split(p.s, "/")
	components := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			components = append(components, part)
		}
	}
	return components
}

// MarshalText implements encoding.TextMarshaler
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated
// like New.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := New(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
