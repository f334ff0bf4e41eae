package crosspath

import (
	"strings"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

// JoinRelative appends addition to p. addition is validated on its own and
// always treated as relative: a leading "/" does not replace p.
func (p Path) JoinRelative(addition string) (Path, error) {
	add, err := New(addition)
	if err != nil {
		return Path{}, err
	}
	rel := strings.TrimLeft(add.s, "/")
	if p.s == "" {
		return New(rel)
	}
	return New(strings.TrimRight(p.s, "/") + "/" + rel)
}

// TrimStartSlash removes all leading slashes
func (p Path) TrimStartSlash() Path {
	return Path{s: strings.TrimLeft(p.s, "/")}
}

// TrimEndSlash removes all trailing slashes
func (p Path) TrimEndSlash() Path {
	return Path{s: strings.TrimRight(p.s, "/")}
}

// AddStartSlash ensures exactly one leading slash
func (p Path) AddStartSlash() Path {
	return Path{s: "/" + strings.TrimLeft(p.s, "/")}
}

// AddEndSlash ensures exactly one trailing slash
func (p Path) AddEndSlash() Path {
	return Path{s: strings.TrimRight(p.s, "/") + "/"}
}

// ReplaceExtension replaces the extension of the final component with ext.
// An empty ext removes the extension. A single leading dot on ext is ignored.
func (p Path) ReplaceExtension(ext string) (Path, error) {
	trimmed := strings.TrimRight(p.s, "/")
	i := strings.LastIndexByte(trimmed, '/')
	dir, name := trimmed[:i+1], trimmed[i+1:]
	if name == "" || trimmed == homeToken {
		return Path{}, errors.InvalidPath(errors.ErrNoFileName, p.s, "path has no file name")
	}

	stem, _, _ := splitExtension(name)
	stem = strings.TrimRight(stem, ".")
	ext = strings.TrimPrefix(ext, ".")
	if ext != "" {
		stem += "." + ext
	}
	return New(dir + stem)
}
