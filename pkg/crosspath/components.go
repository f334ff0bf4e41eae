package crosspath

import (
	"strings"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

// nativeParts is a native path split the way the OS path syntax sees it
type nativeParts struct {
	volume string // "c:" on Windows, "" otherwise
	root   bool   // a separator follows the volume
	dir    string // everything between the root and the final component
	name   string // final component, "" when the path ends at the root
}

// splitNative splits a native path. Trailing separators are ignored, as
// native path APIs do.
func (m *Materializer) splitNative(native NativePath) nativeParts {
	seps := "/"
	s := string(native)
	var parts nativeParts

	if m.isWindows() {
		seps = `/\`
		if len(s) >= 2 && isASCIILetter(s[0]) && s[1] == ':' {
			parts.volume, s = s[:2], s[2:]
		}
	}

	if s != "" && strings.ContainsRune(seps, rune(s[0])) {
		parts.root = true
		s = strings.TrimLeft(s, seps)
	}

	s = strings.TrimRight(s, seps)
	if i := strings.LastIndexAny(s, seps); i >= 0 {
		parts.dir = strings.TrimRight(s[:i], seps)
		parts.name = s[i+1:]
	} else {
		parts.name = s
	}
	return parts
}

// nativeParent returns the native directory containing native. ok is false
// when native has no final component.
func (m *Materializer) nativeParent(native NativePath) (parent string, ok bool) {
	parts := m.splitNative(native)
	if parts.name == "" {
		return "", false
	}
	parent = parts.volume
	if parts.root {
		parent += "/"
	}
	return parent + parts.dir, true
}

// splitExtension splits a file name at its last dot. A leading dot does not
// start an extension.
func splitExtension(name string) (stem, ext string, hasExt bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

// FileName returns the final component of p on the current OS
func (m *Materializer) FileName(p Path) (string, error) {
	name := m.splitNative(m.CurrentOS(p)).name
	if name == "" {
		return "", errors.InvalidPath(errors.ErrNoFileName, p.s, "path has no file name")
	}
	return name, nil
}

// FileStem returns the file name of p without its extension
func (m *Materializer) FileStem(p Path) (string, error) {
	name, err := m.FileName(p)
	if err != nil {
		return "", err
	}
	stem, _, _ := splitExtension(name)
	return stem, nil
}

// Extension returns the extension of p without the dot. A file name without
// an extension yields "" rather than an error.
func (m *Materializer) Extension(p Path) (string, error) {
	name, err := m.FileName(p)
	if err != nil {
		return "", err
	}
	_, ext, _ := splitExtension(name)
	return ext, nil
}

// Parent returns the directory containing p, re-validated as a Path.
// A single relative component has the empty path as parent.
func (m *Materializer) Parent(p Path) (Path, error) {
	parent, ok := m.nativeParent(m.CurrentOS(p))
	if !ok {
		return Path{}, errors.InvalidPath(errors.ErrNoParent, p.s, "path has no parent")
	}
	return New(parent)
}

// FileName returns the final component of p
func (p Path) FileName() (string, error) {
	return defaultMaterializer.FileName(p)
}

// FileStem returns the final component of p without its extension
func (p Path) FileStem() (string, error) {
	return defaultMaterializer.FileStem(p)
}

// Extension returns the extension of p, or "" if the file name has none
func (p Path) Extension() (string, error) {
	return defaultMaterializer.Extension(p)
}

// Parent returns the directory containing p
func (p Path) Parent() (Path, error) {
	return defaultMaterializer.Parent(p)
}
