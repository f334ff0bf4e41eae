package crosspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

func TestComponentsPosix(t *testing.T) {
	m := posixMaterializer()

	tests := []struct {
		name     string
		raw      string
		fileName string
		stem     string
		ext      string
		parent   string
	}{
		{name: "file with extension", raw: "foo/bar.txt", fileName: "bar.txt", stem: "bar", ext: "txt", parent: "foo"},
		{name: "single component", raw: "bar.txt", fileName: "bar.txt", stem: "bar", ext: "txt", parent: ""},
		{name: "no extension", raw: "/usr/bin/env", fileName: "env", stem: "env", ext: "", parent: "/usr/bin"},
		{name: "dotfile", raw: "~/.bashrc", fileName: ".bashrc", stem: ".bashrc", ext: "", parent: "/home/rustdevuser"},
		{name: "double extension", raw: "dist/archive.tar.gz", fileName: "archive.tar.gz", stem: "archive.tar", ext: "gz", parent: "dist"},
		{name: "trailing slash", raw: "foo/bar/", fileName: "bar", stem: "bar", ext: "", parent: "foo"},
		{name: "top level", raw: "/etc", fileName: "etc", stem: "etc", ext: "", parent: "/"},
		{name: "temp", raw: "/tmp/out.log", fileName: "out.log", stem: "out", ext: "log", parent: "/var/tmp"},
		{name: "mounted drive", raw: `c:\x\y.md`, fileName: "y.md", stem: "y", ext: "md", parent: "/mnt/c/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(tt.raw)

			name, err := m.FileName(p)
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, name)

			stem, err := m.FileStem(p)
			require.NoError(t, err)
			assert.Equal(t, tt.stem, stem)

			ext, err := m.Extension(p)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, ext)

			parent, err := m.Parent(p)
			require.NoError(t, err)
			assert.Equal(t, tt.parent, parent.String())
		})
	}
}

func TestComponentsWindows(t *testing.T) {
	m := windowsMaterializer()

	tests := []struct {
		name     string
		raw      string
		fileName string
		parent   string
	}{
		{name: "drive path", raw: "/mnt/c/Users/file.txt", fileName: "file.txt", parent: "/mnt/c/Users"},
		{name: "file at drive root", raw: "c:/x", fileName: "x", parent: "/mnt/c/"},
		{name: "home", raw: "~/docs/a.md", fileName: "a.md", parent: "/mnt/c/Users/me/docs"},
		{name: "relative", raw: `docs\a.md`, fileName: "a.md", parent: "docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(tt.raw)

			name, err := m.FileName(p)
			require.NoError(t, err)
			assert.Equal(t, tt.fileName, name)

			parent, err := m.Parent(p)
			require.NoError(t, err)
			assert.Equal(t, tt.parent, parent.String())
		})
	}
}

func TestComponentsErrors(t *testing.T) {
	tests := []struct {
		name string
		m    *Materializer
		raw  string
	}{
		{name: "empty", m: posixMaterializer(), raw: ""},
		{name: "root", m: posixMaterializer(), raw: "/"},
		{name: "bare drive on windows", m: windowsMaterializer(), raw: "c:"},
		{name: "drive root on windows", m: windowsMaterializer(), raw: `c:\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(tt.raw)

			_, err := tt.m.FileName(p)
			requireCode(t, err, errors.ErrNoFileName)

			_, err = tt.m.FileStem(p)
			requireCode(t, err, errors.ErrNoFileName)

			_, err = tt.m.Extension(p)
			requireCode(t, err, errors.ErrNoFileName)

			_, err = tt.m.Parent(p)
			requireCode(t, err, errors.ErrNoParent)
			assert.Equal(t, p.String(), errors.GetPath(err))
		})
	}
}

func TestSplitExtension(t *testing.T) {
	tests := []struct {
		name   string
		stem   string
		ext    string
		hasExt bool
	}{
		{"file.txt", "file", "txt", true},
		{"file", "file", "", false},
		{".hidden", ".hidden", "", false},
		{".hidden.txt", ".hidden", "txt", true},
		{"a.b.c", "a.b", "c", true},
		{"..c", ".", "c", true},
		{"", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext, hasExt := splitExtension(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
			assert.Equal(t, tt.hasExt, hasExt)
		})
	}
}

func TestPathComponentMethods(t *testing.T) {
	p := MustNew("docs/readme.md")

	name, err := p.FileName()
	require.NoError(t, err)
	assert.Equal(t, "readme.md", name)

	stem, err := p.FileStem()
	require.NoError(t, err)
	assert.Equal(t, "readme", stem)

	ext, err := p.Extension()
	require.NoError(t, err)
	assert.Equal(t, "md", ext)

	parent, err := p.Parent()
	require.NoError(t, err)
	assert.Equal(t, "docs", parent.String())
}
