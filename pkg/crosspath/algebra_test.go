package crosspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

func TestJoinRelative(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		addition string
		want     string
	}{
		{name: "simple", base: "foo", addition: "bar", want: "foo/bar"},
		{name: "base with trailing slash", base: "foo/", addition: "bar", want: "foo/bar"},
		{name: "addition with leading slash", base: "foo", addition: "/bar", want: "foo/bar"},
		{name: "addition with backslashes", base: "~/projects", addition: `src\main.go`, want: "~/projects/src/main.go"},
		{name: "empty base", base: "", addition: "/bar", want: "bar"},
		{name: "root base", base: "/", addition: "etc", want: "/etc"},
		{name: "home base", base: "~", addition: "docs", want: "~/docs"},
		{name: "empty addition", base: "foo", addition: "", want: "foo/"},
		{name: "drive addition is nested", base: "foo", addition: `c:\x`, want: "foo/mnt/c/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.base).JoinRelative(tt.addition)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestJoinRelativeErrors(t *testing.T) {
	tests := []struct {
		name     string
		addition string
		code     errors.ErrorCode
	}{
		{name: "forbidden character", addition: "a|b", code: errors.ErrInvalidCharacter},
		{name: "traversal", addition: "../etc", code: errors.ErrReservedWordOrTraversal},
		{name: "trailing dot", addition: "name.", code: errors.ErrMustNotEndWithSpaceOrDot},
		{name: "control character", addition: "a\x01", code: errors.ErrForbiddenAsciiControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MustNew("base").JoinRelative(tt.addition)
			requireCode(t, err, tt.code)
		})
	}
}

func TestSlashHelpers(t *testing.T) {
	tests := []struct {
		raw       string
		trimStart string
		trimEnd   string
		addStart  string
		addEnd    string
	}{
		{raw: "/a/b/", trimStart: "a/b/", trimEnd: "/a/b", addStart: "/a/b/", addEnd: "/a/b/"},
		{raw: "a/b", trimStart: "a/b", trimEnd: "a/b", addStart: "/a/b", addEnd: "a/b/"},
		{raw: "/", trimStart: "", trimEnd: "", addStart: "/", addEnd: "/"},
		{raw: "", trimStart: "", trimEnd: "", addStart: "/", addEnd: "/"},
		{raw: "~/x", trimStart: "~/x", trimEnd: "~/x", addStart: "/~/x", addEnd: "~/x/"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p := MustNew(tt.raw)
			assert.Equal(t, tt.trimStart, p.TrimStartSlash().String())
			assert.Equal(t, tt.trimEnd, p.TrimEndSlash().String())
			assert.Equal(t, tt.addStart, p.AddStartSlash().String())
			assert.Equal(t, tt.addEnd, p.AddEndSlash().String())
		})
	}
}

func TestReplaceExtension(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ext  string
		want string
	}{
		{name: "replace", raw: "foo/bar.txt", ext: "md", want: "foo/bar.md"},
		{name: "leading dot on extension", raw: "foo/bar.txt", ext: ".md", want: "foo/bar.md"},
		{name: "remove", raw: "foo/bar.txt", ext: "", want: "foo/bar"},
		{name: "add", raw: "foo/bar", ext: "md", want: "foo/bar.md"},
		{name: "only the last extension", raw: "archive.tar.gz", ext: "zip", want: "archive.tar.zip"},
		{name: "dotfile", raw: "~/.bashrc", ext: "bak", want: "~/.bashrc.bak"},
		{name: "trailing slash", raw: "foo/", ext: "md", want: "foo.md"},
		{name: "drive", raw: `c:\x\a.txt`, ext: "log", want: "/mnt/c/x/a.log"},
		{name: "literal tilde component", raw: "foo/~", ext: "md", want: "foo/~.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.raw).ReplaceExtension(tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestReplaceExtensionErrors(t *testing.T) {
	for _, raw := range []string{"", "/", "~", "~/"} {
		t.Run(raw, func(t *testing.T) {
			_, err := MustNew(raw).ReplaceExtension("md")
			requireCode(t, err, errors.ErrNoFileName)
		})
	}

	_, err := MustNew("a.b").ReplaceExtension("c|d")
	requireCode(t, err, errors.ErrInvalidCharacter)
}
