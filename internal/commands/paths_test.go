package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

func TestPathCommands(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"normalize windows path", []string{"normalize", `C:\Users\me`}, "/mnt/c/Users/me\n"},
		{"normalize trims", []string{"normalize", "  ~/docs/"}, "~/docs/\n"},
		{"native posix home", []string{"native", "~/docs", "--target", "posix"}, "/home/test/docs\n"},
		{"native windows drive", []string{"native", "/mnt/c/Users", "-t", "windows"}, "c:/Users\n"},
		{"native current", []string{"native", "/tmp/build"}, "/var/tmp/build\n"},
		{"join", []string{"join", "~/src", "crosspath/go.mod"}, "~/src/crosspath/go.mod\n"},
		{"short with max", []string{"short", "/a/b/c/d/e/f/g/h", "--max", "8"}, "/a.../h\n"},
		{"short within default width", []string{"short", "/a/b/c"}, "/a/b/c\n"},
		{"ext", []string{"ext", "~/notes/todo.txt", "md"}, "~/notes/todo.md\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustRun(t, newTestOps(), tt.args...))
		})
	}
}

func TestPathCommandErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"invalid character", []string{"normalize", "a|b"}, errors.ErrInvalidCharacter},
		{"traversal", []string{"normalize", "a/../b"}, errors.ErrReservedWordOrTraversal},
		{"unknown target", []string{"native", "a", "--target", "plan9"}, errors.ErrInvalidInput},
		{"join traversal", []string{"join", "~/src", "../etc"}, errors.ErrReservedWordOrTraversal},
		{"too narrow", []string{"short", "/a/b/c/d/e/f/g/h", "--max", "2"}, errors.ErrCharacterIndexing},
		{"ext of root", []string{"ext", "/", "md"}, errors.ErrNoFileName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newTestOps(), "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), "%v", err)
		})
	}
}

func TestShortUsesConfiguredWidth(t *testing.T) {
	isolate(t)
	t.Setenv("CROSSPATH_DISPLAY_MAX_CHARS", "8")

	assert.Equal(t, "/a.../h\n", mustRun(t, newTestOps(), "short", "/a/b/c/d/e/f/g/h"))
}

func TestInfoCommand(t *testing.T) {
	isolate(t)
	ops := newTestOps()
	mustRun(t, ops, "write", "~/notes/todo.txt", "milk")

	out := mustRun(t, ops, "info", "~/notes/todo.txt", "--format", "json")

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "~/notes/todo.txt", report["canonical"])
	assert.Equal(t, "/home/test/notes/todo.txt", report["posix"])
	assert.Equal(t, "todo.txt", report["fileName"])
	assert.Equal(t, "todo", report["fileStem"])
	assert.Equal(t, "txt", report["extension"])
	assert.Equal(t, "/home/test/notes", report["parent"])
	assert.Equal(t, true, report["exists"])
	assert.Equal(t, true, report["isFile"])
	assert.Equal(t, false, report["isDir"])
	assert.Equal(t, true, report["absolute"])
}

func TestInfoCommandText(t *testing.T) {
	isolate(t)

	out := mustRun(t, newTestOps(), "info", "/")
	assert.Contains(t, out, "canonical:")
	assert.Contains(t, out, "exists:")
	assert.NotContains(t, out, "file name:")
}
