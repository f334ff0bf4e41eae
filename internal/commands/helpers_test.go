package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/env"
	"github.com/arthur-debert/crosspath/pkg/filesystem"
)

// newTestOps returns FileOps over an in-memory filesystem with "~" at
// /home/test
func newTestOps() *crosspath.FileOps {
	m := crosspath.NewMaterializer(env.Static{Home: "/home/test", Temp: "/var/tmp"}, "linux")
	return crosspath.NewFileOps(filesystem.NewMemory(), m)
}

// isolate keeps configuration and log files of a test run out of the
// user's directories
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	return dir
}

// run executes the CLI with args and returns everything written to its
// output
func run(t *testing.T, ops *crosspath.FileOps, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(ops)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// mustRun is run for commands that are expected to succeed
func mustRun(t *testing.T, ops *crosspath.FileOps, args ...string) string {
	t.Helper()
	out, err := run(t, ops, "", args...)
	require.NoError(t, err, "crosspath %s", strings.Join(args, " "))
	return out
}
