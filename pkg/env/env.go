// Package env provides the host environment lookups used when a canonical
// path is materialized: the user's home directory for "~" and the platform
// temporary directory for "/tmp".
package env

import (
	"os"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/crosspath/pkg/types"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// osEnv implements types.Environment using the running OS
type osEnv struct{}

// NewOS returns the environment of the running process
func NewOS() types.Environment {
	return osEnv{}
}

// HomeDir resolves the home directory with the same fallbacks as the rest of
// the toolchain: os.UserHomeDir, then $HOME, then the xdg package's view.
func (osEnv) HomeDir() (string, bool) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, true
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, true
	}
	if xdg.Home != "" {
		return xdg.Home, true
	}
	return "", false
}

func (osEnv) TempDir() string {
	return os.TempDir()
}

// Static is a fixed environment. An empty Home means no home directory is
// resolvable.
type Static struct {
	Home string
	Temp string
}

var _ types.Environment = Static{}

func (s Static) HomeDir() (string, bool) {
	return s.Home, s.Home != ""
}

func (s Static) TempDir() string {
	return s.Temp
}
