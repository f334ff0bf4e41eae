package crosspath

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/env"
	"github.com/arthur-debert/crosspath/pkg/types"
)

const (
	homeToken = "~"
	tempToken = "/tmp"
)

// NativePath is a path in the syntax of a specific operating system
type NativePath string

func (n NativePath) String() string {
	return string(n)
}

// Target selects the operating system a Path is rendered for
type Target int

const (
	// TargetCurrent renders for the OS the Materializer was built for
	TargetCurrent Target = iota
	// TargetPosix renders Linux/macOS paths
	TargetPosix
	// TargetWindows renders Windows paths
	TargetWindows
)

// String returns the string representation of the target
func (t Target) String() string {
	switch t {
	case TargetCurrent:
		return "current"
	case TargetPosix:
		return "posix"
	case TargetWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// ParseTarget parses a target name
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "current", "":
		return TargetCurrent, nil
	case "posix", "nix", "linux", "unix", "darwin":
		return TargetPosix, nil
	case "windows", "win":
		return TargetWindows, nil
	default:
		return TargetCurrent, errors.Newf(errors.ErrInvalidInput, "unknown target: %s", s)
	}
}

// Materializer renders canonical paths into native paths
type Materializer struct {
	env  types.Environment
	goos string
}

// NewMaterializer creates a Materializer that resolves "~" and "/tmp" through
// e and treats goos as the current operating system.
func NewMaterializer(e types.Environment, goos string) *Materializer {
	return &Materializer{env: e, goos: goos}
}

var defaultMaterializer = NewMaterializer(env.NewOS(), runtime.GOOS)

// DefaultMaterializer returns the Materializer used by the Path methods: the
// OS environment and runtime.GOOS.
func DefaultMaterializer() *Materializer {
	return defaultMaterializer
}

// GOOS returns the operating system treated as current
func (m *Materializer) GOOS() string {
	return m.goos
}

// Render renders p for the given target
func (m *Materializer) Render(p Path, t Target) NativePath {
	switch t {
	case TargetWindows:
		return m.Windows(p)
	case TargetPosix:
		return m.Posix(p)
	default:
		return m.CurrentOS(p)
	}
}

// Windows renders p as a Windows path. Separators stay "/", which Windows
// accepts.
func (m *Materializer) Windows(p Path) NativePath {
	switch {
	case hasToken(p.s, homeToken):
		return NativePath(restoreDrive(m.expandHome(p.s)))
	case hasToken(p.s, tempToken):
		return NativePath(m.expandTemp(p.s))
	default:
		return NativePath(restoreDrive(p.s))
	}
}

// Posix renders p as a POSIX path
func (m *Materializer) Posix(p Path) NativePath {
	switch {
	case hasToken(p.s, homeToken):
		return NativePath(m.expandHome(p.s))
	case hasToken(p.s, tempToken):
		return NativePath(m.expandTemp(p.s))
	default:
		return NativePath(p.s)
	}
}

// CurrentOS renders p for the Materializer's operating system
func (m *Materializer) CurrentOS(p Path) NativePath {
	if m.isWindows() {
		return m.Windows(p)
	}
	return m.Posix(p)
}

func (m *Materializer) isWindows() bool {
	return m.goos == "windows"
}

// hasToken reports whether the canonical s starts with the segment token.
// Only the canonical form is checked, so a substituted directory that
// happens to start with "/tmp" is never expanded again.
func hasToken(s, token string) bool {
	return s == token || strings.HasPrefix(s, token+"/")
}

// expandHome replaces the leading "~" segment of s. Without a home
// directory the token is left in place.
func (m *Materializer) expandHome(s string) string {
	home, ok := m.env.HomeDir()
	if !ok {
		return s
	}
	return substitutePrefix(s, len(homeToken), home)
}

// expandTemp replaces the leading "/tmp" segment of s
func (m *Materializer) expandTemp(s string) string {
	temp := m.env.TempDir()
	if temp == "" {
		return s
	}
	return substitutePrefix(s, len(tempToken), temp)
}

// substitutePrefix replaces s[:n] with dir, dropping trailing separators of
// dir so the join never doubles them.
func substitutePrefix(s string, n int, dir string) string {
	rest := s[n:]
	if rest == "" {
		return dir
	}
	return strings.TrimRight(dir, `/\`) + rest
}

// restoreDrive maps "/mnt/c/rest" to "c:/rest"
func restoreDrive(s string) string {
	if !strings.HasPrefix(s, drivePrefix) {
		return s
	}
	rest := s[len(drivePrefix):]
	if rest == "" || !isASCIILetter(rest[0]) || (len(rest) > 1 && rest[1] != '/') {
		return s
	}
	return rest[:1] + ":" + rest[1:]
}

// ToWindows renders p as a Windows path using the OS environment
func (p Path) ToWindows() NativePath {
	return defaultMaterializer.Windows(p)
}

// ToPosix renders p as a POSIX path using the OS environment
func (p Path) ToPosix() NativePath {
	return defaultMaterializer.Posix(p)
}

// ToCurrentOS renders p for the running operating system
func (p Path) ToCurrentOS() NativePath {
	return defaultMaterializer.CurrentOS(p)
}
