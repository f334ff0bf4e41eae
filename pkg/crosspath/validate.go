package crosspath

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

// forbiddenChars are rejected anywhere in a path. The colon is handled
// separately because a drive prefix may legitimately contain one.
const forbiddenChars = `<>"|?*`

// reservedComponents are compared against lowercased path components
var reservedComponents = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
	".": {}, "..": {},
}

const drivePrefix = "/mnt/"

// normalize turns raw input into the canonical form. Each check is a hard
// failure; nothing is repaired except separators and the drive prefix.
func normalize(raw string) (string, error) {
	if strings.ContainsAny(raw, forbiddenChars) {
		return "", errors.InvalidPath(errors.ErrInvalidCharacter, raw,
			"path contains one of the forbidden characters "+forbiddenChars)
	}

	for i := 0; i < len(raw); i++ {
		if isControl(raw[i]) {
			return "", errors.InvalidPath(errors.ErrForbiddenAsciiControl, raw,
				"path contains an ASCII control character")
		}
	}

	if !utf8.ValidString(raw) {
		return "", errors.InvalidPath(errors.ErrInvalidCharacter, raw,
			"path is not valid UTF-8")
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasSuffix(raw, " ") || strings.HasSuffix(trimmed, ".") {
		return "", errors.InvalidPath(errors.ErrMustNotEndWithSpaceOrDot, raw,
			"path must not end with a space or a dot")
	}

	s := strings.ReplaceAll(trimmed, `\`, "/")

	if name, ok := reservedComponent(s); ok {
		return "", errors.InvalidPath(errors.ErrReservedWordOrTraversal, s,
			"path contains the reserved component "+name)
	}

	s = rewriteDrive(s)

	if strings.Contains(s, ":") {
		return "", errors.InvalidPath(errors.ErrInvalidCharacter, s,
			"path contains a colon outside the drive prefix")
	}

	if strings.Contains(s, "//") {
		return "", errors.InvalidPath(errors.ErrInvalidCharacter, s,
			"path contains an empty component")
	}

	return s, nil
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// reservedComponent returns the first component of s that is a Windows
// device name or a traversal component.
func reservedComponent(s string) (string, bool) {
	for _, component := range strings.Split(s, "/") {
		if component == "" {
			continue
		}
		if _, ok := reservedComponents[strings.ToLower(component)]; ok {
			return component, true
		}
	}
	return "", false
}

// rewriteDrive maps "C:rest" to "/mnt/c/rest"
func rewriteDrive(s string) string {
	if len(s) < 2 || !isASCIILetter(s[0]) || s[1] != ':' {
		return s
	}
	rest := s[2:]
	if rest != "" && rest[0] != '/' {
		rest = "/" + rest
	}
	return drivePrefix + string(toLowerASCII(s[0])) + rest
}
