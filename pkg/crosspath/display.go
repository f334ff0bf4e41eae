package crosspath

import (
	"unicode/utf8"

	"github.com/arthur-debert/crosspath/pkg/errors"
)

const ellipsis = "..."

// ShortString shortens p for display. When the canonical form has more than
// maxChars characters, the middle is replaced by "..." and maxChars/2-2
// characters are kept at each end. Characters are counted as runes so a
// multi-byte character is never split.
func (p Path) ShortString(maxChars int) (string, error) {
	total := utf8.RuneCountInString(p.s)
	if total <= maxChars {
		return p.s, nil
	}

	keep := maxChars/2 - 2
	if keep < 0 {
		return "", errors.InvalidPath(errors.ErrCharacterIndexing, p.s,
			"cannot shorten path to the requested width").
			WithDetail("max_chars", maxChars)
	}

	runes := []rune(p.s)
	return string(runes[:keep]) + ellipsis + string(runes[total-keep:]), nil
}
