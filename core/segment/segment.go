// core/segment/segment.go
package segment

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Mode selects the comparison unit strings are split into before the
// distance computation.
type Mode int

const (
	// CodePoint treats each Unicode scalar value as one unit.
	CodePoint Mode = iota
	// Grapheme treats each extended grapheme cluster as one unit,
	// following the default Unicode boundary rules with no locale
	// tailoring (combining marks, emoji ZWJ sequences, etc.).
	Grapheme
)

func (m Mode) String() string {
	switch m {
	case CodePoint:
		return "codepoint"
	case Grapheme:
		return "grapheme"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a CLI spelling to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "codepoint":
		return CodePoint, nil
	case "grapheme":
		return Grapheme, nil
	}
	return CodePoint, fmt.Errorf("invalid segmentation mode %q (want codepoint | grapheme)", s)
}

// Runes splits s into Unicode scalar values. Invalid UTF-8 bytes decode
// to U+FFFD, so two broken sequences compare equal byte-for-byte.
func Runes(s string) []rune {
	if s == "" {
		return nil
	}
	return []rune(s)
}

// Graphemes splits s into extended grapheme clusters. A cluster keeps
// its original byte spelling: precomposed "ä" and decomposed "ä"
// are one cluster each but remain distinct units (no normalization).
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
