package manifest

import (
	"regexp"
	"strings"
)

// =============================================================================
// Line Classification
// =============================================================================

// LineClass is the structural category of a single manifest line.
// Classification replaces inline pattern checks in the locator so the
// block-boundary rules can be tested in isolation.
type LineClass int

const (
	// ClassBlank is a line that is empty or whitespace-only.
	ClassBlank LineClass = iota
	// ClassComment is a line whose first non-space character is '#'.
	ClassComment
	// ClassSequenceItem is a "- value" entry of a block-style sequence.
	ClassSequenceItem
	// ClassKey is a "key:" or "key: value" mapping entry.
	ClassKey
	// ClassOther is any other content line (continuation scalars etc).
	ClassOther
)

// LineInfo is the classification of one line.
type LineInfo struct {
	Class LineClass
	// Indent is the number of leading spaces. Meaningless for ClassBlank.
	Indent int
}

// keyLineRegex matches a block-style mapping entry: optional indentation,
// a plain scalar key, a colon, then end-of-line or a space-separated value.
var keyLineRegex = regexp.MustCompile(`^( *)([A-Za-z_][A-Za-z0-9_.-]*):( .*)?$`)

// Classify categorizes a single raw line.
func Classify(line string) LineInfo {
	trimmed := strings.TrimSpace(line)
	indent := leadingSpaces(line)

	switch {
	case trimmed == "":
		return LineInfo{Class: ClassBlank}
	case strings.HasPrefix(trimmed, "#"):
		return LineInfo{Class: ClassComment, Indent: indent}
	case trimmed == "-" || strings.HasPrefix(trimmed, "- "):
		return LineInfo{Class: ClassSequenceItem, Indent: indent}
	case keyLineRegex.MatchString(line):
		return LineInfo{Class: ClassKey, Indent: indent}
	default:
		return LineInfo{Class: ClassOther, Indent: indent}
	}
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
