package manifest

import "strings"

// =============================================================================
// Document
// =============================================================================

// Document is an ordered sequence of manifest lines. Documents are values:
// every edit produces a new Document and leaves the receiver untouched,
// which keeps transformations composable and testable.
type Document struct {
	lines []string
}

// ParseDocument splits raw manifest content into a Document.
// String is its exact inverse: ParseDocument(s).String() == s for any s.
func ParseDocument(content string) Document {
	return Document{lines: strings.Split(content, "\n")}
}

// NewDocument builds a Document from individual lines (without newlines).
func NewDocument(lines []string) Document {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Document{lines: copied}
}

// String reassembles the document content.
func (d Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i (no trailing newline).
func (d Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of all lines.
func (d Document) Lines() []string {
	copied := make([]string, len(d.lines))
	copy(copied, d.lines)
	return copied
}

// Equal reports whether two documents have byte-identical content.
func (d Document) Equal(other Document) bool {
	if len(d.lines) != len(other.lines) {
		return false
	}
	for i := range d.lines {
		if d.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

// InsertAfter returns a new Document with the given lines inserted
// immediately after line index i. The receiver is not modified.
func (d Document) InsertAfter(i int, insert []string) Document {
	out := make([]string, 0, len(d.lines)+len(insert))
	out = append(out, d.lines[:i+1]...)
	out = append(out, insert...)
	out = append(out, d.lines[i+1:]...)
	return Document{lines: out}
}

// Splice returns a new Document with the half-open line range [start, end)
// replaced by the given lines. Everything before start and everything from
// end onward is carried over unchanged.
func (d Document) Splice(start, end int, replacement []string) Document {
	out := make([]string, 0, len(d.lines)-(end-start)+len(replacement))
	out = append(out, d.lines[:start]...)
	out = append(out, replacement...)
	out = append(out, d.lines[end:]...)
	return Document{lines: out}
}
