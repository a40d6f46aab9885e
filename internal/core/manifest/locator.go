package manifest

import "strings"

// =============================================================================
// Block Locating
// =============================================================================

// Block is a contiguous half-open line range [Start, End) holding the value
// of one structural element. Key is the index of the line that introduced
// the block; Start is always Key+1. A Block is only valid against the
// Document it was computed from: recompute after every edit.
type Block struct {
	Key   int
	Start int
	End   int
}

// Len returns the number of lines inside the block (excluding the key line).
func (b Block) Len() int {
	return b.End - b.Start
}

// FindAnchor returns the index of the first line containing the given
// substring, searched top-down. First match wins. Returns
// ErrAnchorNotFound if no line matches; callers treat this as a hard
// error, there is no fallback.
func FindAnchor(doc Document, substring string) (int, error) {
	for i := 0; i < doc.Len(); i++ {
		if strings.Contains(doc.Line(i), substring) {
			return i, nil
		}
	}
	return 0, NewLocateError(substring, "no line contains anchor", ErrAnchorNotFound)
}

// FindKeyBlock locates a "key:" mapping entry at exactly the given
// indentation depth and returns the block of lines forming its value.
// First match wins. Returns ErrKeyNotFound if the key never matches.
func FindKeyBlock(doc Document, key string, indent int) (Block, error) {
	return findKeyBlock(doc, key, indent, 0, doc.Len())
}

// FindKeyBlockWithin runs the same scan restricted to an outer block's
// span, so a nested key (e.g. depends_on inside an already-located
// service) is found without matching an unrelated service's key. Returned
// indices are absolute document indices.
func FindKeyBlockWithin(doc Document, outer Block, key string, indent int) (Block, error) {
	return findKeyBlock(doc, key, indent, outer.Start, outer.End)
}

func findKeyBlock(doc Document, key string, indent int, lo, hi int) (Block, error) {
	keyLine := -1
	for i := lo; i < hi; i++ {
		info := Classify(doc.Line(i))
		if info.Class == ClassKey && info.Indent == indent && keyName(doc.Line(i)) == key {
			keyLine = i
			break
		}
	}
	if keyLine < 0 {
		return Block{}, NewLocateError(key, "no key at expected depth", ErrKeyNotFound)
	}

	start := keyLine + 1
	last := hi - 1
scan:
	for i := start; i < hi; i++ {
		info := Classify(doc.Line(i))
		switch {
		case info.Class == ClassBlank, info.Class == ClassComment:
			// stays inside the block
		case info.Indent > indent:
			// deeper item, nested key or continuation: still inside
		default:
			// key (or any content) at the same or shallower depth opens
			// the next structural element; retreat off its first line so
			// the range can later be used as a deletion target.
			last = i - 1
			break scan
		}
	}

	return Block{Key: keyLine, Start: start, End: last + 1}, nil
}

// keyName extracts the scalar key from a ClassKey line.
func keyName(line string) string {
	m := keyLineRegex.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[2]
}
