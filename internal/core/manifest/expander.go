package manifest

import (
	"fmt"
	"strings"
)

// =============================================================================
// Worker Block Expansion
// =============================================================================

// ExpandWorkers replicates the reference worker block once per additional
// device. The anchor substring identifies the last line of the reference
// block; the generated blocks for indices 1..deviceCount-1 are inserted
// immediately after it, so the replicas follow the reference in index
// order.
//
// template is a fmt string rendering one full worker block for an index;
// it must reference the index with %[1]d at its substitution points (the
// worker's name and its device selector) and should begin with a blank
// line, which becomes the separator between consecutive blocks.
//
// For deviceCount <= 1 the input document is returned unchanged. This is
// an explicit short-circuit: a single-device rig keeps its manifest
// exactly as written.
func ExpandWorkers(doc Document, anchor, template string, deviceCount int) (Document, error) {
	if deviceCount <= 1 {
		return doc, nil
	}

	anchorLine, err := FindAnchor(doc, anchor)
	if err != nil {
		return Document{}, err
	}

	var payload []string
	for i := 1; i < deviceCount; i++ {
		payload = append(payload, RenderWorkerBlock(template, i)...)
	}

	return doc.InsertAfter(anchorLine, payload), nil
}

// RenderWorkerBlock renders one worker block for a device index and
// returns its lines.
func RenderWorkerBlock(template string, index int) []string {
	return strings.Split(fmt.Sprintf(template, index), "\n")
}

// WorkerBlockLen returns the number of lines one rendered worker block
// occupies. Useful for line-count accounting around an expansion.
func WorkerBlockLen(template string) int {
	return len(RenderWorkerBlock(template, 0))
}
