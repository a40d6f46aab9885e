package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workerTemplate mirrors the production template shape: a blank separator
// line, a name substitution point, and a device selector substitution
// point.
const workerTemplate = "\n" +
	"  worker_%[1]d:\n" +
	"    image: provernet/prover-worker:latest\n" +
	"    environment:\n" +
	"      - CUDA_VISIBLE_DEVICES=%[1]d"

const expandAnchor = "CUDA_VISIBLE_DEVICES=0"

// =============================================================================
// ExpandWorkers Tests
// =============================================================================

func TestExpandWorkers_ZeroAndOneAreNoOps(t *testing.T) {
	doc := ParseDocument(sampleManifest)

	for _, count := range []int{0, 1} {
		out, err := ExpandWorkers(doc, expandAnchor, workerTemplate, count)
		require.NoError(t, err)
		assert.True(t, out.Equal(doc), "deviceCount=%d must not modify the document", count)
	}
}

func TestExpandWorkers_NoOpSkipsAnchorLookup(t *testing.T) {
	// A single-device manifest without the anchor must still succeed:
	// the short-circuit comes before the lookup.
	doc := ParseDocument("services:\n  web:\n    image: nginx\n")
	out, err := ExpandWorkers(doc, expandAnchor, workerTemplate, 1)
	require.NoError(t, err)
	assert.True(t, out.Equal(doc))
}

func TestExpandWorkers_InsertsAfterAnchor(t *testing.T) {
	doc := ParseDocument(sampleManifest)

	out, err := ExpandWorkers(doc, expandAnchor, workerTemplate, 3)
	require.NoError(t, err)

	anchorLine, err := FindAnchor(doc, expandAnchor)
	require.NoError(t, err)

	// Prefix through the anchor line is untouched.
	for i := 0; i <= anchorLine; i++ {
		assert.Equal(t, doc.Line(i), out.Line(i))
	}

	// The payload follows immediately: worker_1 then worker_2.
	perBlock := WorkerBlockLen(workerTemplate)
	assert.Equal(t, "  worker_1:", out.Line(anchorLine+2))
	assert.Equal(t, "  worker_2:", out.Line(anchorLine+2+perBlock))

	// Suffix after the payload is untouched.
	inserted := 2 * perBlock
	for i := anchorLine + 1; i < doc.Len(); i++ {
		assert.Equal(t, doc.Line(i), out.Line(i+inserted))
	}
}

func TestExpandWorkers_LineCount(t *testing.T) {
	doc := ParseDocument(sampleManifest)
	perBlock := WorkerBlockLen(workerTemplate)

	for _, count := range []int{2, 3, 4, 8} {
		out, err := ExpandWorkers(doc, expandAnchor, workerTemplate, count)
		require.NoError(t, err)
		assert.Equal(t, doc.Len()+(count-1)*perBlock, out.Len(), "deviceCount=%d", count)
	}
}

func TestExpandWorkers_SubstitutesBothPoints(t *testing.T) {
	doc := ParseDocument(sampleManifest)

	out, err := ExpandWorkers(doc, expandAnchor, workerTemplate, 4)
	require.NoError(t, err)

	content := out.String()
	for i := 1; i <= 3; i++ {
		block := strings.Join(RenderWorkerBlock(workerTemplate, i), "\n")
		assert.Contains(t, content, block)
	}
}

func TestExpandWorkers_AnchorMissing(t *testing.T) {
	doc := ParseDocument("services:\n  web:\n    image: nginx\n")
	_, err := ExpandWorkers(doc, expandAnchor, workerTemplate, 2)
	assert.ErrorIs(t, err, ErrAnchorNotFound)
}

func TestExpandWorkers_DoesNotMutateInput(t *testing.T) {
	doc := ParseDocument(sampleManifest)
	before := doc.String()

	_, err := ExpandWorkers(doc, expandAnchor, workerTemplate, 5)
	require.NoError(t, err)
	assert.Equal(t, before, doc.String())
}

// =============================================================================
// RenderWorkerBlock Tests
// =============================================================================

func TestRenderWorkerBlock(t *testing.T) {
	lines := RenderWorkerBlock(workerTemplate, 7)
	assert.Equal(t, []string{
		"",
		"  worker_7:",
		"    image: provernet/prover-worker:latest",
		"    environment:",
		"      - CUDA_VISIBLE_DEVICES=7",
	}, lines)
}
