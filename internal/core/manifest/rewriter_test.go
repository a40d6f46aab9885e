package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rewriteTail = []string{"exec_agent0", "exec_agent1", "aux_agent", "snark_agent", "redis", "postgres"}

// =============================================================================
// DependencyNames Tests
// =============================================================================

func TestDependencyNames_OrderInvariant(t *testing.T) {
	for _, count := range []int{2, 3, 4, 8} {
		names := DependencyNames(count, "rest_api", rewriteTail)

		want := []string{"rest_api"}
		for i := 0; i < count; i++ {
			want = append(want, WorkerName(i))
		}
		want = append(want, rewriteTail...)

		assert.Equal(t, want, names, "deviceCount=%d", count)
	}
}

func TestDependencyNames_NoDuplicates(t *testing.T) {
	names := DependencyNames(8, "rest_api", rewriteTail)
	seen := make(map[string]bool)
	for _, name := range names {
		assert.False(t, seen[name], "duplicate entry %s", name)
		seen[name] = true
	}
}

// =============================================================================
// WorkerName Tests
// =============================================================================

func TestWorkerName(t *testing.T) {
	assert.Equal(t, "worker_0", WorkerName(0))
	assert.Equal(t, "worker_12", WorkerName(12))
}

// =============================================================================
// RewriteDependencies Tests
// =============================================================================

func TestRewriteDependencies_ReplacesListInPlace(t *testing.T) {
	doc := ParseDocument(sampleManifest)

	out, err := RewriteDependencies(doc, "prover", 2, 3, "rest_api", rewriteTail)
	require.NoError(t, err)

	depends, err := FindKeyBlockWithin(out, mustServiceBlock(t, out, "prover"), DependsOnKey, 4)
	require.NoError(t, err)

	want := []string{
		"      - rest_api",
		"      - worker_0",
		"      - worker_1",
		"      - worker_2",
		"      - exec_agent0",
		"      - exec_agent1",
		"      - aux_agent",
		"      - snark_agent",
		"      - redis",
		"      - postgres",
	}
	assert.Equal(t, len(want), depends.Len())
	for i, line := range want {
		assert.Equal(t, line, out.Line(depends.Start+i))
	}
}

func TestRewriteDependencies_OutsideLinesUntouched(t *testing.T) {
	doc := ParseDocument(sampleManifest)

	out, err := RewriteDependencies(doc, "prover", 2, 2, "rest_api", rewriteTail)
	require.NoError(t, err)

	oldItems, err := FindKeyBlockWithin(doc, mustServiceBlock(t, doc, "prover"), DependsOnKey, 4)
	require.NoError(t, err)

	// Everything before the old item range is byte-identical.
	for i := 0; i < oldItems.Start; i++ {
		assert.Equal(t, doc.Line(i), out.Line(i))
	}
	// Everything from the old range's end onward is byte-identical,
	// shifted by the growth of the list.
	shift := out.Len() - doc.Len()
	for i := oldItems.End; i < doc.Len(); i++ {
		assert.Equal(t, doc.Line(i), out.Line(i+shift))
	}
}

func TestRewriteDependencies_ServiceMissing(t *testing.T) {
	doc := ParseDocument(sampleManifest)
	_, err := RewriteDependencies(doc, "ghost", 2, 2, "rest_api", rewriteTail)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestRewriteDependencies_DependencyBlockMissing(t *testing.T) {
	// rest_api exists but has no depends_on list.
	doc := ParseDocument(sampleManifest)
	_, err := RewriteDependencies(doc, "rest_api", 2, 2, "rest_api", rewriteTail)
	assert.ErrorIs(t, err, ErrDependencyBlockNotFound)
}

func mustServiceBlock(t *testing.T, doc Document, key string) Block {
	t.Helper()
	block, err := FindKeyBlock(doc, key, 2)
	require.NoError(t, err)
	return block
}
