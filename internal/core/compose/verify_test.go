package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Verify Tests
// =============================================================================

func TestVerify_ValidManifest(t *testing.T) {
	content := `services:
  rest_api:
    image: provernet/rest-api:latest
  worker_0:
    image: provernet/prover-worker:latest
  prover:
    image: provernet/prover:latest
    depends_on:
      - rest_api
      - worker_0
`
	assert.NoError(t, Verify(content))
}

func TestVerify_GeneratedTopologyShape(t *testing.T) {
	// The shape the generator emits: replicated workers plus a
	// regenerated dependency list.
	content := `services:
  rest_api:
    image: provernet/rest-api:latest

  worker_0:
    image: provernet/prover-worker:latest
    environment:
      - CUDA_VISIBLE_DEVICES=0

  worker_1:
    image: provernet/prover-worker:latest
    environment:
      - CUDA_VISIBLE_DEVICES=1

  prover:
    image: provernet/prover:latest
    depends_on:
      - rest_api
      - worker_0
      - worker_1
      - redis

  redis:
    image: redis:7
`
	assert.NoError(t, Verify(content))
}

func TestVerify_Empty(t *testing.T) {
	assert.ErrorIs(t, Verify(""), ErrEmptyManifest)
	assert.ErrorIs(t, Verify("   \n  "), ErrEmptyManifest)
}

func TestVerify_InvalidYAML(t *testing.T) {
	err := Verify("services:\n  web:\n   bad\n  indentation: [")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestVerify_NoServices(t *testing.T) {
	err := Verify("services: {}\n")
	assert.ErrorIs(t, err, ErrNoServices)
}

func TestVerify_UnknownDependency(t *testing.T) {
	content := `services:
  prover:
    image: provernet/prover:latest
    depends_on:
      - ghost
`
	err := Verify(content)
	assert.ErrorIs(t, err, ErrUnknownDependency)

	var vErr *VerifyError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "services.prover.depends_on", vErr.Field)
}

func TestVerify_CircularDependency(t *testing.T) {
	content := `services:
  a:
    image: img
    depends_on:
      - b
  b:
    image: img
    depends_on:
      - a
`
	assert.ErrorIs(t, Verify(content), ErrCircularDependency)
}

func TestVerify_SelfDependency(t *testing.T) {
	content := `services:
  a:
    image: img
    depends_on:
      - a
`
	assert.ErrorIs(t, Verify(content), ErrCircularDependency)
}
