// Package topology generates the multi-device deployment topology: it
// replicates the reference worker block per accelerator device and
// regenerates the prover's dependency list to match. Pure functions only;
// the imperative shell (internal/shell/deploy) handles backup and
// write-back.
package topology

import (
	"errors"

	"github.com/provernet/rigctl/internal/core/manifest"
)

// =============================================================================
// Options & Result Types
// =============================================================================

// ErrInvalidDeviceCount means the device count was negative. Zero is
// valid ("no devices", generation is a no-op).
var ErrInvalidDeviceCount = errors.New("device count must not be negative")

// DefaultWorkerTemplate is the replicated GPU worker service block. The
// %[1]d verb marks the two per-instance points: the worker's own name and
// its device selector. The leading blank line separates consecutive
// blocks.
const DefaultWorkerTemplate = "\n" +
	"  worker_%[1]d:\n" +
	"    image: provernet/prover-worker:latest\n" +
	"    restart: unless-stopped\n" +
	"    environment:\n" +
	"      - CUDA_VISIBLE_DEVICES=%[1]d"

// DefaultAnchor is the last line of the reference worker block
// (worker_0); generated blocks are inserted immediately after it.
const DefaultAnchor = "CUDA_VISIBLE_DEVICES=0"

// Options parameterizes generation. The defaults are calibrated to the
// prover rig manifest shipped with the rig images.
type Options struct {
	// Anchor is the substring identifying the reference worker block's
	// final line.
	Anchor string

	// WorkerTemplate renders one worker block per device index.
	WorkerTemplate string

	// ServiceKey names the dependent service whose depends_on list is
	// regenerated.
	ServiceKey string

	// ServiceIndent is the indentation depth of the service key line.
	ServiceIndent int

	// DependencyHead is the fixed first entry of the regenerated list.
	DependencyHead string

	// FixedTail is the constant list of shared infrastructure services
	// appended after all per-device workers, in this exact order.
	FixedTail []string
}

// DefaultOptions returns the rig manifest calibration.
func DefaultOptions() Options {
	return Options{
		Anchor:         DefaultAnchor,
		WorkerTemplate: DefaultWorkerTemplate,
		ServiceKey:     "prover",
		ServiceIndent:  2,
		DependencyHead: "rest_api",
		FixedTail: []string{
			"exec_agent0",
			"exec_agent1",
			"aux_agent",
			"snark_agent",
			"redis",
			"postgres",
		},
	}
}

// Result is the discriminated outcome of a generation run. Callers key
// the backup/write-back decision off Changed, never off filesystem state.
type Result struct {
	// Changed is false when no modification was needed (deviceCount <= 1);
	// Doc is then the input document itself, byte-identical.
	Changed bool

	// Doc is the (possibly new) document.
	Doc manifest.Document
}

// =============================================================================
// Generation Pipeline
// =============================================================================

// Generate runs the expansion and the dependency rewrite as one pipeline.
// The first failure aborts the run without attempting the second step, so
// a caller can never observe a half-transformed document.
//
// Re-running Generate on its own output duplicates the worker blocks
// again: the anchor-based insertion is not idempotent. This is a known
// limitation; callers run generation exactly once per fresh manifest.
func Generate(doc manifest.Document, deviceCount int, opts Options) (Result, error) {
	if deviceCount < 0 {
		return Result{}, ErrInvalidDeviceCount
	}
	if deviceCount <= 1 {
		return Result{Changed: false, Doc: doc}, nil
	}

	expanded, err := manifest.ExpandWorkers(doc, opts.Anchor, opts.WorkerTemplate, deviceCount)
	if err != nil {
		return Result{}, err
	}

	rewritten, err := manifest.RewriteDependencies(expanded, opts.ServiceKey, opts.ServiceIndent, deviceCount, opts.DependencyHead, opts.FixedTail)
	if err != nil {
		return Result{}, err
	}

	return Result{Changed: true, Doc: rewritten}, nil
}
