// Package capacity derives prover tuning parameters from the number of
// accelerator devices. Pure functions only.
package capacity

// =============================================================================
// Capacity Planning
// =============================================================================

// Plan maps a device count to the two tuning parameters consumed by the
// prover's environment file: the maximum number of concurrently running
// proofs and the peak proof rate.
//
// The 1-3 device rows are calibration constants measured on reference
// rigs, not instances of the general formula; keep them as distinct cases
// even though the current constants coincide with 2n/100n.
func Plan(deviceCount int) (maxConcurrent, peakRate int) {
	switch deviceCount {
	case 1:
		return 2, 100
	case 2:
		return 4, 200
	case 3:
		return 6, 300
	default:
		return 2 * deviceCount, 100 * deviceCount
	}
}
