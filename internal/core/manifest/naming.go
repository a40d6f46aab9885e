package manifest

import "fmt"

// =============================================================================
// Worker Naming
// =============================================================================

// WorkerName generates the service name for a device-indexed worker.
// Pattern: worker_{index}
//
// Example:
//
//	WorkerName(0) // returns "worker_0"
func WorkerName(index int) string {
	return fmt.Sprintf("worker_%d", index)
}
