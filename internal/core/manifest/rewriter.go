package manifest

import "strings"

// =============================================================================
// Dependency List Rewriting
// =============================================================================

// DependsOnKey is the nested key holding a service's dependency list.
const DependsOnKey = "depends_on"

// RewriteDependencies regenerates a service's dependency list so it
// references every device-indexed worker. The replacement is built
// deterministically: the head entry first, then worker_0..worker_(N-1) in
// ascending index order, then the tail entries in their declared order.
// No deduplication happens; the construction is order-exact and the order
// is part of the contract (it keeps regenerated manifests diffable).
//
// serviceIndent is the indentation depth of the service's key line;
// the depends_on key is expected one level (two spaces) deeper and its
// items one level deeper again.
//
// Fails with ErrServiceNotFound when the service key is absent and with
// ErrDependencyBlockNotFound when the service carries no dependency list.
// Both are hard errors: skipping the rewrite would yield a manifest that
// deploys but wires the prover to a stale worker set.
func RewriteDependencies(doc Document, serviceKey string, serviceIndent, deviceCount int, head string, tail []string) (Document, error) {
	service, err := FindKeyBlock(doc, serviceKey, serviceIndent)
	if err != nil {
		return Document{}, NewLocateError(serviceKey, "dependent service missing", ErrServiceNotFound)
	}

	depends, err := FindKeyBlockWithin(doc, service, DependsOnKey, serviceIndent+2)
	if err != nil {
		return Document{}, NewLocateError(serviceKey+"."+DependsOnKey, "service has no dependency list", ErrDependencyBlockNotFound)
	}

	names := DependencyNames(deviceCount, head, tail)
	itemIndent := strings.Repeat(" ", serviceIndent+4)
	items := make([]string, 0, len(names))
	for _, name := range names {
		items = append(items, itemIndent+"- "+name)
	}

	return doc.Splice(depends.Start, depends.End, items), nil
}

// DependencyNames builds the ordered dependency set for a device count:
// head, then one worker per index 0..deviceCount-1, then the fixed tail.
func DependencyNames(deviceCount int, head string, tail []string) []string {
	names := make([]string, 0, 1+deviceCount+len(tail))
	names = append(names, head)
	for i := 0; i < deviceCount; i++ {
		names = append(names, WorkerName(i))
	}
	names = append(names, tail...)
	return names
}
