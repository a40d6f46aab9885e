// Package manifest provides pure functions for line-oriented editing of
// service-orchestration manifests.
//
// This package is part of the Functional Core - all functions take a
// Document value and return a new Document value; nothing here touches
// the filesystem.
//
// The editor deliberately does NOT parse YAML. It operates on a
// constrained, line-oriented subset typical of deployment manifests:
// block-style mappings and sequences with consistent two-space
// indentation levels. Everything outside an edited range is preserved
// byte-for-byte, including comments, blank lines, and anchors/aliases.
// That guarantee is the reason a YAML round-tripping library cannot be
// used here. The constrained-subset assumption is load-bearing: flow
// style sequences and irregular indentation are out of scope.
//
// # Functions
//
//   - Locating: FindAnchor, FindKeyBlock, FindKeyBlockWithin
//   - Editing: ExpandWorkers, RewriteDependencies
//   - Naming: WorkerName
//
// Block ranges are computed fresh per edit and must never be cached
// across edits, because an edit shifts every subsequent line number.
package manifest
