package compose

import (
	"context"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Manifest Verification
// =============================================================================

// Verify checks that manifest content loads as a Docker Compose project
// with a consistent service dependency graph: at least one service, every
// depends_on entry resolving to a defined service, and no cycles.
// Input: raw YAML string. Output: nil or the first verification error.
func Verify(yamlContent string) error {
	if strings.TrimSpace(yamlContent) == "" {
		return ErrEmptyManifest
	}

	project, err := loadProject(yamlContent)
	if err != nil {
		return err
	}

	if len(project.Services) == 0 {
		return ErrNoServices
	}

	deps := dependencyGraph(project)
	if err := checkReferences(deps); err != nil {
		return err
	}
	return checkAcyclic(deps)
}

// loadProject loads the manifest using compose-go.
func loadProject(yamlContent string) (*types.Project, error) {
	// Parse YAML into a map first so syntax errors surface uniformly.
	var dict map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlContent), &dict); err != nil {
		return nil, NewVerifyError("", "invalid YAML syntax", ErrInvalidYAML)
	}
	if dict == nil {
		return nil, NewVerifyError("", "invalid YAML syntax", ErrInvalidYAML)
	}

	project, err := loader.LoadWithContext(context.Background(), types.ConfigDetails{
		ConfigFiles: []types.ConfigFile{
			{
				Content: []byte(yamlContent),
				Config:  dict,
			},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName("rigctl-verify", false)
		opts.SkipValidation = false
		opts.SkipInterpolation = true // generated manifests carry no placeholders
		// In-memory content: no paths to resolve, no external files to extend.
		opts.SkipNormalization = true
		opts.SkipExtends = true
		// Reference and cycle checks run below, with precise error kinds.
		opts.SkipConsistencyCheck = true
	})
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "dependency cycle detected") {
			return nil, NewVerifyError("", "circular dependency detected", ErrCircularDependency)
		}
		return nil, NewVerifyError("", errStr, ErrInvalidYAML)
	}

	return project, nil
}

// dependencyGraph extracts the service dependency adjacency list, with
// each service's dependencies sorted for deterministic error reporting.
func dependencyGraph(project *types.Project) map[string][]string {
	deps := make(map[string][]string, len(project.Services))
	for _, svc := range project.Services {
		var out []string
		for dep := range svc.DependsOn {
			out = append(out, dep)
		}
		sort.Strings(out)
		deps[svc.Name] = out
	}
	return deps
}

// checkReferences requires every dependency to name a defined service.
func checkReferences(deps map[string][]string) error {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range deps[name] {
			if _, ok := deps[dep]; !ok {
				return NewVerifyError(
					"services."+name+".depends_on",
					"undefined service "+dep,
					ErrUnknownDependency,
				)
			}
		}
	}
	return nil
}

// checkAcyclic detects cycles in the dependency graph via DFS.
func checkAcyclic(deps map[string][]string) error {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	var hasCycle func(node string) bool
	hasCycle = func(node string) bool {
		visited[node] = true
		recStack[node] = true

		for _, dep := range deps[node] {
			if dep == node {
				return true
			}
			if !visited[dep] {
				if hasCycle(dep) {
					return true
				}
			} else if recStack[dep] {
				return true
			}
		}

		recStack[node] = false
		return false
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !visited[name] {
			if hasCycle(name) {
				return ErrCircularDependency
			}
		}
	}
	return nil
}
