// Package deploy is the imperative shell around topology generation: it
// reads the manifest from disk, runs the pure generator, and performs the
// backup and atomic write-back. All filesystem effects of a generation
// run live here.
package deploy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/provernet/rigctl/internal/core/manifest"
	"github.com/provernet/rigctl/internal/core/topology"
)

// =============================================================================
// Error Types
// =============================================================================

// IOError wraps a filesystem failure during a generation run.
type IOError struct {
	Op   string // "read", "backup", "write", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Deployer
// =============================================================================

// Status reports what a run did to the manifest.
type Status struct {
	// Changed is false when the device count required no modification;
	// the manifest on disk was not touched and no backup was written.
	Changed bool

	// BackupPath is the sibling backup written before modification.
	// Empty when Changed is false.
	BackupPath string
}

// Deployer owns one manifest file for the duration of a run. Invocations
// are not safe against concurrent runs over the same path; the
// surrounding tooling runs this as a single short-lived step.
type Deployer struct {
	ManifestPath string
	Opts         topology.Options
	Logger       *slog.Logger
}

// NewDeployer creates a Deployer with the default generation options.
func NewDeployer(manifestPath string, logger *slog.Logger) *Deployer {
	return &Deployer{
		ManifestPath: manifestPath,
		Opts:         topology.DefaultOptions(),
		Logger:       logger,
	}
}

// Apply reads the manifest, generates the topology for the device count,
// and writes the result back. Pipeline per run:
//
//  1. read the manifest
//  2. generate (pure); a deviceCount <= 1 run stops here, untouched
//  3. write the backup sibling, exactly once, before any modification
//  4. write a temporary file and rename it over the manifest
//
// On any failure the original file is left exactly as it was and the
// temporary file, if created, is removed.
func (d *Deployer) Apply(deviceCount int) (Status, error) {
	raw, err := os.ReadFile(d.ManifestPath)
	if err != nil {
		return Status{}, &IOError{Op: "read", Path: d.ManifestPath, Err: err}
	}

	result, err := topology.Generate(manifest.ParseDocument(string(raw)), deviceCount, d.Opts)
	if err != nil {
		return Status{}, err
	}

	if !result.Changed {
		d.Logger.Info("no modification needed",
			"manifest", d.ManifestPath,
			"devices", deviceCount,
		)
		return Status{Changed: false}, nil
	}

	backupPath := d.ManifestPath + ".bak"
	if err := os.WriteFile(backupPath, raw, 0o644); err != nil {
		return Status{}, &IOError{Op: "backup", Path: backupPath, Err: err}
	}

	if err := d.replace(result.Doc.String()); err != nil {
		return Status{}, err
	}

	d.Logger.Info("manifest regenerated",
		"manifest", d.ManifestPath,
		"devices", deviceCount,
		"backup", backupPath,
	)
	return Status{Changed: true, BackupPath: backupPath}, nil
}

// replace atomically overwrites the manifest: a crash mid-write leaves
// either the old content or the new, never a truncated file.
func (d *Deployer) replace(content string) error {
	dir := filepath.Dir(d.ManifestPath)
	base := filepath.Base(d.ManifestPath)
	tmp := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return &IOError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, d.ManifestPath); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "rename", Path: d.ManifestPath, Err: err}
	}
	return nil
}
