// Package runner is the process boundary to the rig's external CLIs: the
// container orchestrator that starts the services and the chain CLI that
// deposits stake. Callers depend on the Runner interface; the exec-backed
// implementation is the only place subprocesses are spawned.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Runner executes an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as subprocesses, inheriting stdout/stderr so
// the operator sees the tool's own output.
type ExecRunner struct {
	Dir    string // working directory; empty means inherit
	Logger *slog.Logger
}

// Run executes the command and waits for it.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	r.Logger.Info("running external command", "command", name, "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// ComposeUp starts the rig's services from the manifest via the
// orchestration CLI.
func ComposeUp(ctx context.Context, r Runner, manifestPath string) error {
	return r.Run(ctx, "docker", "compose", "-f", manifestPath, "up", "-d")
}

// DepositStake invokes the chain CLI to deposit the operator's stake.
func DepositStake(ctx context.Context, r Runner, cli, amount string) error {
	return r.Run(ctx, cli, "stake", "deposit", "--amount", amount)
}
