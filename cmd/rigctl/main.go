// rigctl prepares a multi-GPU prover rig: it regenerates the rig's
// orchestration manifest for the detected accelerator count, derives the
// capacity tuning parameters, and starts the services.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Exit codes
const (
	ExitSuccess       = 0
	ExitConfigError   = 1
	ExitGenerateError = 2
	ExitPlanError     = 3
	ExitRunnerError   = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	a := &app{}

	root := &cobra.Command{
		Use:           "rigctl",
		Short:         "Prover rig deployment preparation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")

	root.AddCommand(
		newGenerateCmd(a),
		newPlanCmd(a),
		newUpCmd(a),
		newStakeCmd(a),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rigctl: %v\n", err)
		if code, ok := exitCodeFor(err); ok {
			return code
		}
		return ExitConfigError
	}
	return ExitSuccess
}

// app carries the loaded configuration and logger across commands.
type app struct {
	configPath string
	cfg        *Config
	logger     *slog.Logger
}

func (a *app) init() error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	a.cfg = cfg
	a.logger = SetupLogger(cfg)
	return nil
}

// exitError tags an error with the exit code of the failed stage.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func exitCodeFor(err error) (int, bool) {
	if e, ok := err.(*exitError); ok {
		return e.code, true
	}
	return 0, false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("rigctl %s (built %s)\n", Version, BuildTime)
		},
	}
}
