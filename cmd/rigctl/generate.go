package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provernet/rigctl/internal/core/compose"
	"github.com/provernet/rigctl/internal/shell/deploy"
	"github.com/provernet/rigctl/internal/shell/probe"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		devices  int
		manifest string
		verify   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the manifest for the rig's device count",
		Long: `Replicates the reference GPU worker once per additional device and
regenerates the prover's dependency list. With --devices unset, the
device count comes from the enumeration probe (0 when probing fails).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := devices
			if count < 0 {
				// negative means "not set on the command line"
				count = probe.NvidiaSMI{Binary: a.cfg.Probe.Binary, Logger: a.logger}.CountDevices(cmd.Context())
			}

			path := manifest
			if path == "" {
				path = a.cfg.Manifest.Path
			}

			d := deploy.NewDeployer(path, a.logger)
			if a.cfg.Manifest.Anchor != "" {
				d.Opts.Anchor = a.cfg.Manifest.Anchor
			}
			if a.cfg.Manifest.Service != "" {
				d.Opts.ServiceKey = a.cfg.Manifest.Service
			}

			status, err := d.Apply(count)
			if err != nil {
				return &exitError{code: ExitGenerateError, err: err}
			}

			if !status.Changed {
				fmt.Println("no modification needed")
				return nil
			}
			fmt.Printf("manifest regenerated for %d devices (backup: %s)\n", count, status.BackupPath)

			if verify {
				raw, err := os.ReadFile(path)
				if err != nil {
					return &exitError{code: ExitGenerateError, err: err}
				}
				if err := compose.Verify(string(raw)); err != nil {
					return &exitError{code: ExitGenerateError, err: fmt.Errorf("verification failed: %w", err)}
				}
				fmt.Println("manifest verified")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&devices, "devices", -1, "Device count override (default: probe)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "Manifest path override")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the regenerated manifest loads as a compose project")
	return cmd
}
