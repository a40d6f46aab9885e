package main

import (
	"github.com/spf13/cobra"

	"github.com/provernet/rigctl/internal/shell/deploy"
	"github.com/provernet/rigctl/internal/shell/probe"
	"github.com/provernet/rigctl/internal/shell/runner"
)

func newUpCmd(a *app) *cobra.Command {
	var devices int

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Regenerate the manifest, then start the rig's services",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := devices
			if count < 0 {
				count = probe.NvidiaSMI{Binary: a.cfg.Probe.Binary, Logger: a.logger}.CountDevices(cmd.Context())
			}

			d := deploy.NewDeployer(a.cfg.Manifest.Path, a.logger)
			if _, err := d.Apply(count); err != nil {
				return &exitError{code: ExitGenerateError, err: err}
			}

			r := runner.ExecRunner{Logger: a.logger}
			if err := runner.ComposeUp(cmd.Context(), r, a.cfg.Manifest.Path); err != nil {
				return &exitError{code: ExitRunnerError, err: err}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&devices, "devices", -1, "Device count override (default: probe)")
	return cmd
}
