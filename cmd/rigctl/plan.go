package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/provernet/rigctl/internal/core/capacity"
	"github.com/provernet/rigctl/internal/shell/envfile"
	"github.com/provernet/rigctl/internal/shell/probe"
)

func newPlanCmd(a *app) *cobra.Command {
	var (
		devices int
		envPath string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Derive capacity tuning parameters and write them to the env file",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := devices
			if count < 0 {
				count = probe.NvidiaSMI{Binary: a.cfg.Probe.Binary, Logger: a.logger}.CountDevices(cmd.Context())
			}

			maxConcurrent, peakRate := capacity.Plan(count)

			path := envPath
			if path == "" {
				path = a.cfg.Env.Path
			}
			err := envfile.UpsertAll(path, []envfile.Entry{
				{Key: a.cfg.Env.MaxConcurrentKey, Value: strconv.Itoa(maxConcurrent)},
				{Key: a.cfg.Env.PeakRateKey, Value: strconv.Itoa(peakRate)},
			})
			if err != nil {
				return &exitError{code: ExitPlanError, err: err}
			}

			a.logger.Info("capacity plan written",
				"devices", count,
				"max_concurrent", maxConcurrent,
				"peak_rate", peakRate,
				"env", path,
			)
			fmt.Printf("%s=%d\n%s=%d\n", a.cfg.Env.MaxConcurrentKey, maxConcurrent, a.cfg.Env.PeakRateKey, peakRate)
			return nil
		},
	}

	cmd.Flags().IntVar(&devices, "devices", -1, "Device count override (default: probe)")
	cmd.Flags().StringVar(&envPath, "env", "", "Env file path override")
	return cmd
}
