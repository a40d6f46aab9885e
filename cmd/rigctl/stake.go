package main

import (
	"github.com/spf13/cobra"

	"github.com/provernet/rigctl/internal/shell/runner"
)

func newStakeCmd(a *app) *cobra.Command {
	var (
		cli    string
		amount string
	)

	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Deposit the operator's stake via the chain CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner.ExecRunner{Logger: a.logger}
			if err := runner.DepositStake(cmd.Context(), r, cli, amount); err != nil {
				return &exitError{code: ExitRunnerError, err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cli, "cli", "prover-cli", "Chain CLI binary")
	cmd.Flags().StringVar(&amount, "amount", "", "Stake amount to deposit")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
