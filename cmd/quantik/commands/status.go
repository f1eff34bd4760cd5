package commands

import (
	"fmt"

	"github.com/katalvlaran/quantik/render"
	"github.com/spf13/cobra"
)

func newStatusCmd(root *rootOptions) *cobra.Command {
	var run runFlags
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check authentication and run a trivial job",
		Long: `Authenticate against the configured job service and submit an idle
two-qubit circuit with both qubits measured. Every shot should read 00.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run.validate(); err != nil {
				return err
			}
			svc, err := root.service(cmd, &run)
			if err != nil {
				return err
			}
			res, err := svc.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "job id: %s\n", res.JobID)

			return render.Distribution(cmd.OutOrStdout(), res, run.format)
		},
	}
	run.register(cmd)

	return cmd
}
