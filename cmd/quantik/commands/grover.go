package commands

import (
	"fmt"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/grover"
	"github.com/katalvlaran/quantik/logger"
	"github.com/katalvlaran/quantik/oracle"
	"github.com/katalvlaran/quantik/render"
	"github.com/spf13/cobra"
)

func newGroverCmd(root *rootOptions) *cobra.Command {
	var (
		run    runFlags
		marked []string
		expand bool
		draw   bool
		dedupe bool
	)
	cmd := &cobra.Command{
		Use:   "grover",
		Short: "Search for marked bit strings with Grover's algorithm",
		Long: `Synthesise a phase oracle for the marked bit strings, amplify them with
the optimal number of Grover iterations and sample the result.

Bit strings list qubit 0 rightmost. The iteration count uses the number of
strings given; repeated strings cancel in the oracle unless --dedupe is set.
Remote runs always use the expanded, gate-level circuit.`,
		Example: `  quantik grover --marked 000,111
  quantik grover --marked 0110 --draw --expand`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run.validate(); err != nil {
				return err
			}
			if dedupe {
				marked = oracle.Dedupe(marked)
			}
			o, err := oracle.Synthesize(marked)
			if err != nil {
				return err
			}
			n := o.NumQubits()
			k, err := grover.OptimalIterations(n, len(marked))
			if err != nil {
				return err
			}
			p, err := grover.SuccessProbability(n, len(marked), k)
			if err != nil {
				return err
			}

			svc, err := root.service(cmd, &run)
			if err != nil {
				return err
			}
			var c *circuit.Circuit
			if expand || !svc.Config().Simulated {
				c, err = grover.BuildExpandedSearchCircuit(o, k)
			} else {
				c, err = grover.BuildSearchCircuit(o, k)
			}
			if err != nil {
				return err
			}
			logger.Logger.Infow("search circuit built",
				logger.FieldQubits, n,
				logger.FieldIterations, k,
				"instructions", c.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "qubits: %d  marked: %d  iterations: %d  expected success: %.4f\n",
				n, len(marked), k, p)
			if draw {
				if err = render.Circuit(out, c); err != nil {
					return err
				}
			}

			if err = svc.Authenticate(cmd.Context()); err != nil {
				return err
			}
			res, err := svc.Submit(cmd.Context(), c, 0)
			if err != nil {
				return err
			}

			return render.Distribution(out, res, run.format)
		},
	}
	run.register(cmd)
	cmd.Flags().StringSliceVarP(&marked, "marked", "m", nil, "marked bit strings, comma separated (e.g. 000,111)")
	cmd.Flags().BoolVar(&expand, "expand", false, "place the Grover step as gates instead of one operator")
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the search circuit")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "drop repeated marked strings")
	_ = cmd.MarkFlagRequired("marked")

	return cmd
}
