package commands

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/quantik/oracle"
	"github.com/katalvlaran/quantik/qasm"
	"github.com/katalvlaran/quantik/render"
	"github.com/spf13/cobra"
)

// maxDiagonalQubits bounds the diagonal table printed by the oracle command.
const maxDiagonalQubits = 6

func newOracleCmd() *cobra.Command {
	var marked []string
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Show the phase oracle for marked bit strings",
		Long: `Synthesise the phase oracle for the marked bit strings and print its
drawing, the sign it applies to every basis state and its OpenQASM 3 form.`,
		Example: `  quantik oracle --marked 01,10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := oracle.Synthesize(marked)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err = render.Circuit(out, o); err != nil {
				return err
			}

			if n := o.NumQubits(); n <= maxDiagonalQubits {
				op, err := o.ToOperator()
				if err != nil {
					return err
				}
				rows := [][]string{{"basis", "sign"}}
				for i := 0; i < op.Rows(); i++ {
					v, err := op.At(i, i)
					if err != nil {
						return err
					}
					rows = append(rows, []string{basisLabel(i, n), strconv.FormatFloat(real(v), 'f', 0, 64)})
				}
				fmt.Fprintln(out)
				if err = render.Table(out, rows); err != nil {
					return err
				}
			}

			program, err := qasm.Export(o)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			_, err = fmt.Fprint(out, program)

			return err
		},
	}
	cmd.Flags().StringSliceVarP(&marked, "marked", "m", nil, "marked bit strings, comma separated")
	_ = cmd.MarkFlagRequired("marked")

	return cmd
}

// basisLabel renders basis index i as an n-character bit string, qubit 0 rightmost.
func basisLabel(i, n int) string {
	return fmt.Sprintf("%0*b", n, i)
}
