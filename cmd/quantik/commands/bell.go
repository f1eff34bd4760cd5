package commands

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/operator"
	"github.com/katalvlaran/quantik/render"
	"github.com/spf13/cobra"
)

// bellObservables are the two-qubit Pauli observables estimated by bell.
var bellObservables = []string{"ZZ", "ZI", "IZ", "XX", "XI", "IX"}

func newBellCmd(root *rootOptions) *cobra.Command {
	var (
		run    runFlags
		sample bool
		draw   bool
	)
	cmd := &cobra.Command{
		Use:   "bell",
		Short: "Prepare a Bell state and estimate Pauli observables",
		Long: `Build the circuit H(0), CX(0, 1), compute the expectation value of
ZZ, ZI, IZ, XX, XI and IX on its output state and optionally sample it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := run.validate(); err != nil {
				return err
			}
			c, err := bellCircuit()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if draw {
				if err = render.Circuit(out, c); err != nil {
					return err
				}
			}

			values, err := bellExpectations(c)
			if err != nil {
				return err
			}
			rows := [][]string{{"observable", "expectation"}}
			for i, label := range bellObservables {
				rows = append(rows, []string{label, strconv.FormatFloat(values[i], 'f', 4, 64)})
			}
			if err = render.Table(out, rows); err != nil {
				return err
			}
			if !sample {
				return nil
			}

			measured := c.Clone()
			measured.MeasureAll()
			svc, err := root.service(cmd, &run)
			if err != nil {
				return err
			}
			if err = svc.Authenticate(cmd.Context()); err != nil {
				return err
			}
			res, err := svc.Submit(cmd.Context(), measured, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)

			return render.Distribution(out, res, run.format)
		},
	}
	run.register(cmd)
	cmd.Flags().BoolVar(&sample, "sample", false, "also sample the measured circuit")
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the circuit")

	return cmd
}

func bellCircuit() (*circuit.Circuit, error) {
	c, err := circuit.New(2, circuit.WithName("bell"))
	if err != nil {
		return nil, err
	}
	if err = c.H(0); err != nil {
		return nil, err
	}
	if err = c.CX(0, 1); err != nil {
		return nil, err
	}

	return c, nil
}

// bellExpectations returns ⟨ψ|P|ψ⟩ for each of bellObservables, where |ψ⟩
// is the output of c on |00⟩.
func bellExpectations(c *circuit.Circuit) ([]float64, error) {
	op, err := c.ToOperator()
	if err != nil {
		return nil, err
	}
	psi, err := operator.Apply(op, operator.ZeroState(op.Cols()))
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(bellObservables))
	for i, label := range bellObservables {
		obs, err := operator.FromPauli(label)
		if err != nil {
			return nil, err
		}
		e, err := operator.Expectation(obs, psi)
		if err != nil {
			return nil, err
		}
		values[i] = real(e)
	}

	return values, nil
}
