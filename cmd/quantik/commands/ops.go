package commands

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quantik/circuit"
	"github.com/katalvlaran/quantik/matrix"
	"github.com/katalvlaran/quantik/operator"
	"github.com/spf13/cobra"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Walk through the operator algebra",
		Long: `Print a guided tour of operators: construction and subsystem dims,
operators from Paulis, gates and circuits, tensor and expand, composition
order, subsystem composition, linear combinations and comparisons.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opsTour(cmd.OutOrStdout())
		},
	}
}

// tour accumulates the first error so the walkthrough reads top to bottom.
type tour struct {
	w   io.Writer
	err error
}

func (t *tour) section(title string) {
	if t.err == nil {
		_, t.err = fmt.Fprintf(t.w, "\n== %s ==\n", title)
	}
}

func (t *tour) printf(format string, args ...any) {
	if t.err == nil {
		_, t.err = fmt.Fprintf(t.w, format, args...)
	}
}

// op keeps the first construction error and returns nil after it.
func (t *tour) op(o *operator.Operator, err error) *operator.Operator {
	if t.err == nil && err != nil {
		t.err = err
	}
	if t.err != nil {
		return nil
	}

	return o
}

func (t *tour) show(label string, o *operator.Operator) {
	if o != nil {
		t.printf("%s: %s", label, o)
	}
}

func opsTour(w io.Writer) error {
	t := &tour{w: w}

	t.section("Creating operators")
	xx := t.op(operator.FromRows([][]complex128{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	t.show("XX from rows", xx)

	t.section("Subsystem dims")
	rect, err := matrix.NewDense(2, 4)
	if err != nil {
		return err
	}
	if o := t.op(operator.New(rect)); o != nil {
		t.printf("2x4: in=%v out=%v\n", o.InputDims(), o.OutputDims())
	}
	if o := t.op(operator.New(rect, operator.WithInputDims(4))); o != nil {
		t.printf("2x4 with input dims [4]: in=%v out=%v\n", o.InputDims(), o.OutputDims())
	}
	six, err := matrix.NewIdentity(6)
	if err != nil {
		return err
	}
	if o := t.op(operator.New(six)); o != nil {
		t.printf("6x6: in=%v out=%v\n", o.InputDims(), o.OutputDims())
	}
	if o := t.op(operator.New(six, operator.WithDims(2, 3))); o != nil {
		t.printf("6x6 as qubit+qutrit: in=%v out=%v\n", o.InputDims(), o.OutputDims())
	}

	t.section("Operators from Paulis, gates and circuits")
	t.show("Pauli XX", t.op(operator.FromPauli("XX")))
	t.show("CX gate", t.op(circuit.CX().Operator()))
	t.show("RX(π/2) gate", t.op(circuit.RX(math.Pi/2).Operator()))
	if ghz, err := ghzCircuit(3); err != nil {
		t.err = err
	} else {
		t.show("GHZ circuit", t.op(ghz.ToOperator()))
	}

	t.section("Tensor and expand")
	a := t.op(operator.FromPauli("X"))
	b := t.op(operator.FromPauli("Z"))
	if a != nil && b != nil {
		t.show("A.tensor(B) = X⊗Z", t.op(operator.Tensor(a, b)))
		t.show("A.expand(B) = Z⊗X", t.op(operator.Expand(a, b)))
	}

	t.section("Composition")
	if a != nil && b != nil {
		t.show("compose(A, B) = A·B", t.op(operator.Compose(a, b, false)))
		t.show("compose(A, B, front) = B·A", t.op(operator.Compose(a, b, true)))
	}

	t.section("Subsystem composition")
	id3 := t.op(operator.QubitIdentity(3))
	xz := t.op(operator.FromPauli("XZ"))
	yx := t.op(operator.FromPauli("YX"))
	if id3 != nil && xz != nil && yx != nil {
		t.show("I₃ with XZ on qubits [0 2]", t.op(operator.ComposeSubsystem(id3, xz, []int{0, 2}, false)))
		t.show("I₃ with YX on qubits [0 2], front", t.op(operator.ComposeSubsystem(id3, yx, []int{0, 2}, true)))
	}

	t.section("Linear combinations")
	if lc := linearCombination(t); lc != nil {
		t.show("0.5·(XX + YY − 3·ZZ)", lc)
		t.printf("unitary: %v\n", operator.IsUnitary(lc))
	}

	t.section("Comparison")
	px := t.op(operator.FromPauli("X"))
	gx := t.op(circuit.X().Operator())
	if px != nil && gx != nil {
		phased := t.op(operator.Scale(gx, cmplx.Exp(complex(0, 0.5))))
		if phased != nil {
			t.printf("Pauli X == X gate: %v\n", operator.Equal(px, gx))
			t.printf("Pauli X == e^{0.5i}·X gate: %v\n", operator.Equal(px, phased))
			t.printf("equal up to global phase: %v\n", operator.EqualUpToGlobalPhase(px, phased))
			f, err := operator.ProcessFidelity(gx, phased)
			if err != nil {
				return err
			}
			t.printf("process fidelity: %.6f\n", f)
		}
	}

	return t.err
}

// ghzCircuit returns H(0) followed by a CX chain over n qubits.
func ghzCircuit(n int) (*circuit.Circuit, error) {
	c, err := circuit.New(n, circuit.WithName("ghz"))
	if err != nil {
		return nil, err
	}
	if err = c.H(0); err != nil {
		return nil, err
	}
	for q := 1; q < n; q++ {
		if err = c.CX(q-1, q); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func linearCombination(t *tour) *operator.Operator {
	xx := t.op(operator.FromPauli("XX"))
	yy := t.op(operator.FromPauli("YY"))
	zz := t.op(operator.FromPauli("ZZ"))
	if xx == nil || yy == nil || zz == nil {
		return nil
	}
	zz3 := t.op(operator.Scale(zz, 3))
	if zz3 == nil {
		return nil
	}
	sum := t.op(operator.Add(xx, yy))
	if sum == nil {
		return nil
	}
	diff := t.op(operator.Sub(sum, zz3))
	if diff == nil {
		return nil
	}

	return t.op(operator.Scale(diff, 0.5))
}
