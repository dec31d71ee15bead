package qsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
Builder embeds a gate into the full 2^n-dimensional operator. It holds no
state between calls: the same inputs always give the same matrix.
*/
type Builder struct {
	parallelDim int
}

func NewBuilder(config *Config) *Builder {
	return &Builder{parallelDim: config.orDefault().ParallelDimension}
}

/*
Build returns the 2^n x 2^n operator for g acting on an n-qubit register.

Single-qubit gates are the tensor product of one factor per qubit, the gate
matrix at its target and identity elsewhere. ControlledX is split into the
projector sum

	|0⟩⟨0|_c ⊗ I  +  |1⟩⟨1|_c ⊗ X_t

which holds for any two distinct positions. Rotation params must already be
resolved against the defaults.
*/
func (b *Builder) Build(n int, g Gate) (*mat.CDense, error) {
	if err := checkQubitCount(n); err != nil {
		return nil, err
	}

	if err := ValidateGate(g, n); err != nil {
		return nil, err
	}

	dim := 1 << n

	switch gate := g.(type) {
	case Rotation:
		if !gate.resolved() {
			return nil, fmt.Errorf("%w: u3(%s, %s, %s)", ErrUnresolvedParam, gate.Theta, gate.Phi, gate.Lambda)
		}
		u := U3(gate.Theta.Value, gate.Phi.Value, gate.Lambda.Value)
		return mat.NewCDense(dim, dim, b.embed(n, gate.Target, u)), nil
	case PauliXGate:
		return mat.NewCDense(dim, dim, b.embed(n, gate.Target, PauliX())), nil
	case HadamardGate:
		return mat.NewCDense(dim, dim, b.embed(n, gate.Target, Hadamard())), nil
	case ControlledX:
		return mat.NewCDense(dim, dim, b.controlled(n, gate)), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedGate, g)
}

// Apply multiplies op into state using the builder's parallel threshold.
func (b *Builder) Apply(op *mat.CDense, state *StateVector) (*StateVector, error) {
	return apply(op, state, b.parallelDim)
}

func (b *Builder) embed(n, target int, u Matrix2) []complex128 {
	factors := identities(n)
	factors[target] = u
	return tensorData(factors, b.parallelDim)
}

func (b *Builder) controlled(n int, gate ControlledX) []complex128 {
	idle := identities(n)
	idle[gate.Control] = Projector0()

	flip := identities(n)
	flip[gate.Control] = Projector1()
	flip[gate.Target] = PauliX()

	out := tensorData(idle, b.parallelDim)
	for i, v := range tensorData(flip, b.parallelDim) {
		out[i] += v
	}
	return out
}

func identities(n int) []Matrix2 {
	factors := make([]Matrix2, n)
	for i := range factors {
		factors[i] = Identity()
	}
	return factors
}
