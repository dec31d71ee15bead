package qsim

import (
	"context"

	"github.com/theapemachine/errnie"
)

// Executor evolves a state vector through a circuit, one operator at a time.
type Executor struct {
	builder *Builder
}

func NewExecutor(config *Config) *Executor {
	return &Executor{builder: NewBuilder(config)}
}

/*
Run applies circuit to initial strictly left to right and returns the final
state. The whole circuit is validated before the first operator is built, so a
bad gate anywhere aborts the run without partial results. u3 params marked
UseDefault are taken from defaults. initial is not modified.
*/
func (e *Executor) Run(
	ctx context.Context,
	initial *StateVector,
	circuit Circuit,
	defaults Defaults,
) (*StateVector, error) {
	if initial == nil {
		return nil, ErrInvalidQubitCount
	}

	n := initial.NumQubits
	if err := circuit.Validate(n); err != nil {
		return nil, err
	}

	errnie.Info("Executor.Run - qubits %d, gates %d, circuit %s", n, len(circuit), circuit)

	state := initial.Clone()

	for i, g := range circuit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if rot, ok := g.(Rotation); ok {
			g = rot.Resolved(defaults)
		}

		errnie.Info("Executor.Run - gate %d %s", i, g.Name())

		op, err := e.builder.Build(n, g)
		if err != nil {
			return nil, &GateError{Index: i, Gate: g.Name(), Err: err}
		}

		if state, err = e.builder.Apply(op, state); err != nil {
			return nil, &GateError{Index: i, Gate: g.Name(), Err: err}
		}
	}

	errnie.Info("Executor.Run - done, norm %.12f", state.Norm())

	return state, nil
}
