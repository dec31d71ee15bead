package qsim

import (
	"strconv"
	"strings"
)

// Circuit is an ordered gate list. Order matters: operators do not commute.
type Circuit []Gate

/*
Validate checks every gate against an n-qubit register and reports the first
offender as a *GateError. Nothing is computed for a circuit that fails here.
*/
func (c Circuit) Validate(n int) error {
	if err := checkQubitCount(n); err != nil {
		return err
	}

	for i, g := range c {
		if err := ValidateGate(g, n); err != nil {
			return &GateError{Index: i, Gate: gateName(g), Err: err}
		}
	}

	return nil
}

// String renders the circuit as "u3(0) -> cx(0,1)".
func (c Circuit) String() string {
	parts := make([]string, 0, len(c))
	for _, g := range c {
		if g == nil {
			parts = append(parts, gateName(g))
			continue
		}

		qubits := make([]string, 0, 2)
		for _, q := range g.Qubits() {
			qubits = append(qubits, strconv.Itoa(q))
		}
		parts = append(parts, g.Name()+"("+strings.Join(qubits, ",")+")")
	}
	return strings.Join(parts, " -> ")
}

func gateName(g Gate) string {
	if g == nil {
		return "<nil>"
	}
	return g.Name()
}
