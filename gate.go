package qsim

import (
	"fmt"
	"strings"
)

/*
Gate is one of the fixed set of operations the simulator understands:
Rotation (u3), PauliXGate (x), HadamardGate (h) and ControlledX (cx).
The set is closed; the unexported marker keeps other packages from adding
variants the builder cannot handle.
*/
type Gate interface {
	Name() string
	Qubits() []int
	isGate()
}

// Param is a u3 angle that is either a literal or a request for the default.
type Param struct {
	Value   float64
	Default bool
}

func Literal(v float64) Param {
	return Param{Value: v}
}

func UseDefault() Param {
	return Param{Default: true}
}

func (p Param) String() string {
	if p.Default {
		return "default"
	}
	return fmt.Sprintf("%g", p.Value)
}

// Defaults supplies the values substituted for UseDefault params.
type Defaults struct {
	Theta  float64
	Phi    float64
	Lambda float64
}

// Resolve returns the literal value of p, or fallback when p asks for the default.
func Resolve(p Param, fallback float64) float64 {
	if p.Default {
		return fallback
	}
	return p.Value
}

// Rotation is the parametrised u3 gate.
type Rotation struct {
	Target int
	Theta  Param
	Phi    Param
	Lambda Param
}

func (Rotation) Name() string { return "u3" }
func (g Rotation) Qubits() []int { return []int{g.Target} }
func (Rotation) isGate() {}

// Resolved returns a copy with every default param replaced from d.
func (g Rotation) Resolved(d Defaults) Rotation {
	return Rotation{
		Target: g.Target,
		Theta:  Literal(Resolve(g.Theta, d.Theta)),
		Phi:    Literal(Resolve(g.Phi, d.Phi)),
		Lambda: Literal(Resolve(g.Lambda, d.Lambda)),
	}
}

func (g Rotation) resolved() bool {
	return !g.Theta.Default && !g.Phi.Default && !g.Lambda.Default
}

type PauliXGate struct {
	Target int
}

func (PauliXGate) Name() string { return "x" }
func (g PauliXGate) Qubits() []int { return []int{g.Target} }
func (PauliXGate) isGate() {}

type HadamardGate struct {
	Target int
}

func (HadamardGate) Name() string { return "h" }
func (g HadamardGate) Qubits() []int { return []int{g.Target} }
func (HadamardGate) isGate() {}

// ControlledX flips Target when Control is |1⟩.
type ControlledX struct {
	Control int
	Target  int
}

func (ControlledX) Name() string { return "cx" }
func (g ControlledX) Qubits() []int { return []int{g.Control, g.Target} }
func (ControlledX) isGate() {}

/*
NewGate builds a Gate from the string form used by circuit descriptions.
Identifiers are case-insensitive: "u3", "x", "h", and "cx" or "cnot".
u3 params are looked up by "theta", "phi" and "lambda"; a missing entry
means UseDefault.
*/
func NewGate(id string, targets []int, params map[string]Param) (Gate, error) {
	id = strings.ToLower(strings.TrimSpace(id))

	switch id {
	case "u3", "x", "h":
		if len(targets) != 1 {
			return nil, fmt.Errorf("%w: %s takes one target, got %d", ErrInvalidTargets, id, len(targets))
		}
	case "cx", "cnot":
		if len(targets) != 2 {
			return nil, fmt.Errorf("%w: %s takes control and target, got %d", ErrInvalidTargets, id, len(targets))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGate, id)
	}

	switch id {
	case "u3":
		return Rotation{
			Target: targets[0],
			Theta:  lookupParam(params, "theta"),
			Phi:    lookupParam(params, "phi"),
			Lambda: lookupParam(params, "lambda"),
		}, nil
	case "x":
		return PauliXGate{Target: targets[0]}, nil
	case "h":
		return HadamardGate{Target: targets[0]}, nil
	default:
		return ControlledX{Control: targets[0], Target: targets[1]}, nil
	}
}

func lookupParam(params map[string]Param, name string) Param {
	if p, ok := params[name]; ok {
		return p
	}
	return UseDefault()
}

// ValidateGate checks that every index g touches lies in [0, n).
func ValidateGate(g Gate, n int) error {
	switch gate := g.(type) {
	case Rotation, PauliXGate, HadamardGate:
	case ControlledX:
		if gate.Control == gate.Target {
			return fmt.Errorf("%w: control and target are both %d", ErrInvalidTargets, gate.Control)
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedGate, g)
	}

	for _, q := range g.Qubits() {
		if q < 0 || q >= n {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrQubitOutOfRange, q, n)
		}
	}

	return nil
}
