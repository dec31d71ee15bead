package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewGate(t *testing.T) {
	Convey("Given gate records from a circuit description", t, func() {
		Convey("It should map each identifier onto its variant", func() {
			tests := []struct {
				id      string
				targets []int
				want    Gate
			}{
				{"x", []int{1}, PauliXGate{Target: 1}},
				{"H", []int{0}, HadamardGate{Target: 0}},
				{"cx", []int{0, 1}, ControlledX{Control: 0, Target: 1}},
				{"CNOT", []int{2, 0}, ControlledX{Control: 2, Target: 0}},
			}

			for _, tt := range tests {
				g, err := NewGate(tt.id, tt.targets, nil)
				So(err, ShouldBeNil)
				So(g, ShouldResemble, tt.want)
			}
		})

		Convey("u3 should keep literals and treat missing params as defaults", func() {
			g, err := NewGate("u3", []int{0}, map[string]Param{
				"theta": Literal(1),
				"phi":   UseDefault(),
			})
			So(err, ShouldBeNil)
			So(g, ShouldResemble, Rotation{
				Target: 0,
				Theta:  Literal(1),
				Phi:    UseDefault(),
				Lambda: UseDefault(),
			})
		})

		Convey("It should reject identifiers outside the gate set", func() {
			for _, id := range []string{"swap", "y", "", "u3(1, 2, 3)"} {
				_, err := NewGate(id, []int{0}, nil)
				So(errors.Is(err, ErrUnsupportedGate), ShouldBeTrue)
			}
		})

		Convey("It should reject the wrong number of targets", func() {
			_, err := NewGate("cx", []int{0}, nil)
			So(errors.Is(err, ErrInvalidTargets), ShouldBeTrue)

			_, err = NewGate("h", []int{0, 1}, nil)
			So(errors.Is(err, ErrInvalidTargets), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given u3 params and a defaults table", t, func() {
		defaults := Defaults{Theta: 3.1415, Phi: 1.5708, Lambda: -3.1415}

		Convey("Resolve should prefer the literal", func() {
			So(Resolve(Literal(2), 9), ShouldEqual, 2.0)
			So(Resolve(UseDefault(), 9), ShouldEqual, 9.0)
		})

		Convey("Each angle should resolve on its own", func() {
			g := Rotation{Target: 0, Theta: UseDefault(), Phi: Literal(3.1415), Lambda: UseDefault()}
			r := g.Resolved(defaults)

			So(r.Theta, ShouldResemble, Literal(3.1415))
			So(r.Phi, ShouldResemble, Literal(3.1415))
			So(r.Lambda, ShouldResemble, Literal(-3.1415))
			So(r.resolved(), ShouldBeTrue)
			So(g.resolved(), ShouldBeFalse)
		})
	})
}

func TestCircuitValidate(t *testing.T) {
	Convey("Given a circuit", t, func() {
		Convey("A circuit within the register should pass", func() {
			c := Circuit{HadamardGate{Target: 0}, ControlledX{Control: 0, Target: 2}}
			So(c.Validate(3), ShouldBeNil)
			So(c.String(), ShouldEqual, "h(0) -> cx(0,2)")
		})

		Convey("The first bad gate should be reported with its position", func() {
			c := Circuit{
				HadamardGate{Target: 0},
				PauliXGate{Target: 5},
				ControlledX{Control: 1, Target: 1},
			}
			err := c.Validate(2)

			var gateErr *GateError
			So(errors.As(err, &gateErr), ShouldBeTrue)
			So(gateErr.Index, ShouldEqual, 1)
			So(gateErr.Gate, ShouldEqual, "x")
			So(errors.Is(err, ErrQubitOutOfRange), ShouldBeTrue)
		})

		Convey("A nil gate should be rejected as unsupported", func() {
			err := Circuit{nil}.Validate(1)
			So(errors.Is(err, ErrUnsupportedGate), ShouldBeTrue)
		})

		Convey("A register below one qubit should be rejected", func() {
			So(errors.Is(Circuit{}.Validate(0), ErrInvalidQubitCount), ShouldBeTrue)
		})
	})
}
