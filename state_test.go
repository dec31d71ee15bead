package qsim

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const tolerance = 1e-9

func TestGroundState(t *testing.T) {
	Convey("Given a qubit count", t, func() {
		Convey("It should put all amplitude on index 0", func() {
			for n := 1; n <= 6; n++ {
				state, err := GroundState(n)
				So(err, ShouldBeNil)
				So(state.NumQubits, ShouldEqual, n)
				So(state.Len(), ShouldEqual, 1<<n)
				So(state.Amplitudes[0], ShouldEqual, complex(1, 0))

				for i := 1; i < state.Len(); i++ {
					So(state.Amplitudes[i], ShouldEqual, complex(0, 0))
				}
			}
		})

		Convey("It should reject fewer than one qubit", func() {
			for _, n := range []int{0, -1} {
				state, err := GroundState(n)
				So(state, ShouldBeNil)
				So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
			}
		})

		Convey("It should reject registers too large to hold densely", func() {
			_, err := GroundState(MaxQubits + 1)
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
		})

		Convey("MaxQubits should be the largest register within the operator budget", func() {
			So(OperatorBytes(1), ShouldEqual, 64)
			So(OperatorBytes(MaxQubits), ShouldBeLessThanOrEqualTo, MaxOperatorBytes)
			So(OperatorBytes(MaxQubits+1), ShouldBeGreaterThan, MaxOperatorBytes)
		})

		Convey("Nothing should build an operator past the budget", func() {
			_, err := NewBuilder(nil).Build(MaxQubits+1, PauliXGate{Target: 0})
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)

			err = Circuit{PauliXGate{Target: 0}}.Validate(MaxQubits + 1)
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
		})
	})
}

func TestStateVector(t *testing.T) {
	Convey("Given an existing amplitude list", t, func() {
		h := complex(1/math.Sqrt2, 0)

		Convey("It should infer the qubit count", func() {
			state, err := NewStateVector([]complex128{h, 0, 0, h})
			So(err, ShouldBeNil)
			So(state.NumQubits, ShouldEqual, 2)
			So(state.Norm(), ShouldAlmostEqual, 1.0, tolerance)
		})

		Convey("It should reject lengths that are not a power of two", func() {
			_, err := NewStateVector([]complex128{1, 0, 0})
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)

			_, err = NewStateVector(nil)
			So(errors.Is(err, ErrInvalidQubitCount), ShouldBeTrue)
		})

		Convey("It should not share storage with the input or its clones", func() {
			amps := []complex128{1, 0}
			state, err := NewStateVector(amps)
			So(err, ShouldBeNil)

			amps[0] = 0
			So(state.Amplitudes[0], ShouldEqual, complex(1, 0))

			clone := state.Clone()
			clone.Amplitudes[0] = 0
			So(state.Amplitudes[0], ShouldEqual, complex(1, 0))
		})

		Convey("It should report squared magnitudes as probabilities", func() {
			state, err := NewStateVector([]complex128{complex(0, 0.6), 0.8})
			So(err, ShouldBeNil)

			probs := state.Probabilities()
			So(probs[0], ShouldAlmostEqual, 0.36, tolerance)
			So(probs[1], ShouldAlmostEqual, 0.64, tolerance)
		})
	})
}
