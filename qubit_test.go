package qsim

import (
	"math"
	"math/cmplx"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func matrix2Close(a, b Matrix2) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(a[i][j]-b[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

func TestGateLibrary(t *testing.T) {
	Convey("Given the single-qubit gate matrices", t, func() {
		Convey("u3(0, 0, 0) should be the identity", func() {
			So(matrix2Close(U3(0, 0, 0), Identity()), ShouldBeTrue)
		})

		Convey("u3(π, 0, π) should be Pauli-X", func() {
			So(matrix2Close(U3(math.Pi, 0, math.Pi), PauliX()), ShouldBeTrue)
		})

		Convey("u3(π/2, 0, π) should be the Hadamard", func() {
			So(matrix2Close(U3(math.Pi/2, 0, math.Pi), Hadamard()), ShouldBeTrue)
		})

		Convey("u3 should follow the closed form for arbitrary angles", func() {
			theta, phi, lambda := 1.0, 2.0, -1.0
			u := U3(theta, phi, lambda)

			So(cmplx.Abs(u[0][0]-complex(math.Cos(0.5), 0)), ShouldBeLessThan, tolerance)
			So(cmplx.Abs(u[0][1]+cmplx.Exp(complex(0, lambda))*complex(math.Sin(0.5), 0)), ShouldBeLessThan, tolerance)
			So(cmplx.Abs(u[1][0]-cmplx.Exp(complex(0, phi))*complex(math.Sin(0.5), 0)), ShouldBeLessThan, tolerance)
			So(cmplx.Abs(u[1][1]-cmplx.Exp(complex(0, phi+lambda))*complex(math.Cos(0.5), 0)), ShouldBeLessThan, tolerance)
		})

		Convey("Hadamard applied twice should return the original amplitudes", func() {
			states := [][2]complex128{
				{1, 0},
				{0, 1},
				{complex(0.6, 0), complex(0, 0.8)},
				{complex(0.5, 0.5), complex(-0.5, 0.5)},
			}

			for _, s := range states {
				a, b := Hadamard().Apply(s[0], s[1])
				a, b = Hadamard().Apply(a, b)
				So(cmplx.Abs(a-s[0]), ShouldBeLessThan, tolerance)
				So(cmplx.Abs(b-s[1]), ShouldBeLessThan, tolerance)
			}
		})

		Convey("The projectors should sum to the identity", func() {
			p0, p1 := Projector0(), Projector1()
			var sum Matrix2
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					sum[i][j] = p0[i][j] + p1[i][j]
				}
			}
			So(matrix2Close(sum, Identity()), ShouldBeTrue)
		})
	})
}
