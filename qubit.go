package qsim

import (
	"math"
	"math/cmplx"
)

// Matrix2 is an elementary single-qubit operator.
type Matrix2 [2][2]complex128

/*
U3 is the general single-qubit rotation:

	[ cos(θ/2)          -e^{iλ} sin(θ/2)     ]
	[ e^{iφ} sin(θ/2)    e^{i(φ+λ)} cos(θ/2) ]

Angles are radians and are not range-checked.
*/
func U3(theta, phi, lambda float64) Matrix2 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)

	return Matrix2{
		{c, -cmplx.Exp(complex(0, lambda)) * s},
		{cmplx.Exp(complex(0, phi)) * s, cmplx.Exp(complex(0, phi+lambda)) * c},
	}
}

func PauliX() Matrix2 {
	return Matrix2{
		{0, 1},
		{1, 0},
	}
}

// Hadamard is 1/√2 * [[1, 1], [1, -1]].
func Hadamard() Matrix2 {
	h := complex(1/math.Sqrt2, 0)
	return Matrix2{
		{h, h},
		{h, -h},
	}
}

func Identity() Matrix2 {
	return Matrix2{
		{1, 0},
		{0, 1},
	}
}

// Projector0 is |0⟩⟨0|.
func Projector0() Matrix2 {
	return Matrix2{
		{1, 0},
		{0, 0},
	}
}

// Projector1 is |1⟩⟨1|.
func Projector1() Matrix2 {
	return Matrix2{
		{0, 0},
		{0, 1},
	}
}

// Apply multiplies a single-qubit amplitude pair by m.
func (m Matrix2) Apply(alpha, beta complex128) (complex128, complex128) {
	return m[0][0]*alpha + m[0][1]*beta, m[1][0]*alpha + m[1][1]*beta
}
