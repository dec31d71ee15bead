package qsim

import (
	"fmt"
	"math"
	"math/cmplx"
)

/*
MaxOperatorBytes caps the size of one dense operator. An n-qubit operator
holds 4^n complex128 values of 16 bytes each.
*/
const MaxOperatorBytes = 256 << 20

// MaxQubits is the largest register whose operator fits in MaxOperatorBytes.
const MaxQubits = 12

// OperatorBytes is the memory taken by a dense operator on n qubits.
func OperatorBytes(n int) int {
	return (1 << (2 * n)) * 16
}

/*
StateVector holds the 2^n complex amplitudes of an n-qubit register.
Index i is the basis state whose n-bit binary expansion equals i, with
qubit 0 as the most significant bit.
*/
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

/*
GroundState returns the all-zeros basis state |00...0⟩: amplitude 1 at
index 0 and 0 everywhere else.
*/
func GroundState(numQubits int) (*StateVector, error) {
	if err := checkQubitCount(numQubits); err != nil {
		return nil, err
	}

	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1

	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// NewStateVector wraps existing amplitudes, which must number exactly 2^n.
func NewStateVector(amplitudes []complex128) (*StateVector, error) {
	n := 0
	for 1<<n < len(amplitudes) {
		n++
	}

	if len(amplitudes) == 0 || 1<<n != len(amplitudes) {
		return nil, fmt.Errorf("%w: %d amplitudes is not a power of two", ErrInvalidQubitCount, len(amplitudes))
	}

	if err := checkQubitCount(n); err != nil {
		return nil, err
	}

	amps := make([]complex128, len(amplitudes))
	copy(amps, amplitudes)

	return &StateVector{Amplitudes: amps, NumQubits: n}, nil
}

func (s *StateVector) Len() int {
	return len(s.Amplitudes)
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Probabilities returns |amplitude|² for every basis index.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		prob := cmplx.Abs(amp)
		probs[i] = prob * prob
	}
	return probs
}

// Norm is the Euclidean length of the state; 1 for any state reached by unitaries.
func (s *StateVector) Norm() float64 {
	var total float64
	for _, p := range s.Probabilities() {
		total += p
	}
	return math.Sqrt(total)
}

func checkQubitCount(n int) error {
	if n < 1 || n > MaxQubits {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidQubitCount, n, MaxQubits)
	}
	return nil
}
