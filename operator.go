package qsim

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Dense copies m into a 2x2 gonum matrix.
func (m Matrix2) Dense() *mat.CDense {
	return mat.NewCDense(2, 2, []complex128{
		m[0][0], m[0][1],
		m[1][0], m[1][1],
	})
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *mat.CDense) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}

	return out
}

/*
Tensor returns factors[0] ⊗ factors[1] ⊗ ... ⊗ factors[n-1], with factor k
acting on qubit k and qubit 0 as the most significant bit. The result equals
folding Kron left to right, but each row is filled on its own:

	out[r][c] = Π_k factors[k][bit(r, k)][bit(c, k)]

where bit(i, k) is the bit of i with weight 2^(n-1-k).
*/
func Tensor(factors []Matrix2) *mat.CDense {
	dim := 1 << len(factors)
	return mat.NewCDense(dim, dim, tensorData(factors, NewConfig().ParallelDimension))
}

func tensorData(factors []Matrix2, parallelDim int) []complex128 {
	n := len(factors)
	dim := 1 << n
	data := make([]complex128, dim*dim)

	parallelRows(dim, parallelDim, func(lo, hi int) {
		for r := lo; r < hi; r++ {
			row := data[r*dim : (r+1)*dim]
			for c := range row {
				v := complex(1, 0)
				for k := 0; k < n && v != 0; k++ {
					shift := n - 1 - k
					v *= factors[k][(r>>shift)&1][(c>>shift)&1]
				}
				row[c] = v
			}
		}
	})

	return data
}

// Apply returns op · state as a new state; state is left untouched. Rows are
// split as a Builder built from NewConfig would split them.
func Apply(op *mat.CDense, state *StateVector) (*StateVector, error) {
	return apply(op, state, NewConfig().ParallelDimension)
}

func apply(op *mat.CDense, state *StateVector, parallelDim int) (*StateVector, error) {
	rows, cols := op.Dims()
	if rows != cols || cols != state.Len() {
		return nil, fmt.Errorf(
			"%w: operator %dx%d, state of length %d",
			ErrDimensionMismatch, rows, cols, state.Len(),
		)
	}

	out := make([]complex128, rows)
	parallelRows(rows, parallelDim, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			var sum complex128
			for j, amp := range state.Amplitudes {
				if amp == 0 {
					continue
				}
				sum += op.At(i, j) * amp
			}
			out[i] = sum
		}
	})

	return &StateVector{Amplitudes: out, NumQubits: state.NumQubits}, nil
}

/*
parallelRows calls fn over disjoint [lo, hi) row ranges covering [0, dim).
Below threshold it runs fn once on the calling goroutine.
*/
func parallelRows(dim, threshold int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if dim < threshold || workers < 2 {
		fn(0, dim)
		return
	}

	workers = min(workers, dim)
	chunk := (dim + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < dim; lo += chunk {
		hi := min(lo+chunk, dim)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
