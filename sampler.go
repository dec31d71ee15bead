package qsim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed Source; seed and stream pick the sequence.
func NewSource(seed, stream uint64) Source {
	return rand.New(rand.NewPCG(seed, stream))
}

/*
Distribution is the cumulative |amplitude|² sequence of a state, built once
and shared read-only by any number of draws.
*/
type Distribution struct {
	levels []float64
}

func NewDistribution(state *StateVector) *Distribution {
	probs := state.Probabilities()
	return &Distribution{levels: floats.CumSum(make([]float64, len(probs)), probs)}
}

func (d *Distribution) Len() int {
	return len(d.levels)
}

// Total is the last cumulative level, 1 up to rounding for a normalised state.
func (d *Distribution) Total() float64 {
	return d.levels[len(d.levels)-1]
}

/*
Draw maps a uniform value u to the smallest index whose cumulative level is
strictly greater than u. A u that lands exactly on a boundary goes to the next
index. If rounding left the total at or below u, the last index is returned.
*/
func (d *Distribution) Draw(u float64) int {
	for i, level := range d.levels {
		if u < level {
			return i
		}
	}
	return len(d.levels) - 1
}

// Sampler measures a full register in the computational basis.
type Sampler struct {
	source Source
}

func NewSampler(source Source) *Sampler {
	if source == nil {
		source = NewSource(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{source: source}
}

// Sample returns one basis index drawn with probability |amplitude|². state is not modified.
func (s *Sampler) Sample(state *StateVector) int {
	return s.Draw(NewDistribution(state))
}

// Draw takes one outcome from a prepared distribution, for repeated shots.
func (s *Sampler) Draw(dist *Distribution) int {
	return dist.Draw(s.source.Float64())
}
