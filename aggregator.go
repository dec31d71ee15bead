package qsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// Tally maps every n-bit basis string to the number of shots that landed on it.
type Tally map[string]int

// Keys returns the basis strings in ascending order.
func (t Tally) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (t Tally) Total() int {
	var total int
	for _, v := range t {
		total += v
	}
	return total
}

// String renders the tally key-sorted, one `"key": count` entry per line.
func (t Tally) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range t.Keys() {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "\n\t%q: %d", k, t[k])
	}
	b.WriteString("\n}")
	return b.String()
}

// BasisLabel formats index as an n-bit zero-padded binary string.
func BasisLabel(index, n int) string {
	return fmt.Sprintf("%0*b", n, index)
}

/*
Aggregator repeats measurement over many shots and tallies the outcomes.
Shots are cut into batches of Config.BatchSize. Batch b always draws from
NewSource(b), so the tally for a given seed does not depend on whether the
batches ran on the pool or inline.
*/
type Aggregator struct {
	pool   *Pool
	config *Config

	// NewSource returns the uniform source for one batch.
	NewSource func(stream uint64) Source
}

// NewAggregator samples on pool when it is non-nil. A zero seed picks a random one.
func NewAggregator(pool *Pool, config *Config, seed uint64) *Aggregator {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &Aggregator{
		pool:   pool,
		config: config.orDefault(),
		NewSource: func(stream uint64) Source {
			return NewSource(seed, stream)
		},
	}
}

/*
Tally draws shots independent outcomes from the same unmodified state and
counts them. Every one of the 2^n basis strings is present in the result,
and the counts sum to shots.
*/
func (a *Aggregator) Tally(ctx context.Context, state *StateVector, shots int) (Tally, error) {
	if state == nil {
		return nil, ErrInvalidQubitCount
	}

	if shots < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShots, shots)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dist := NewDistribution(state)
	counts := make([]int, dist.Len())
	batches := (shots + a.config.BatchSize - 1) / a.config.BatchSize

	errnie.Info("Aggregator.Tally - qubits %d, shots %d, batches %d", state.NumQubits, shots, batches)

	if a.pool == nil || batches <= 1 {
		for b := 0; b < batches; b++ {
			a.draw(dist, b, a.batchShots(b, shots), counts)
		}
		return a.label(counts, state.NumQubits), nil
	}

	if err := a.drawOnPool(ctx, dist, shots, batches, counts); err != nil {
		return nil, err
	}

	return a.label(counts, state.NumQubits), nil
}

func (a *Aggregator) drawOnPool(ctx context.Context, dist *Distribution, shots, batches int, counts []int) error {
	runID := uuid.NewString()
	results := make([]chan Result, batches)

	for b := 0; b < batches; b++ {
		batch, size := b, a.batchShots(b, shots)
		results[b] = a.pool.Schedule(fmt.Sprintf("tally-%s-%d", runID, b), func() (any, error) {
			partial := make([]int, dist.Len())
			a.draw(dist, batch, size, partial)
			return partial, nil
		})
	}

	for _, ch := range results {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.pool.Done():
			return fmt.Errorf("sampling pool stopped: %w", a.pool.ctx.Err())
		case res := <-ch:
			if res.Err != nil {
				return res.Err
			}
			for i, c := range res.Value.([]int) {
				counts[i] += c
			}
		}
	}

	return nil
}

func (a *Aggregator) batchShots(b, shots int) int {
	return min(a.config.BatchSize, shots-b*a.config.BatchSize)
}

func (a *Aggregator) draw(dist *Distribution, batch, shots int, counts []int) {
	sampler := NewSampler(a.NewSource(uint64(batch)))
	for i := 0; i < shots; i++ {
		counts[sampler.Draw(dist)]++
	}
}

func (a *Aggregator) label(counts []int, n int) Tally {
	tally := make(Tally, len(counts))
	for i, c := range counts {
		tally[BasisLabel(i, n)] = c
	}
	return tally
}
