package hmm

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tables holds the Viterbi tables for one observation sequence.
type Tables struct {
	// Probs[s][t] is the probability of the best state sequence ending in s at step t.
	Probs *mat.Dense
	// Paths[s][t] is the state at step t-1 on that sequence. Paths[s][0] is unused.
	Paths [][]int
}

// Decode returns the most probable state sequence for the evidence and its probability.
func (m *Model[S, O]) Decode(evidence []O, opts ...Option) ([]S, float64, error) {
	o := applyOptions(opts)
	tables, err := m.buildTables(evidence, o)
	if err != nil {
		return nil, 0, err
	}

	last := mat.Col(nil, len(evidence)-1, tables.Probs)
	end := floats.MaxIdx(last)
	path := m.Reconstruct(tables.Paths, end)

	o.logger.Debug("decoded evidence",
		slog.Int("states", m.K()),
		slog.Int("steps", len(evidence)),
		slog.Int("end_state", end),
		slog.Float64("probability", last[end]))
	return path, last[end], nil
}

// BuildTables fills the probability and back-pointer tables for the evidence.
// Ties between predecessors resolve to the lowest state index.
func (m *Model[S, O]) BuildTables(evidence []O, opts ...Option) (*Tables, error) {
	return m.buildTables(evidence, applyOptions(opts))
}

func (m *Model[S, O]) buildTables(evidence []O, o options) (*Tables, error) {
	n := len(evidence)
	if n == 0 {
		return nil, ErrEmptyEvidence
	}
	k := m.K()

	tables := &Tables{
		Probs: mat.NewDense(k, n, nil),
		Paths: make([][]int, k),
	}
	for s := range tables.Paths {
		tables.Paths[s] = make([]int, n)
	}

	for s, e := range m.emissions {
		l, err := e.Likelihood(evidence[0])
		if err != nil {
			return nil, fmt.Errorf("step 0, state %d: %w", s, err)
		}
		tables.Probs.Set(s, 0, m.priors.AtVec(s)*l)
	}

	workers := max(1, min(o.workers, k))
	scratch := make([][]float64, workers)
	for w := range scratch {
		scratch[w] = make([]float64, k)
	}
	prev := make([]float64, k)

	for t := 1; t < n; t++ {
		mat.Col(prev, t-1, tables.Probs)
		err := forEachState(k, scratch, func(s int, p []float64) error {
			floats.MulTo(p, prev, m.into[s])
			best := floats.MaxIdx(p)
			l, err := m.emissions[s].Likelihood(evidence[t])
			if err != nil {
				return fmt.Errorf("step %d, state %d: %w", t, s, err)
			}
			tables.Probs.Set(s, t, p[best]*l)
			tables.Paths[s][t] = best
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return tables, nil
}

// forEachState calls fn for every state, splitting the states into one
// contiguous chunk per scratch buffer. Each state writes only its own cells.
func forEachState(k int, scratch [][]float64, fn func(s int, p []float64) error) error {
	if len(scratch) == 1 {
		for s := 0; s < k; s++ {
			if err := fn(s, scratch[0]); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	chunk := (k + len(scratch) - 1) / len(scratch)
	for w, lo := 0, 0; lo < k; w, lo = w+1, lo+chunk {
		hi := min(lo+chunk, k)
		p := scratch[w]
		g.Go(func() error {
			for s := lo; s < hi; s++ {
				if err := fn(s, p); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Reconstruct walks the back-pointers from end at the last step and returns the state labels.
// It panics if paths does not have one row per state or end is out of range.
func (m *Model[S, O]) Reconstruct(paths [][]int, end int) []S {
	if len(paths) != m.K() {
		panic(fmt.Sprintf("hmm: paths has %d rows, want %d", len(paths), m.K()))
	}
	n := len(paths[end])
	idx := make([]int, n)
	idx[n-1] = end
	for t := n - 1; t > 0; t-- {
		idx[t-1] = paths[idx[t]][t]
	}

	labels := make([]S, n)
	for t, s := range idx {
		labels[t] = m.states[s]
	}
	return labels
}
