package hmm

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"
)

// Model is an immutable hidden Markov model over state labels S and observations O.
type Model[S comparable, O any] struct {
	states    []S
	priors    *mat.VecDense
	trans     *mat.Dense
	emissions []Emission[O]

	// into[s] is column s of trans: the probability of reaching s from each state.
	into [][]float64
}

// NewModel validates the parameters and builds a model.
// transitions[i][j] is the probability of moving from state i to state j.
func NewModel[S comparable, O any](states []S, priors []float64, transitions [][]float64, emissions []Emission[O]) (*Model[S, O], error) {
	k := len(states)
	if err := checkShape(k, priors, transitions, emissions); err != nil {
		return nil, err
	}

	m := &Model[S, O]{
		states:    append([]S(nil), states...),
		priors:    mat.NewVecDense(k, append([]float64(nil), priors...)),
		trans:     mat.NewDense(k, k, nil),
		emissions: append([]Emission[O](nil), emissions...),
		into:      make([][]float64, k),
	}
	for i, row := range transitions {
		m.trans.SetRow(i, row)
	}
	for s := 0; s < k; s++ {
		m.into[s] = mat.Col(nil, s, m.trans)
	}
	return m, nil
}

func checkShape[O any](k int, priors []float64, transitions [][]float64, emissions []Emission[O]) error {
	if k == 0 {
		return fmt.Errorf("%w: state space is empty", ErrShapeMismatch)
	}

	var errs *multierror.Error
	if len(priors) != k {
		errs = multierror.Append(errs, fmt.Errorf("%w: priors has length %d, want %d", ErrShapeMismatch, len(priors), k))
	}
	if len(transitions) != k {
		errs = multierror.Append(errs, fmt.Errorf("%w: transitions has %d rows, want %d", ErrShapeMismatch, len(transitions), k))
	}
	for i, row := range transitions {
		if len(row) != k {
			errs = multierror.Append(errs, fmt.Errorf("%w: transitions row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), k))
		}
	}
	if len(emissions) != k {
		errs = multierror.Append(errs, fmt.Errorf("%w: %d emissions, want %d", ErrShapeMismatch, len(emissions), k))
	}
	for s, e := range emissions {
		if e == nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: emission %d is nil", ErrShapeMismatch, s))
		}
	}
	return errs.ErrorOrNil()
}

// K returns the number of states.
func (m *Model[S, O]) K() int {
	return len(m.states)
}

// States returns a copy of the state labels.
func (m *Model[S, O]) States() []S {
	return append([]S(nil), m.states...)
}

// Priors returns a copy of the initial state probabilities.
func (m *Model[S, O]) Priors() []float64 {
	return mat.Col(nil, 0, m.priors)
}

// Transitions returns a copy of the K x K transition matrix.
func (m *Model[S, O]) Transitions() mat.Matrix {
	return mat.DenseCopyOf(m.trans)
}

// Emissions returns a copy of the per-state emission slice.
func (m *Model[S, O]) Emissions() []Emission[O] {
	return append([]Emission[O](nil), m.emissions...)
}
