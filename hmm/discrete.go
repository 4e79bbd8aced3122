package hmm

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// FromDiscreteObservations builds a model whose emissions look observations up in a table.
// table[s][n] is the likelihood of observing observations[n] while in state s.
// An observation outside the vocabulary fails at decode time with ErrUnknownObservation.
func FromDiscreteObservations[S comparable, O comparable](states []S, priors []float64, transitions [][]float64, observations []O, table [][]float64) (*Model[S, O], error) {
	if err := checkTable(len(states), len(observations), table); err != nil {
		return nil, err
	}

	index := make(map[O]int, len(observations))
	for n, obs := range observations {
		// First occurrence wins.
		if _, ok := index[obs]; !ok {
			index[obs] = n
		}
	}

	emissions := make([]Emission[O], len(states))
	for s := range states {
		row := append([]float64(nil), table[s]...)
		emissions[s] = EmissionFunc[O](func(obs O) (float64, error) {
			n, ok := index[obs]
			if !ok {
				return 0, fmt.Errorf("%w: %v", ErrUnknownObservation, obs)
			}
			return row[n], nil
		})
	}
	return NewModel(states, priors, transitions, emissions)
}

func checkTable(k, n int, table [][]float64) error {
	var errs *multierror.Error
	if len(table) != k {
		errs = multierror.Append(errs, fmt.Errorf("%w: emission table has %d rows, want %d", ErrShapeMismatch, len(table), k))
	}
	for s, row := range table {
		if len(row) != n {
			errs = multierror.Append(errs, fmt.Errorf("%w: emission table row %d has %d columns, want %d", ErrShapeMismatch, s, len(row), n))
		}
	}
	return errs.ErrorOrNil()
}
