package hmm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func constant(v float64) Emission[int] {
	return Density(func(int) float64 { return v })
}

func constants(k int) []Emission[int] {
	emissions := make([]Emission[int], k)
	for s := range emissions {
		emissions[s] = constant(1)
	}
	return emissions
}

func square(k int) [][]float64 {
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k)
		m[i][i] = 1
	}
	return m
}

func TestNewModel_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name        string
		states      []int
		priors      []float64
		transitions [][]float64
		emissions   []Emission[int]
	}{
		{"wrong priors length", []int{1}, []float64{}, [][]float64{{1}}, constants(1)},
		{"wrong transitions dim", []int{1}, []float64{1}, [][]float64{{}}, constants(1)},
		{"too few transition rows", []int{0, 1}, []float64{1, 0}, [][]float64{{0, 1}}, constants(2)},
		{"ragged transitions", []int{0, 1}, []float64{1, 0}, [][]float64{{0, 1}, {1}}, constants(2)},
		{"too many emissions", []int{1}, []float64{1}, [][]float64{{1}}, constants(2)},
		{"nil emission", []int{0, 1}, []float64{1, 0}, square(2), []Emission[int]{constant(1), nil}},
		{"empty state space", nil, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(tt.states, tt.priors, tt.transitions, tt.emissions)
			assert.Nil(t, m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
		})
	}
}

func TestNewModel_ShapeMismatchEveryK(t *testing.T) {
	for k := 1; k <= 5; k++ {
		states := make([]int, k)

		_, err := NewModel(states, make([]float64, k+1), square(k), constants(k))
		assert.ErrorIs(t, err, ErrShapeMismatch, "priors, k=%d", k)

		_, err = NewModel(states, make([]float64, k), square(k+1), constants(k))
		assert.ErrorIs(t, err, ErrShapeMismatch, "transitions, k=%d", k)

		m, err := NewModel(states, make([]float64, k), square(k), constants(k))
		require.NoError(t, err, "k=%d", k)
		assert.Equal(t, k, m.K())
	}
}

func TestNewModel_ReportsEveryMismatch(t *testing.T) {
	_, err := NewModel([]string{"a", "b"}, []float64{1}, [][]float64{{1, 0, 0}, {0, 1, 0}}, constantsOf[string](2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priors has length 1, want 2")
	assert.Contains(t, err.Error(), "transitions row 0 has 3 columns, want 2")
	assert.Contains(t, err.Error(), "transitions row 1 has 3 columns, want 2")
}

func constantsOf[O any](k int) []Emission[O] {
	emissions := make([]Emission[O], k)
	for s := range emissions {
		emissions[s] = Density(func(O) float64 { return 1 })
	}
	return emissions
}

func TestModel_AccessorsReturnCopies(t *testing.T) {
	states := []string{"rain", "sun"}
	priors := []float64{0.6, 0.4}
	transitions := [][]float64{{0.7, 0.3}, {0.4, 0.6}}

	m, err := NewModel(states, priors, transitions, constantsOf[int](2))
	require.NoError(t, err)

	// Inputs are copied at construction.
	states[0] = "snow"
	priors[0] = 0
	transitions[0][0] = 0

	got := m.States()
	assert.Equal(t, []string{"rain", "sun"}, got)
	got[1] = "fog"
	assert.Equal(t, []string{"rain", "sun"}, m.States())

	p := m.Priors()
	assert.Equal(t, []float64{0.6, 0.4}, p)
	p[1] = 1
	assert.Equal(t, []float64{0.6, 0.4}, m.Priors())

	want := mat.NewDense(2, 2, []float64{0.7, 0.3, 0.4, 0.6})
	tr := m.Transitions()
	assert.True(t, mat.Equal(want, tr))
	tr.(*mat.Dense).Set(0, 1, 9)
	assert.True(t, mat.Equal(want, m.Transitions()))

	assert.Len(t, m.Emissions(), 2)
}
