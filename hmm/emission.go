package hmm

// Emission evaluates the likelihood of an observation while in one state.
// Implementations must return a non-negative value.
type Emission[O any] interface {
	Likelihood(obs O) (float64, error)
}

// EmissionFunc adapts a function to the Emission interface.
type EmissionFunc[O any] func(obs O) (float64, error)

// Likelihood calls f(obs).
func (f EmissionFunc[O]) Likelihood(obs O) (float64, error) {
	return f(obs)
}

// Density wraps an emission that cannot fail, such as a probability density.
func Density[O any](f func(obs O) float64) Emission[O] {
	return EmissionFunc[O](func(obs O) (float64, error) {
		return f(obs), nil
	})
}
