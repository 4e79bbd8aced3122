package stat

import "gonum.org/v1/gonum/stat/distuv"

// Normal is a normal distribution usable as a continuous emission likelihood.
type Normal struct {
	Mean              float64
	StandardDeviation float64
}

// Gaussian is another name for Normal.
type Gaussian = Normal

// NewNormal creates a normal distribution with the given mean and standard deviation.
func NewNormal(mean, standardDeviation float64) Normal {
	return Normal{Mean: mean, StandardDeviation: standardDeviation}
}

// Variance returns the squared standard deviation.
func (n Normal) Variance() float64 {
	return n.StandardDeviation * n.StandardDeviation
}

// Density evaluates the probability density at x.
func (n Normal) Density(x float64) float64 {
	return distuv.Normal{Mu: n.Mean, Sigma: n.StandardDeviation}.Prob(x)
}
