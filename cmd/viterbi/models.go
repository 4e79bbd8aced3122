package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teatak/viterbi/hmm"
	"github.com/teatak/viterbi/stat"
)

// modelFlags are shared by every model kind.
type modelFlags struct {
	states      []string
	priors      []float64
	transitions string
	workers     int
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.states, "states", nil, "State labels, in order")
	cmd.Flags().Float64SliceVar(&f.priors, "priors", nil, "Initial probability of each state")
	cmd.Flags().StringVar(&f.transitions, "transitions", "", "K x K transition matrix, e.g. '0.7,0.3;0.4,0.6'")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Goroutines used per time step")
	_ = cmd.MarkFlagRequired("states")
	_ = cmd.MarkFlagRequired("priors")
	_ = cmd.MarkFlagRequired("transitions")
}

func newDiscreteCmd() *cobra.Command {
	var (
		mf        modelFlags
		vocab     []string
		emissions string
	)

	cmd := &cobra.Command{
		Use:   "discrete [observation...]",
		Short: "Decode categorical observations using a likelihood table",
		Example: `  viterbi discrete --states off,on --priors 1,0 --transitions '0,1;1,0' \
    --vocab 0,1 --emissions '1,0;0,1' 0 1 0 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transitions, err := parseMatrix(mf.transitions)
			if err != nil {
				return fmt.Errorf("transitions: %w", err)
			}
			table, err := parseMatrix(emissions)
			if err != nil {
				return fmt.Errorf("emissions: %w", err)
			}

			m, err := hmm.FromDiscreteObservations(mf.states, mf.priors, transitions, vocab, table)
			if err != nil {
				return err
			}
			return decodeAll(cmd, args, m, parseWords, mf.workers)
		},
	}
	mf.register(cmd)
	cmd.Flags().StringSliceVar(&vocab, "vocab", nil, "Observation vocabulary, in table column order")
	cmd.Flags().StringVar(&emissions, "emissions", "", "K x N likelihood table, row per state, column per vocabulary entry")
	_ = cmd.MarkFlagRequired("vocab")
	_ = cmd.MarkFlagRequired("emissions")
	return cmd
}

func newGaussianCmd() *cobra.Command {
	var (
		mf      modelFlags
		means   []float64
		stddevs []float64
	)

	cmd := &cobra.Command{
		Use:   "gaussian [observation...]",
		Short: "Decode real-valued observations with a normal density per state",
		Example: `  viterbi gaussian --states low,high --priors 0.5,0.5 --transitions '0.7,0.3;0.3,0.7' \
    --means 0,10 --stddevs 1,1 -- 0.1 -0.3 9.8 10.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			transitions, err := parseMatrix(mf.transitions)
			if err != nil {
				return fmt.Errorf("transitions: %w", err)
			}
			if len(means) != len(mf.states) || len(stddevs) != len(mf.states) {
				return fmt.Errorf("%w: need one mean and one stddev per state, got %d and %d for %d states",
					hmm.ErrShapeMismatch, len(means), len(stddevs), len(mf.states))
			}

			emissions := make([]hmm.Emission[float64], len(mf.states))
			for s := range emissions {
				emissions[s] = hmm.Density(stat.NewNormal(means[s], stddevs[s]).Density)
			}

			m, err := hmm.NewModel(mf.states, mf.priors, transitions, emissions)
			if err != nil {
				return err
			}
			return decodeAll(cmd, args, m, parseFloats, mf.workers)
		},
	}
	mf.register(cmd)
	cmd.Flags().Float64SliceVar(&means, "means", nil, "Mean of each state's normal density")
	cmd.Flags().Float64SliceVar(&stddevs, "stddevs", nil, "Standard deviation of each state's normal density")
	_ = cmd.MarkFlagRequired("means")
	_ = cmd.MarkFlagRequired("stddevs")
	return cmd
}
