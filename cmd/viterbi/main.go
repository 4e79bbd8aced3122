package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "viterbi",
		Short: "Decode the most probable hidden state sequence of a hidden Markov model",
		Long: `Builds a hidden Markov model from flags and prints the most probable state
sequence for each observation sequence, followed by its probability.

Observations are taken from the arguments. Without arguments every line read
from stdin is decoded as its own sequence (Ctrl+D to exit).

Matrices are written row by row: rows separated by ';', entries by ','.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decode diagnostics to stderr")

	root.AddCommand(newDiscreteCmd(), newGaussianCmd())
	return root
}
