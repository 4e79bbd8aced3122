package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teatak/viterbi/hmm"
)

// decodeAll decodes the arguments as one sequence, or each stdin line when there are none.
func decodeAll[O any](cmd *cobra.Command, args []string, m *hmm.Model[string, O], parse func([]string) ([]O, error), workers int) error {
	process := func(words []string) error {
		evidence, err := parse(words)
		if err != nil {
			return err
		}
		path, prob, err := m.Decode(evidence, hmm.WithWorkers(workers), hmm.WithLogger(slog.Default()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", strings.Join(path, " / "), prob)
		return nil
	}

	if len(args) > 0 {
		return process(splitWords(strings.Join(args, " ")))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		words := splitWords(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if err := process(words); err != nil {
			slog.Error("decode failed", slog.String("input", scanner.Text()), slog.Any("error", err))
		}
	}
	return scanner.Err()
}
