package main

import (
	"encoding/json"
	"fmt"

	"github.com/CTAG07/Ngramist/pkg/markov"
	"github.com/spf13/cobra"
)

var statsFlags = struct {
	order int
	json  bool
}{}

func newStatsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Train a model on the input and print its statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := a.config.DefaultOrder
			if cmd.Flags().Changed("order") {
				order = statsFlags.order
			}
			if order < 1 {
				return fmt.Errorf("%w (got %d)", markov.ErrInvalidOrder, order)
			}

			model, err := a.trainInput(cmd, args, markov.NewWhitespaceTokenizer(), order)
			if err != nil {
				return err
			}
			stats := model.Stats()

			out := cmd.OutOrStdout()
			if statsFlags.json {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			}
			_, err = fmt.Fprintf(out, "order:         %d\nwindows:       %d\nvocabulary:    %d\nobservations:  %d\nmax branching: %d\n",
				stats.Order, stats.Windows, stats.Vocabulary, stats.Observations, stats.MaxBranching)
			return err
		},
	}
	cmd.Flags().IntVarP(&statsFlags.order, "order", "n", 0, "number of words in each window (default from config)")
	cmd.Flags().BoolVar(&statsFlags.json, "json", false, "print the statistics as JSON")
	return cmd
}
