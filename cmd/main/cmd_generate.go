package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CTAG07/Ngramist/pkg/markov"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var generateFlags = struct {
	order  int
	words  int
	seed   uint64
	start  string
	prune  int
	output string
}{}

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Train a model on the input and print generated text",
		Long: `
Train an n-gram model on the input and print a generated sequence of words.
The input is a file path, "-" for standard input (the default), or
"corpus:<name>" for a corpus saved with "ngramist corpus add".`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runGenerate,
	}
	cmd.Flags().IntVarP(&generateFlags.order, "order", "n", 0, "number of words in each window (default from config)")
	cmd.Flags().IntVarP(&generateFlags.words, "words", "w", 0, "number of words to generate after the seed (default from config)")
	cmd.Flags().Uint64Var(&generateFlags.seed, "seed", 0, "random seed for reproducible output, 0 for a random run")
	cmd.Flags().StringVar(&generateFlags.start, "start", "", "seed text to continue instead of a random window")
	cmd.Flags().IntVar(&generateFlags.prune, "prune", 0, "drop continuations seen this many times or fewer")
	cmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "write the result to this file instead of stdout")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	order := a.config.DefaultOrder
	if cmd.Flags().Changed("order") {
		order = generateFlags.order
	}
	words := a.config.DefaultWords
	if cmd.Flags().Changed("words") {
		words = generateFlags.words
	}
	if order < 1 {
		return fmt.Errorf("%w (got %d)", markov.ErrInvalidOrder, order)
	}
	if words < 0 {
		return fmt.Errorf("%w (got %d)", markov.ErrInvalidLength, words)
	}
	if generateFlags.prune < 0 {
		return fmt.Errorf("%w: prune threshold must not be negative (got %d)", markov.ErrConfiguration, generateFlags.prune)
	}

	tokenizer := markov.NewWhitespaceTokenizer()
	model, err := a.trainInput(cmd, args, tokenizer, order)
	if err != nil {
		return err
	}
	if generateFlags.prune > 0 {
		model = model.Prune(generateFlags.prune)
	}

	opts := []markov.Option{markov.WithLogger(a.logger)}
	if generateFlags.seed != 0 {
		opts = append(opts, markov.WithSource(markov.NewSource(generateFlags.seed)))
	}
	g := markov.NewGenerator(model, opts...)

	var tokens []string
	if generateFlags.start != "" {
		tokens, err = g.GenerateFrom(markov.Tokenize(generateFlags.start), words)
	} else {
		tokens, err = g.Generate(words)
	}
	if errors.Is(err, markov.ErrEmptyModel) {
		return fmt.Errorf("%w: the input needs more than %d words", err, order)
	}
	if err != nil {
		return err
	}

	text := tokenizer.Join(tokens) + "\n"
	if generateFlags.output != "" {
		if err = atomic.WriteFile(generateFlags.output, strings.NewReader(text)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		a.logger.Info("Output written",
			slog.String("path", generateFlags.output),
			slog.Int("words", len(tokens)),
		)
		return nil
	}
	_, err = io.WriteString(cmd.OutOrStdout(), text)
	return err
}

// trainInput opens the command's input and trains a model of the given order on it.
func (a *app) trainInput(cmd *cobra.Command, args []string, tokenizer markov.Tokenizer, order int) (*markov.Model, error) {
	input := stdinSource
	if len(args) == 1 {
		input = args[0]
	}

	r, closeInput, err := a.openInput(cmd.Context(), input, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer closeInput()

	model, err := markov.TrainStream(tokenizer.NewStream(r), order)
	if err != nil {
		return nil, fmt.Errorf("failed to train on %s: %w", input, err)
	}

	stats := model.Stats()
	a.logger.Debug("Training completed",
		slog.String("input", input),
		slog.Int("order", stats.Order),
		slog.Int("windows", stats.Windows),
		slog.Int("observations", stats.Observations),
	)
	return model, nil
}
