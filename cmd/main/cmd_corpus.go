package main

import (
	"fmt"
	"io"
	"time"

	"github.com/CTAG07/Ngramist/pkg/corpus"
	"github.com/spf13/cobra"
)

func newCorpusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage training corpora saved in the database",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name> [input]",
			Short: "Save the input as a named corpus, replacing any existing one",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *corpus.Store) error {
					text, err := a.readInput(cmd, args[1:])
					if err != nil {
						return err
					}
					return store.Put(cmd.Context(), args[0], text)
				})
			},
		},
		&cobra.Command{
			Use:   "append <name> [input]",
			Short: "Append the input to a named corpus",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *corpus.Store) error {
					text, err := a.readInput(cmd, args[1:])
					if err != nil {
						return err
					}
					return store.Append(cmd.Context(), args[0], text)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List saved corpora",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.withStore(func(store *corpus.Store) error {
					infos, err := store.List(cmd.Context())
					if err != nil {
						return err
					}
					for _, info := range infos {
						if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", info.Name, info.Size, info.Updated.UTC().Format(time.RFC3339)); err != nil {
							return err
						}
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Print a saved corpus",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *corpus.Store) error {
					text, err := store.Get(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: "Delete a saved corpus",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withStore(func(store *corpus.Store) error {
					return store.Remove(cmd.Context(), args[0])
				})
			},
		},
	)
	return cmd
}

// withStore opens the corpus store for the duration of fn.
func (a *app) withStore(fn func(*corpus.Store) error) error {
	store, closeStore, err := openStore(a.config.DatabasePath, a.logger)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

// readInput reads the whole of the input named by the optional argument.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	input := stdinSource
	if len(args) == 1 {
		input = args[0]
	}

	r, closeInput, err := a.openInput(cmd.Context(), input, cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	defer closeInput()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", input, err)
	}
	return string(data), nil
}
