package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CTAG07/Ngramist/pkg/corpus"
)

const (
	// stdinSource is the input name that reads from standard input.
	stdinSource = "-"
	// corpusPrefix marks an input name as a corpus stored in the database.
	corpusPrefix = "corpus:"
)

// openStore opens the corpus database, creating its directory and schema on
// first use. The returned function closes the store and the database.
func openStore(path string, logger *slog.Logger) (*corpus.Store, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := initDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to prepare corpus store: %w", err)
	}
	store.SetLogger(logger)

	return store, func() {
		store.Close()
		_ = db.Close()
	}, nil
}

// openInput resolves an input name to a reader: "-" is standard input,
// "corpus:<name>" is a stored corpus, anything else is a file path. The
// returned function releases the input.
func (a *app) openInput(ctx context.Context, name string, stdin io.Reader) (io.Reader, func(), error) {
	switch {
	case name == stdinSource:
		return stdin, func() {}, nil

	case strings.HasPrefix(name, corpusPrefix):
		store, closeStore, err := openStore(a.config.DatabasePath, a.logger)
		if err != nil {
			return nil, nil, err
		}
		r, err := store.Open(ctx, strings.TrimPrefix(name, corpusPrefix))
		if err != nil {
			closeStore()
			return nil, nil, err
		}
		return r, closeStore, nil

	default:
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}
}
