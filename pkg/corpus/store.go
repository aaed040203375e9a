package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ErrNotFound is returned when a named corpus does not exist.
var ErrNotFound = errors.New("corpus not found")

// Info holds the metadata of a stored corpus.
type Info struct {
	Name    string    `json:"name"`
	Size    int       `json:"size"` // Length of the text in bytes
	Updated time.Time `json:"updated"`
}

// SetupSchema creates the corpus table. It is idempotent and safe to call on
// an already-initialized database.
func SetupSchema(db *sql.DB) error {
	const schemaDocuments = `
CREATE TABLE IF NOT EXISTS corpus_documents (
    name       TEXT PRIMARY KEY,
    body       TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`
	if _, err := db.Exec(schemaDocuments); err != nil {
		return fmt.Errorf("could not create corpus schema: %w", err)
	}
	return nil
}

// Store holds the database connection and the prepared statements used to
// manage corpora.
type Store struct {
	db         *sql.DB
	stmtPut    *sql.Stmt
	stmtAppend *sql.Stmt
	stmtGet    *sql.Stmt
	stmtList   *sql.Stmt
	stmtRemove *sql.Stmt
	logger     *slog.Logger
	now        func() time.Time
}

// NewStore creates a Store on db, which must already have the schema from
// SetupSchema. It returns an error if any statement fails to prepare.
func NewStore(db *sql.DB) (*Store, error) {
	stmtPut, err := db.Prepare(`INSERT INTO corpus_documents (name, body, updated_at) VALUES (?, ?, ?) ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at;`)
	if err != nil {
		return nil, err
	}

	stmtAppend, err := db.Prepare(`INSERT INTO corpus_documents (name, body, updated_at) VALUES (?, ?, ?) ON CONFLICT(name) DO UPDATE SET body = body || char(10) || excluded.body, updated_at = excluded.updated_at;`)
	if err != nil {
		return nil, err
	}

	stmtGet, err := db.Prepare(`SELECT body FROM corpus_documents WHERE name = ?;`)
	if err != nil {
		return nil, err
	}

	stmtList, err := db.Prepare(`SELECT name, length(CAST(body AS BLOB)), updated_at FROM corpus_documents ORDER BY name;`)
	if err != nil {
		return nil, err
	}

	stmtRemove, err := db.Prepare(`DELETE FROM corpus_documents WHERE name = ?;`)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:         db,
		stmtPut:    stmtPut,
		stmtAppend: stmtAppend,
		stmtGet:    stmtGet,
		stmtList:   stmtList,
		stmtRemove: stmtRemove,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}, nil
}

// Close releases all prepared statements held by the Store.
func (s *Store) Close() {
	_ = s.stmtPut.Close()
	_ = s.stmtAppend.Close()
	_ = s.stmtGet.Close()
	_ = s.stmtList.Close()
	_ = s.stmtRemove.Close()
}

// SetLogger sets the logger for the Store. By default, all logs are discarded.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Put stores text under name, replacing any existing corpus of that name.
func (s *Store) Put(ctx context.Context, name, text string) error {
	if name == "" {
		return errors.New("corpus name must not be empty")
	}
	if _, err := s.stmtPut.ExecContext(ctx, name, text, s.now().Unix()); err != nil {
		return fmt.Errorf("could not store corpus '%s': %w", name, err)
	}
	s.logger.InfoContext(ctx, "Corpus stored",
		slog.String("corpus", name),
		slog.Int("bytes", len(text)),
	)
	return nil
}

// Append adds text to the end of the named corpus on a new line, creating the
// corpus if it does not exist yet.
func (s *Store) Append(ctx context.Context, name, text string) error {
	if name == "" {
		return errors.New("corpus name must not be empty")
	}
	if _, err := s.stmtAppend.ExecContext(ctx, name, text, s.now().Unix()); err != nil {
		return fmt.Errorf("could not append to corpus '%s': %w", name, err)
	}
	s.logger.InfoContext(ctx, "Corpus appended",
		slog.String("corpus", name),
		slog.Int("bytes", len(text)),
	)
	return nil
}

// Get returns the text of the named corpus, or ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var body string
	err := s.stmtGet.QueryRowContext(ctx, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
		}
		return "", fmt.Errorf("could not load corpus '%s': %w", name, err)
	}
	return body, nil
}

// Open returns a reader over the text of the named corpus.
func (s *Store) Open(ctx context.Context, name string) (io.Reader, error) {
	body, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(body), nil
}

// List returns the metadata of every stored corpus, ordered by name.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.stmtList.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	infos := make([]Info, 0)
	for rows.Next() {
		var info Info
		var updated int64
		if err = rows.Scan(&info.Name, &info.Size, &updated); err != nil {
			return nil, err
		}
		info.Updated = time.Unix(updated, 0)
		infos = append(infos, info)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return infos, nil
}

// Remove deletes the named corpus, or returns ErrNotFound.
func (s *Store) Remove(ctx context.Context, name string) error {
	res, err := s.stmtRemove.ExecContext(ctx, name)
	if err != nil {
		return fmt.Errorf("could not remove corpus '%s': %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	s.logger.InfoContext(ctx, "Corpus removed", slog.String("corpus", name))
	return nil
}
