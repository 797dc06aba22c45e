package results

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps batch runs and their translations in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and makes sure the
// schema exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			started_at text NOT NULL,
			translator text NOT NULL,
			method text NOT NULL,
			source_lang text NOT NULL,
			target_lang text NOT NULL,
			examples integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS translations (
			run_id text NOT NULL REFERENCES runs(id),
			idx integer NOT NULL,
			sentence text NOT NULL,
			reference text NOT NULL,
			translation text NOT NULL,
			error text NOT NULL,
			cached integer NOT NULL,
			PRIMARY KEY (run_id, idx)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_translations_sentence ON translations (sentence)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// SaveRun stores run and its results in one transaction.
func (s *SQLiteStore) SaveRun(ctx context.Context, run Run, results []Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, translator, method, source_lang, target_lang, examples)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.Translator, run.Method,
		run.Source, run.Target, run.Examples)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO translations (run_id, idx, sentence, reference, translation, error, cached)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		if _, err := stmt.ExecContext(ctx, run.ID, r.Index, r.Sentence, r.Reference,
			r.Translation, errText, r.Cached); err != nil {
			return fmt.Errorf("failed to insert translation %d: %w", r.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}
	return nil
}

// StoredTranslation is a translation row read back from the database.
type StoredTranslation struct {
	Index       int
	Sentence    string
	Reference   string
	Translation string
	Error       string
	Cached      bool
}

// Translations returns the rows of a run in batch order.
func (s *SQLiteStore) Translations(ctx context.Context, runID string) ([]StoredTranslation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, sentence, reference, translation, error, cached
		 FROM translations WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}
	defer rows.Close()

	var out []StoredTranslation
	for rows.Next() {
		var st StoredTranslation
		if err := rows.Scan(&st.Index, &st.Sentence, &st.Reference, &st.Translation, &st.Error, &st.Cached); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
