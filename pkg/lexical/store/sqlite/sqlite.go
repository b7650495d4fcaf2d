package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/store"
)

// timeLayout keeps a fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	system TEXT NOT NULL,
	created_at TEXT NOT NULL,
	header TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_rows (
	run_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	cells TEXT NOT NULL,
	PRIMARY KEY(run_id, idx),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run and all its rows
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: %w: empty id", internalerr.ErrInvalidInput)
	}
	header, err := json.Marshal(r.Header)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO runs (id, system, created_at, header)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	system=excluded.system,
	created_at=excluded.created_at,
	header=excluded.header;
`
	if _, err := tx.ExecContext(ctx, stmt, r.ID, r.System, r.CreatedAt.UTC().Format(timeLayout), string(header)); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM run_rows WHERE run_id = ?`, r.ID); err != nil {
		return err
	}

	ins, err := tx.PrepareContext(ctx, `INSERT INTO run_rows (run_id, idx, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer ins.Close()
	for i, row := range r.Rows {
		cells, err := json.Marshal(row)
		if err != nil {
			return err
		}
		if _, err := ins.ExecContext(ctx, r.ID, i, string(cells)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	var (
		r       store.Run
		created string
		header  string
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, system, created_at, header FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.System, &created, &header)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return store.Run{}, false, err
	}
	if err := json.Unmarshal([]byte(header), &r.Header); err != nil {
		return store.Run{}, false, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT cells FROM run_rows WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return store.Run{}, false, err
	}
	defer rows.Close()
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return store.Run{}, false, err
		}
		var row []string
		if err := json.Unmarshal([]byte(cells), &row); err != nil {
			return store.Run{}, false, err
		}
		r.Rows = append(r.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns run summaries, most recent first
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT r.id, r.system, r.created_at, COUNT(rr.idx)
FROM runs r
LEFT JOIN run_rows rr ON rr.run_id = r.id
GROUP BY r.id
ORDER BY r.created_at DESC, r.id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.RunSummary
	for rows.Next() {
		var (
			sum     store.RunSummary
			created string
		)
		if err := rows.Scan(&sum.ID, &sum.System, &created, &sum.Words); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// DeleteRun removes a run and its rows
func (s *sqliteStore) DeleteRun(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete run %s: %w", id, internalerr.ErrNotFound)
	}
	return nil
}
