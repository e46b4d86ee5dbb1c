// internal/results/results.go
//
// SQLite-backed log of finished games. The live session map stays the
// source of truth while a game is running; a row lands here only once a
// game reaches a terminal state, so losing the database never corrupts
// play. Writes are best-effort from the HTTP layer.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	game_id     TEXT PRIMARY KEY,
	mode        TEXT NOT NULL,
	status      TEXT NOT NULL,
	rounds      INTEGER NOT NULL,
	winners     INTEGER NOT NULL,
	finished_at TEXT NOT NULL
);`

// Result is one finished game.
type Result struct {
	GameID     string    `json:"gameId"`
	Mode       string    `json:"mode"`
	Status     string    `json:"status"`
	Rounds     int       `json:"rounds"`
	Winners    int       `json:"winners"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Recorder writes and reads the results log.
type Recorder struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite results database.
//
//   - Ensures the parent directory exists for relative DSNs (./data/x.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Creates the results table when absent.
func Open(dsn string) (*Recorder, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create game_results: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Recorder) Close() error { return r.db.Close() }

// Record inserts a finished game. Re-recording the same game id is a no-op.
func (r *Recorder) Record(ctx context.Context, res Result) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO game_results
			(game_id, mode, status, rounds, winners, finished_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		res.GameID, res.Mode, res.Status, res.Rounds, res.Winners,
		res.FinishedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// Recent returns the most recently finished games, newest first.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT game_id, mode, status, rounds, winners, finished_at
		FROM game_results
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var res Result
		var finished string
		if err := rows.Scan(&res.GameID, &res.Mode, &res.Status, &res.Rounds, &res.Winners, &finished); err != nil {
			return nil, err
		}
		res.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		out = append(out, res)
	}
	return out, rows.Err()
}
