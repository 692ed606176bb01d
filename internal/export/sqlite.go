package export

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aweller/bloomport/internal/bloom"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS mindful_sessions (
    app_name        TEXT NOT NULL,
    start_time      TEXT NOT NULL,
    duration        INTEGER NOT NULL,
    dropped_seconds INTEGER NOT NULL
);
`

// WriteSQLite writes the artifact as a SQLite database at path, one row
// per non-zero-minute record in the mindful_sessions table. The table is
// rewritten on every run; the file is an export artifact, not a store.
func WriteSQLite(path string, records []bloom.Record) (int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("%w: open db: %v", ErrWrite, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return 0, fmt.Errorf("%w: init schema: %v", ErrWrite, err)
	}
	if _, err := db.Exec("DELETE FROM mindful_sessions"); err != nil {
		return 0, fmt.Errorf("%w: reset table: %v", ErrWrite, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %v", ErrWrite, err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO mindful_sessions (app_name, start_time, duration, dropped_seconds)
		 VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: prepare: %v", ErrWrite, err)
	}
	defer stmt.Close()

	rows := 0
	for _, r := range records {
		if r.MeditationMinutes == 0 {
			continue
		}
		_, err := stmt.Exec(
			r.AppName,
			r.OccurredAt.Format(time.RFC3339),
			r.MeditationMinutes,
			r.DroppedSeconds,
		)
		if err != nil {
			return rows, fmt.Errorf("%w: insert: %v", ErrWrite, err)
		}
		rows++
	}

	if err := tx.Commit(); err != nil {
		return rows, fmt.Errorf("%w: commit: %v", ErrWrite, err)
	}
	return rows, nil
}
