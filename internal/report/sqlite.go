// internal/report/sqlite.go
package report

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"editfa/pkg/api"
)

const createOutcomes = `CREATE TABLE IF NOT EXISTS edit_outcomes (
	variant     TEXT    NOT NULL,
	manifest_row INTEGER NOT NULL,
	target_id   TEXT    NOT NULL,
	position    INTEGER NOT NULL,
	status      TEXT    NOT NULL,
	sequence_id TEXT,
	candidates  INTEGER NOT NULL,
	idx         INTEGER NOT NULL,
	site_offset INTEGER NOT NULL,
	previous    TEXT,
	base        TEXT,
	PRIMARY KEY (variant, manifest_row)
)`

func init() {
	Register("sqlite", WriteSQLite)
}

// WriteSQLite replaces the edit_outcomes table in the database at path with
// rows, in a single transaction.
func WriteSQLite(path string, rows []api.OutcomeV1) (retErr error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()
	if _, err := db.Exec(createOutcomes); err != nil {
		return fmt.Errorf("create edit_outcomes table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.Exec(`DELETE FROM edit_outcomes`); err != nil {
		return fmt.Errorf("clear edit_outcomes: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO edit_outcomes
		(variant, manifest_row, target_id, position, status, sequence_id, candidates, idx, site_offset, previous, base)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for _, r := range rows {
		if _, err := stmt.Exec(r.Variant, r.Row, r.TargetID, r.Position, r.Status,
			nullable(r.SequenceID), r.Candidates, r.Index, r.Offset, nullable(r.Previous), nullable(r.Base)); err != nil {
			return fmt.Errorf("insert row %d (%s): %w", r.Row, r.Variant, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
