// Package iojournal keeps records rejected during populate in a local
// SQLite file, so they can be inspected after the run.
package iojournal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE runs (
	run_id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL
);
CREATE TABLE parse_failures (
	line INTEGER,
	substance_key TEXT,
	raw_notation TEXT,
	reason TEXT
);
CREATE TABLE mapping_rejects (
	source TEXT,
	substance_key TEXT,
	value TEXT
);`

// Journal writes rejected records to SQLite. All writes of a run happen
// in one transaction that is committed by Close.
type Journal struct {
	db       *sql.DB
	tx       *sql.Tx
	failStmt *sql.Stmt
	rejStmt  *sql.Stmt

	failures int
	rejects  int
}

// Open recreates the journal file at path for a new run.
func Open(ctx context.Context, path, runID string) (*Journal, error) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, OpenError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	res := &Journal{db: db}
	if err = res.init(ctx, runID); err != nil {
		_ = db.Close()
		return nil, OpenError(path, err)
	}
	return res, nil
}

func (j *Journal) init(ctx context.Context, runID string) error {
	var err error
	if _, err = j.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create journal tables: %w", err)
	}
	_, err = j.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, started_at) VALUES (?, ?)",
		runID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if j.tx, err = j.db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	j.failStmt, err = j.tx.PrepareContext(ctx,
		`INSERT INTO parse_failures (line, substance_key, raw_notation, reason)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	j.rejStmt, err = j.tx.PrepareContext(ctx,
		`INSERT INTO mapping_rejects (source, substance_key, value)
		VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	return nil
}

// AddParseFailure saves a structure record that was dropped.
func (j *Journal) AddParseFailure(
	line int,
	key, notation string,
	reason error,
) error {
	msg := ""
	if reason != nil {
		msg = reason.Error()
	}
	if _, err := j.failStmt.Exec(line, key, notation, msg); err != nil {
		return WriteError(err)
	}
	j.failures++
	return nil
}

// AddMappingReject saves a mapping row that referred to an absent
// substance.
func (j *Journal) AddMappingReject(source, key, value string) error {
	if _, err := j.rejStmt.Exec(source, key, value); err != nil {
		return WriteError(err)
	}
	j.rejects++
	return nil
}

// Counts returns the number of saved parse failures and mapping rejects.
func (j *Journal) Counts() (failures, rejects int) {
	return j.failures, j.rejects
}

// Close commits saved records and closes the file.
func (j *Journal) Close() error {
	var err error
	if j.tx != nil {
		err = j.tx.Commit()
	}
	if cerr := j.db.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return WriteError(err)
	}
	return nil
}
