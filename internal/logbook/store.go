// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logbook persists converted contest logs in a local SQLite
// database so past contacts stay searchable after conversion. Each
// ingested file becomes one log row plus its QSOs, with an FTS5 index
// over callsigns and exchanges.
package logbook

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ertig3/cabrillo2adif/internal/adif"
	"github.com/ertig3/cabrillo2adif/internal/band"
	"github.com/ertig3/cabrillo2adif/internal/cabrillo"
	"github.com/ertig3/cabrillo2adif/pkg/types"
)

const dbFile = "logbook.db"

// Store manages the logbook SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the logbook database at cfg.Dir/logbook.db,
// creating the schema on first use.
func NewStore(cfg types.LogbookConfig) (*Store, error) {
	if cfg.Dir == "" {
		cfg.Dir = "logbook"
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating logbook directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening logbook database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL UNIQUE,
			contest TEXT,
			callsign TEXT,
			qso_count INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS qsos (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			log_id INTEGER NOT NULL REFERENCES logs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			call TEXT NOT NULL,
			band TEXT,
			mode TEXT,
			qso_date TEXT,
			time_on TEXT,
			freq TEXT,
			rst_sent TEXT,
			rst_rcvd TEXT,
			exch_sent TEXT,
			exch_rcvd TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_qsos_log_id ON qsos(log_id)`,
		`CREATE INDEX IF NOT EXISTS idx_qsos_band ON qsos(band)`,
		`CREATE INDEX IF NOT EXISTS idx_qsos_mode ON qsos(mode)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table over callsigns and exchanges, with triggers
	// keeping it in sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='qsos_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE qsos_fts USING fts5(call, exch_sent, exch_rcvd, content=qsos, content_rowid=rowid)`,
			`CREATE TRIGGER qsos_ai AFTER INSERT ON qsos BEGIN
				INSERT INTO qsos_fts(rowid, call, exch_sent, exch_rcvd)
				VALUES (new.rowid, new.call, new.exch_sent, new.exch_rcvd);
			END`,
			`CREATE TRIGGER qsos_ad AFTER DELETE ON qsos BEGIN
				INSERT INTO qsos_fts(qsos_fts, rowid, call, exch_sent, exch_rcvd)
				VALUES('delete', old.rowid, old.call, old.exch_sent, old.exch_rcvd);
			END`,
			`CREATE TRIGGER qsos_au AFTER UPDATE ON qsos BEGIN
				INSERT INTO qsos_fts(qsos_fts, rowid, call, exch_sent, exch_rcvd)
				VALUES('delete', old.rowid, old.call, old.exch_sent, old.exch_rcvd);
				INSERT INTO qsos_fts(rowid, call, exch_sent, exch_rcvd)
				VALUES (new.rowid, new.call, new.exch_sent, new.exch_rcvd);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Ingest stores a converted log. Re-ingesting the same source path
// replaces the earlier entry. It returns the number of QSOs stored.
func (s *Store) Ingest(ctx context.Context, sourcePath string, log *cabrillo.Log) (int, error) {
	records := log.Records()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Replace any previous ingest of the same file; the FK cascade
	// removes its QSOs and the triggers clean the FTS index.
	if _, err := tx.ExecContext(ctx, `DELETE FROM logs WHERE source_path = ?`, sourcePath); err != nil {
		return 0, fmt.Errorf("removing previous log: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO logs (source_path, contest, callsign, qso_count, converted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sourcePath, log.Info.Contest, log.Info.Callsign, len(records),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting log: %w", err)
	}
	logID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolving log id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO qsos (log_id, seq, call, band, mode, qso_date, time_on, freq,
			rst_sent, rst_rcvd, exch_sent, exch_rcvd)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range records {
		bandName := ""
		if b, ok := band.FromFrequency(q.Frequency); ok {
			bandName = string(b)
		}
		mode, _ := adif.MapMode(q.Mode)

		if _, err := stmt.ExecContext(ctx,
			logID, i+1, q.DXCall, bandName, mode, q.Date, q.Time, q.Frequency,
			q.RSTSent, q.RSTRcvd, q.ExchangeSent, q.ExchangeRcvd,
		); err != nil {
			return 0, fmt.Errorf("inserting QSO %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(records), nil
}
