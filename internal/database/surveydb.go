package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wikilex/wikilex/internal/model"
)

// SurveyDB provides SQLite-based storage for survey run history.
//
// Design decision: History lives in SQLite while the aggregates themselves
// stay in flat text files. The word lists are line-oriented and reloaded
// wholesale, but history grows run by run and is queried by recency, which
// is what a database is for.
type SurveyDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SurveyDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{CreateIfNotExists: true}
}

// RunRecord is one row of run history.
type RunRecord struct {
	// ID is the run's database identifier.
	ID int64

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when crawling completed.
	FinishedAt time.Time

	// TopicCount is the number of topics surveyed.
	TopicCount int

	// PageCount is the number of pages visited, failed fetches included.
	PageCount int
}

// TopicRecord is one per-topic result row of a recorded run.
type TopicRecord struct {
	// Topic is the seed page title.
	Topic string

	// MatchCount is the number of vocabulary matches.
	MatchCount int

	// TotalWordCount is the number of cleaned words seen.
	TotalWordCount int
}

// Open opens or creates a SurveyDB in the given directory.
// With CreateIfNotExists false, a missing database file is an error.
func Open(dbDir string, opts Options) (*SurveyDB, error) {
	dbPath := filepath.Join(dbDir, "wikilex.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SurveyDB{db: db, dbPath: dbPath}
	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return sdb, nil
}

// Close closes the database connection.
func (sdb *SurveyDB) Close() error {
	return sdb.db.Close()
}

// Path returns the path to the SQLite database file.
func (sdb *SurveyDB) Path() string {
	return sdb.dbPath
}

// createTables creates the schema if it doesn't exist.
func (sdb *SurveyDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		topic_count INTEGER NOT NULL,
		page_count INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS topic_results (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		topic TEXT NOT NULL,
		match_count INTEGER NOT NULL,
		total_word_count INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_topic_results_run ON topic_results(run_id);
	`
	if _, err := sdb.db.ExecContext(context.Background(), schema); err != nil {
		return err
	}
	return nil
}

// RecordRun stores a completed run and its per-topic counts, returning the
// new run's identifier.
func (sdb *SurveyDB) RecordRun(ctx context.Context, run *model.Run) (int64, error) {
	tx, err := sdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, topic_count, page_count) VALUES (?, ?, ?, ?)`,
		run.StartedAt, run.FinishedAt, len(run.Topics), run.PagesScanned,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, topic := range run.Results.Topics() {
		agg, _ := run.Results.Get(topic)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO topic_results (run_id, topic, match_count, total_word_count) VALUES (?, ?, ?, ?)`,
			runID, topic, agg.MatchCount, agg.TotalWordCount,
		); err != nil {
			return 0, fmt.Errorf("insert topic result for %q: %w", topic, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first, up to limit.
func (sdb *SurveyDB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := sdb.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, topic_count, page_count
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.TopicCount, &r.PageCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// TopicResults returns the per-topic counts recorded for a run, in the
// order they were inserted.
func (sdb *SurveyDB) TopicResults(ctx context.Context, runID int64) ([]TopicRecord, error) {
	rows, err := sdb.db.QueryContext(ctx,
		`SELECT topic, match_count, total_word_count
		 FROM topic_results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query topic results: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []TopicRecord
	for rows.Next() {
		var r TopicRecord
		if err := rows.Scan(&r.Topic, &r.MatchCount, &r.TotalWordCount); err != nil {
			return nil, fmt.Errorf("scan topic result: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic results: %w", err)
	}
	return records, nil
}
