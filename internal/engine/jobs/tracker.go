package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// MatchRun records one completed matching pass for a profile.
type MatchRun struct {
	ID           int64   `json:"id"`
	ProfileID    string  `json:"profile_id,omitempty"`
	Query        string  `json:"query"`
	Location     string  `json:"location,omitempty"`
	JobsScored   int     `json:"jobs_scored"`
	BestMatchPct float64 `json:"best_match_pct"`
	BestMatchJob string  `json:"best_match_job,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

var (
	trackerDB   *sql.DB
	trackerOnce sync.Once
	trackerErr  error
)

// openTrackerDB opens (or creates) the SQLite match history database.
func openTrackerDB() (*sql.DB, error) {
	trackerOnce.Do(func() {
		dbPath := engine.Cfg.TrackerPath
		if dbPath == "" {
			dbPath = filepath.Join(os.Getenv("HOME"), ".go_resume", "matches.db")
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			trackerErr = fmt.Errorf("tracker: mkdir %s: %w", filepath.Dir(dbPath), err)
			return
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			trackerErr = fmt.Errorf("tracker: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initTrackerSchema(db); err != nil {
			trackerErr = fmt.Errorf("tracker: init schema: %w", err)
			return
		}
		trackerDB = db
	})
	return trackerDB, trackerErr
}

func initTrackerSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS match_runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		profile_id     TEXT,
		query          TEXT NOT NULL,
		location       TEXT,
		jobs_scored    INTEGER NOT NULL,
		best_match_pct REAL NOT NULL,
		best_match_job TEXT,
		created_at     TEXT NOT NULL
	)`)
	return err
}

// SaveMatchRun appends one matching pass to the history. Matches are ranked,
// so the best result is the first entry.
func SaveMatchRun(_ context.Context, profileID, query, location string, matches []JobMatch) (*MatchRun, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	run := MatchRun{
		ProfileID:  profileID,
		Query:      query,
		Location:   location,
		JobsScored: len(matches),
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if len(matches) > 0 {
		run.BestMatchPct = matches[0].MatchPercentage
		run.BestMatchJob = fmt.Sprintf("%s at %s", matches[0].Title, matches[0].Company)
	}

	res, err := db.Exec(
		`INSERT INTO match_runs (profile_id, query, location, jobs_scored, best_match_pct, best_match_job, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ProfileID, run.Query, run.Location, run.JobsScored,
		run.BestMatchPct, run.BestMatchJob, run.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: insert run: %w", err)
	}
	run.ID, _ = res.LastInsertId()
	return &run, nil
}

// ListMatchRuns returns the most recent match runs, newest first, optionally
// filtered by profile.
func ListMatchRuns(_ context.Context, profileID string, limit int) ([]MatchRun, error) {
	db, err := openTrackerDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows *sql.Rows
	if profileID != "" {
		rows, err = db.Query(
			`SELECT id, profile_id, query, location, jobs_scored, best_match_pct, best_match_job, created_at
			 FROM match_runs WHERE profile_id = ? ORDER BY created_at DESC LIMIT ?`,
			profileID, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, profile_id, query, location, jobs_scored, best_match_pct, best_match_job, created_at
			 FROM match_runs ORDER BY created_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker: query runs: %w", err)
	}
	defer rows.Close()

	runs := []MatchRun{}
	for rows.Next() {
		var r MatchRun
		var pid, loc, best sql.NullString
		if err := rows.Scan(&r.ID, &pid, &r.Query, &loc, &r.JobsScored,
			&r.BestMatchPct, &best, &r.CreatedAt); err != nil {
			continue
		}
		r.ProfileID = pid.String
		r.Location = loc.String
		r.BestMatchJob = best.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
