package jobs

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// resetTracker resets the singleton so each test gets a fresh DB.
func resetTracker(t *testing.T) {
	t.Helper()
	engine.Cfg.TrackerPath = filepath.Join(t.TempDir(), "matches.db")
	trackerDB = nil
	trackerErr = nil
	trackerOnce = sync.Once{}
}

func TestSaveMatchRun_Basic(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	matches := []JobMatch{
		{JobPosting: JobPosting{Title: "Go Developer", Company: "Acme"}, MatchPercentage: 80},
		{JobPosting: JobPosting{Title: "Analyst", Company: "Other"}, MatchPercentage: 20},
	}
	run, err := SaveMatchRun(ctx, "profile-1", "golang", "Remote", matches)
	if err != nil {
		t.Fatalf("SaveMatchRun error: %v", err)
	}
	if run.ID <= 0 {
		t.Errorf("expected positive ID, got %d", run.ID)
	}
	if run.JobsScored != 2 {
		t.Errorf("JobsScored = %d, want 2", run.JobsScored)
	}
	if run.BestMatchPct != 80 {
		t.Errorf("BestMatchPct = %v, want 80", run.BestMatchPct)
	}
	if run.BestMatchJob != "Go Developer at Acme" {
		t.Errorf("BestMatchJob = %q", run.BestMatchJob)
	}
}

func TestSaveMatchRun_NoMatches(t *testing.T) {
	resetTracker(t)

	run, err := SaveMatchRun(context.Background(), "", "cobol", "", nil)
	if err != nil {
		t.Fatalf("SaveMatchRun error: %v", err)
	}
	if run.JobsScored != 0 || run.BestMatchPct != 0 || run.BestMatchJob != "" {
		t.Errorf("unexpected run for empty matches: %+v", run)
	}
}

func TestListMatchRuns_FilterByProfile(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := SaveMatchRun(ctx, "p1", "golang", "", nil); err != nil {
		t.Fatalf("SaveMatchRun error: %v", err)
	}
	if _, err := SaveMatchRun(ctx, "p2", "python", "", nil); err != nil {
		t.Fatalf("SaveMatchRun error: %v", err)
	}

	all, err := ListMatchRuns(ctx, "", 10)
	if err != nil {
		t.Fatalf("ListMatchRuns error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 runs, got %d", len(all))
	}

	p1, err := ListMatchRuns(ctx, "p1", 10)
	if err != nil {
		t.Fatalf("ListMatchRuns error: %v", err)
	}
	if len(p1) != 1 || p1[0].Query != "golang" {
		t.Errorf("filtered runs = %+v", p1)
	}
}

func TestListMatchRuns_Empty(t *testing.T) {
	resetTracker(t)

	runs, err := ListMatchRuns(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("ListMatchRuns error: %v", err)
	}
	if runs == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
