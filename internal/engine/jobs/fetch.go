package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// FetchJobs gathers postings from every configured source for the given
// query and location. Results are cached per calendar day so repeated
// searches within the day do not re-hit the APIs.
func FetchJobs(ctx context.Context, query, location string) []JobPosting {
	key := engine.CacheKey("jobs", query, location, engine.DayKey())
	if cached, ok := engine.CacheLoadJSON[[]JobPosting](ctx, key); ok {
		return cached
	}

	jobs := fetchAllSources(ctx, query, location)
	enrichDescriptions(ctx, jobs)

	engine.CacheStoreJSON(ctx, key, jobs)
	return jobs
}

type sourceResult struct {
	source string
	jobs   []JobPosting
	err    error
}

// fetchAllSources runs every source concurrently and merges whatever came
// back. A failed source is logged and skipped; the search still answers.
func fetchAllSources(ctx context.Context, query, location string) []JobPosting {
	results := make(chan sourceResult, 2)

	go func() {
		jobs, err := FetchAdzuna(ctx, query, location)
		results <- sourceResult{source: "adzuna", jobs: jobs, err: err}
	}()
	go func() {
		jobs, err := FetchGithubJobs(ctx, query)
		results <- sourceResult{source: "github_jobs", jobs: jobs, err: err}
	}()

	var merged []JobPosting
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			slog.Warn("job source failed", slog.String("source", r.source), slog.Any("error", r.err))
			continue
		}
		merged = append(merged, r.jobs...)
	}
	if merged == nil {
		merged = []JobPosting{}
	}
	return merged
}

// enrichDescriptions fills in postings that arrived without a description by
// fetching their URL. Bounded by MaxEnrichURLs so a large result page does
// not turn into a crawl.
func enrichDescriptions(ctx context.Context, jobs []JobPosting) {
	budget := engine.Cfg.MaxEnrichURLs
	if budget <= 0 {
		return
	}

	for i := range jobs {
		if budget == 0 {
			return
		}
		if jobs[i].Description != "" || jobs[i].URL == "" {
			continue
		}
		budget--

		fetchCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		desc, err := engine.FetchJobDescription(fetchCtx, jobs[i].URL)
		cancel()
		if err != nil {
			slog.Debug("description enrich failed", slog.String("url", jobs[i].URL), slog.Any("error", err))
			continue
		}
		jobs[i].Description = desc
	}
}
