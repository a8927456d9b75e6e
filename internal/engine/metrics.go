package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalyzeRequests   atomic.Int64
	AnalyzeFaults     atomic.Int64
	PDFExtracts       atomic.Int64
	AdzunaRequests    atomic.Int64
	GithubJobRequests atomic.Int64
	MatchRequests     atomic.Int64
	FetchRequests     atomic.Int64
	FetchErrors       atomic.Int64
}

// IncrAnalyzeRequests increments the resume analysis counter.
func IncrAnalyzeRequests() { metrics.AnalyzeRequests.Add(1) }

// IncrAnalyzeFaults increments the counter of analyses that fell back to the empty profile.
func IncrAnalyzeFaults() { metrics.AnalyzeFaults.Add(1) }

// IncrPDFExtracts increments the PDF text extraction counter.
func IncrPDFExtracts() { metrics.PDFExtracts.Add(1) }

// IncrAdzunaRequests increments the Adzuna API request counter.
func IncrAdzunaRequests() { metrics.AdzunaRequests.Add(1) }

// IncrGithubJobRequests increments the GitHub Jobs API request counter.
func IncrGithubJobRequests() { metrics.GithubJobRequests.Add(1) }

// IncrMatchRequests increments the job match counter.
func IncrMatchRequests() { metrics.MatchRequests.Add(1) }

// IncrFetchRequests increments the URL fetch counter.
func IncrFetchRequests() { metrics.FetchRequests.Add(1) }

// IncrFetchErrors increments the URL fetch error counter.
func IncrFetchErrors() { metrics.FetchErrors.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analyze_requests":    metrics.AnalyzeRequests.Load(),
		"analyze_faults":      metrics.AnalyzeFaults.Load(),
		"pdf_extracts":        metrics.PDFExtracts.Load(),
		"adzuna_requests":     metrics.AdzunaRequests.Load(),
		"github_job_requests": metrics.GithubJobRequests.Load(),
		"match_requests":      metrics.MatchRequests.Load(),
		"fetch_requests":      metrics.FetchRequests.Load(),
		"fetch_errors":        metrics.FetchErrors.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyze_requests", "analyze_faults", "pdf_extracts",
		"adzuna_requests", "github_job_requests", "match_requests",
		"fetch_requests", "fetch_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
