package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

const githubJobsBase = "https://jobs.github.com/positions.json"

type githubJobsResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// FetchGithubJobs queries the GitHub Jobs positions API. The service is
// often unreachable; callers treat an error from here as a missing source,
// not a failed search.
func FetchGithubJobs(ctx context.Context, query string) ([]JobPosting, error) {
	engine.IncrGithubJobRequests()

	params := url.Values{}
	params.Set("description", query)
	endpoint := githubJobsBase + "?" + params.Encode()

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		req.Header.Set("Accept", "application/json")
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("github jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github jobs: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("github jobs read: %w", err)
	}

	var results []githubJobsResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("github jobs decode: %w", err)
	}

	jobs := make([]JobPosting, 0, len(results))
	for _, r := range results {
		id := r.ID
		if id == "" {
			id = shortHash(r.URL + r.Title)
		}
		loc := r.Location
		if loc == "" {
			loc = "Remote"
		}
		jobs = append(jobs, JobPosting{
			Title:       r.Title,
			Company:     r.Company,
			Location:    loc,
			Description: engine.CleanHTML(r.Description),
			URL:         r.URL,
			Source:      "GitHub Jobs",
			ID:          "github_" + id,
		})
	}
	return jobs, nil
}
