package jobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

const adzunaBase = "https://api.adzuna.com/v1/api/jobs"

// Adzuna allows 25 req/min on the free tier; stay under it.
var adzunaLimiter = rate.NewLimiter(rate.Limit(0.4), 1)

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

type adzunaResult struct {
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
}

// FetchAdzuna queries the Adzuna search API for postings matching query and
// location. Missing credentials degrade to an empty result rather than an
// error so the other sources still run.
func FetchAdzuna(ctx context.Context, query, location string) ([]JobPosting, error) {
	cfg := engine.Cfg
	if cfg.AdzunaAppID == "" || cfg.AdzunaAPIKey == "" {
		slog.Warn("adzuna credentials not configured, skipping source")
		return []JobPosting{}, nil
	}

	engine.IncrAdzunaRequests()

	if err := adzunaLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("app_id", cfg.AdzunaAppID)
	params.Set("app_key", cfg.AdzunaAPIKey)
	params.Set("results_per_page", fmt.Sprintf("%d", cfg.AdzunaResultsPerPage))
	params.Set("what", query)
	if location != "" {
		params.Set("where", location)
	}
	params.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/%s/search/1?%s", adzunaBase, cfg.AdzunaCountry, params.Encode())

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		req.Header.Set("Accept", "application/json")
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna search: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("adzuna read: %w", err)
	}

	var parsed adzunaResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("adzuna decode: %w", err)
	}

	return adzunaToPostings(parsed.Results), nil
}

// adzunaToPostings maps raw API results to postings, defaulting blank
// company and location fields.
func adzunaToPostings(results []adzunaResult) []JobPosting {
	jobs := make([]JobPosting, 0, len(results))
	for _, r := range results {
		company := r.Company.DisplayName
		if company == "" {
			company = "Unknown"
		}
		loc := r.Location.DisplayName
		if loc == "" {
			loc = "Remote"
		}
		jobs = append(jobs, JobPosting{
			Title:       r.Title,
			Company:     company,
			Location:    loc,
			Description: r.Description,
			URL:         r.RedirectURL,
			Source:      "Adzuna",
			ID:          "adzuna_" + shortHash(r.RedirectURL+r.Title),
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
		})
	}
	return jobs
}

// shortHash gives a stable 12-hex-char posting identifier.
func shortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:6])
}
