package engine

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v5"
	"golang.org/x/net/html"
)

// FetchJobDescription fetches a job posting page and extracts its description text.
// Prefers schema.org/JobPosting JSON-LD embedded in the page; falls back to
// goquery content selection converted to markdown.
func FetchJobDescription(ctx context.Context, rawURL string) (string, error) {
	IncrFetchRequests()

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := fetchWithBackoff(ctx, rawURL)
	if err != nil {
		IncrFetchErrors()
		return "", err
	}

	if desc := extractJobPostingJSONLD(body); desc != "" {
		return TruncateRunes(desc, cfg.MaxContentChars, "..."), nil
	}

	desc, err := extractMainContent(body)
	if err != nil {
		IncrFetchErrors()
		return "", err
	}
	return TruncateRunes(desc, cfg.MaxContentChars, "..."), nil
}

// fetchWithBackoff performs an HTTP GET with exponential backoff on transient failures.
func fetchWithBackoff(ctx context.Context, fetchURL string) ([]byte, error) {
	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", UserAgentBot)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := cfg.HTTPClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if IsRetryableStatus(resp.StatusCode) {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		return readResponseBody(resp)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 1 * time.Second
	bo.MaxInterval = 10 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3))
}

// readResponseBody reads the response body, handling gzip decompression if needed.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(io.LimitReader(gz, 2<<20))
	}
	return io.ReadAll(io.LimitReader(resp.Body, 2<<20))
}

// jobPostingLD is the subset of schema.org/JobPosting we care about.
type jobPostingLD struct {
	Type        string `json:"@type"`
	Description string `json:"description"`
}

// extractJobPostingJSONLD walks the HTML tree looking for a JSON-LD
// <script> tag carrying a JobPosting and returns its description as text.
func extractJobPostingJSONLD(body []byte) string {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return ""
	}

	var desc string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if desc != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, a := range n.Attr {
				if a.Key == "type" && a.Val == "application/ld+json" {
					if n.FirstChild != nil {
						desc = decodeJobPostingLD(n.FirstChild.Data)
					}
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return desc
}

// decodeJobPostingLD decodes a JSON-LD blob (object or array of objects)
// and returns the JobPosting description, HTML-stripped.
func decodeJobPostingLD(raw string) string {
	raw = strings.TrimSpace(raw)

	var single jobPostingLD
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single.Type == "JobPosting" {
		return CleanHTML(single.Description)
	}

	var list []jobPostingLD
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		for _, item := range list {
			if item.Type == "JobPosting" && item.Description != "" {
				return CleanHTML(item.Description)
			}
		}
	}
	return ""
}

// extractMainContent selects the main content block of a page and converts it to markdown.
func extractMainContent(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, .job-description, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	inner, err := goquery.OuterHtml(contentSel)
	if err == nil {
		if md, mdErr := htmltomarkdown.ConvertString(inner); mdErr == nil {
			md = strings.TrimSpace(md)
			if md != "" {
				return md, nil
			}
		}
	}

	content := CollapseSpaces(contentSel.Text())
	if content == "" {
		return "", errors.New("no content extracted")
	}
	return content, nil
}
