package engine

import (
	"strings"
	"testing"
)

func TestExtractJobPostingJSONLD(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{"@type":"JobPosting","description":"<p>Build Go services.</p>"}</script>
</head><body>ignored</body></html>`

	got := extractJobPostingJSONLD([]byte(page))
	if got != "Build Go services." {
		t.Errorf("description = %q", got)
	}
}

func TestExtractJobPostingJSONLD_Array(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">[{"@type":"Organization"},{"@type":"JobPosting","description":"Ship features."}]</script>
</head></html>`

	if got := extractJobPostingJSONLD([]byte(page)); got != "Ship features." {
		t.Errorf("description = %q", got)
	}
}

func TestExtractJobPostingJSONLD_NoPosting(t *testing.T) {
	page := `<html><head><script type="application/ld+json">{"@type":"Recipe"}</script></head></html>`
	if got := extractJobPostingJSONLD([]byte(page)); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestExtractMainContent(t *testing.T) {
	page := `<html><body>
<nav>menu menu menu</nav>
<article><h1>Backend Engineer</h1><p>You will build APIs in Go.</p></article>
<footer>contact us</footer>
</body></html>`

	got, err := extractMainContent([]byte(page))
	if err != nil {
		t.Fatalf("extractMainContent error: %v", err)
	}
	if !strings.Contains(got, "Backend Engineer") || !strings.Contains(got, "build APIs in Go") {
		t.Errorf("content = %q", got)
	}
	if strings.Contains(got, "menu menu") {
		t.Errorf("nav content leaked into %q", got)
	}
}

func TestExtractMainContent_BodyFallback(t *testing.T) {
	page := `<html><body><div>plain description text</div></body></html>`
	got, err := extractMainContent([]byte(page))
	if err != nil {
		t.Fatalf("extractMainContent error: %v", err)
	}
	if !strings.Contains(got, "plain description text") {
		t.Errorf("content = %q", got)
	}
}
