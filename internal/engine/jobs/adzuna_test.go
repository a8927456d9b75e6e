package jobs

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAdzunaDecodeAndMap(t *testing.T) {
	payload := `{
		"results": [
			{
				"title": "Go Developer",
				"company": {"display_name": "Acme"},
				"location": {"display_name": "London"},
				"description": "Build services in Go.",
				"redirect_url": "https://example.com/jobs/1",
				"salary_min": 50000,
				"salary_max": 70000
			},
			{
				"title": "Backend Engineer",
				"company": {},
				"location": {},
				"description": "Remote role.",
				"redirect_url": "https://example.com/jobs/2"
			}
		]
	}`

	var parsed adzunaResponse
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := adzunaToPostings(parsed.Results)
	if len(got) != 2 {
		t.Fatalf("got %d postings, want 2", len(got))
	}

	first := got[0]
	if first.Title != "Go Developer" || first.Company != "Acme" || first.Location != "London" {
		t.Errorf("first posting = %q / %q / %q", first.Title, first.Company, first.Location)
	}
	if first.Source != "Adzuna" {
		t.Errorf("Source = %q, want Adzuna", first.Source)
	}
	if !strings.HasPrefix(first.ID, "adzuna_") {
		t.Errorf("ID = %q, want adzuna_ prefix", first.ID)
	}
	if first.SalaryMin == nil || *first.SalaryMin != 50000 {
		t.Errorf("SalaryMin = %v, want 50000", first.SalaryMin)
	}
	if first.SalaryMax == nil || *first.SalaryMax != 70000 {
		t.Errorf("SalaryMax = %v, want 70000", first.SalaryMax)
	}

	second := got[1]
	if second.Company != "Unknown" {
		t.Errorf("blank company mapped to %q, want Unknown", second.Company)
	}
	if second.Location != "Remote" {
		t.Errorf("blank location mapped to %q, want Remote", second.Location)
	}
	if second.SalaryMin != nil || second.SalaryMax != nil {
		t.Errorf("missing salary fields should stay nil, got %v / %v", second.SalaryMin, second.SalaryMax)
	}
	if second.ID == first.ID {
		t.Errorf("IDs should differ per posting, both %q", first.ID)
	}
}

func TestAdzunaToPostingsEmpty(t *testing.T) {
	got := adzunaToPostings(nil)
	if got == nil {
		t.Fatal("want non-nil empty slice")
	}
	if len(got) != 0 {
		t.Fatalf("got %d postings, want 0", len(got))
	}
}
