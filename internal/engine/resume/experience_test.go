package resume

import "testing"

func TestExtractExperience_StandardFormat(t *testing.T) {
	text := "Software Engineer Mar 2021 - Present\nAcme Corp, Remote\n• Built services\n• Led migrations"
	entries := ExtractExperience(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Position != "Software Engineer" {
		t.Errorf("Position = %q", e.Position)
	}
	if e.StartDate != "Mar 2021" || e.EndDate != "Present" {
		t.Errorf("dates = %q / %q", e.StartDate, e.EndDate)
	}
	if e.Company != "Acme Corp" || e.Location != "Remote" {
		t.Errorf("company/location = %q / %q", e.Company, e.Location)
	}
	if len(e.Description) != 2 || e.Description[0] != "Built services" {
		t.Errorf("Description = %v", e.Description)
	}
}

func TestExtractExperience_StandardClosedRange(t *testing.T) {
	entries := ExtractExperience("Backend Developer Jan 2019 - Feb 2021\nBeta LLC")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.EndDate != "Feb 2021" {
		t.Errorf("EndDate = %q", e.EndDate)
	}
	if e.Company != "Beta LLC" || e.Location != "" {
		t.Errorf("company/location = %q / %q", e.Company, e.Location)
	}
}

func TestExtractExperience_GlyphFormat(t *testing.T) {
	text := "Student Intern z May 2024 * Cochin, Kerala\nTech Startup\n• Wrote tooling"
	entries := ExtractExperience(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Position != "Student Intern" {
		t.Errorf("Position = %q", e.Position)
	}
	if e.StartDate != "May 2024" || e.EndDate != "May 2024" {
		t.Errorf("dates = %q / %q", e.StartDate, e.EndDate)
	}
	if e.Location != "Cochin, Kerala" {
		t.Errorf("Location = %q", e.Location)
	}
	if e.Company != "Tech Startup" {
		t.Errorf("Company = %q", e.Company)
	}
}

func TestExtractExperience_GlyphOpenRange(t *testing.T) {
	entries := ExtractExperience("Developer z 2023 -\n• Shipped features")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].StartDate != "2023" || entries[0].EndDate != "Present" {
		t.Errorf("dates = %q / %q", entries[0].StartDate, entries[0].EndDate)
	}
	// The bullet line must not be eaten as company.
	if entries[0].Company != "" {
		t.Errorf("Company = %q, want empty", entries[0].Company)
	}
	if len(entries[0].Description) != 1 {
		t.Errorf("Description = %v", entries[0].Description)
	}
}

func TestExtractExperience_MultipleEntries(t *testing.T) {
	text := "Engineer Mar 2021 - Present\nAcme Corp, Remote\n• Did things\nAnalyst Jan 2019 - Feb 2021\nOther Inc, Kochi"
	entries := ExtractExperience(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Position != "Engineer" || entries[1].Position != "Analyst" {
		t.Errorf("positions = %q / %q", entries[0].Position, entries[1].Position)
	}
}

func TestExtractExperience_StrayLinesSkipped(t *testing.T) {
	// Bullets with no open entry and marker-only lines are ignored.
	entries := ExtractExperience("•\n• orphan bullet\nsome prose line")
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
