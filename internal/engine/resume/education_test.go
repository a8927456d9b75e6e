package resume

import (
	"strings"
	"testing"
)

func TestExtractEducation_DegreeInstitutionYearRange(t *testing.T) {
	entries := ExtractEducation("Bachelor of Science, XYZ University\n2018 - 2020")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if !strings.Contains(e.Degree, "Bachelor") {
		t.Errorf("Degree = %q, want Bachelor keyword", e.Degree)
	}
	if !strings.Contains(e.Institution, "XYZ University") {
		t.Errorf("Institution = %q, want XYZ University", e.Institution)
	}
	if e.EndDate != "2020" {
		t.Errorf("EndDate = %q, want 2020", e.EndDate)
	}
}

func TestExtractEducation_DegreeWithField(t *testing.T) {
	entries := ExtractEducation("Bachelor of Technology in Computer Science, CUSAT\n2016 - 2020")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !strings.Contains(entries[0].Degree, "Computer Science") {
		t.Errorf("Degree = %q, want field clause kept", entries[0].Degree)
	}
	if entries[0].Institution != "CUSAT" {
		t.Errorf("Institution = %q, want CUSAT", entries[0].Institution)
	}
}

func TestExtractEducation_MultipleEntries(t *testing.T) {
	text := "B.Tech, ABC Institute\n2016 - 2020\nHigher Secondary Education, Some School\n2014 - 2016"
	entries := ExtractEducation(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].EndDate != "2020" {
		t.Errorf("first EndDate = %q, want 2020", entries[0].EndDate)
	}
	if entries[1].EndDate != "2016" {
		t.Errorf("second EndDate = %q, want 2016", entries[1].EndDate)
	}
}

func TestExtractEducation_PresentEndDate(t *testing.T) {
	entries := ExtractEducation("Master of Science, XYZ University\n2023 - Present")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].EndDate != "Present" {
		t.Errorf("EndDate = %q, want Present", entries[0].EndDate)
	}
}

func TestExtractEducation_Coursework(t *testing.T) {
	text := "B.Tech, ABC Institute\nAchieved 85.5%\n• Data Structures\n• Operating Systems"
	entries := ExtractEducation(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	cw := entries[0].Coursework
	if len(cw) != 3 {
		t.Fatalf("Coursework = %v, want 3 items", cw)
	}
	if cw[0] != "Achieved 85.5%" {
		t.Errorf("Coursework[0] = %q", cw[0])
	}
	if cw[1] != "Data Structures" || cw[2] != "Operating Systems" {
		t.Errorf("bullet coursework = %v", cw[1:])
	}
}

func TestExtractEducation_NoTriggers(t *testing.T) {
	if entries := ExtractEducation("just some text\nnothing educational"); len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}

func TestExtractEducation_YearOnlySegmentDropped(t *testing.T) {
	// A lone year range with no degree or institution anywhere yields nothing.
	if entries := ExtractEducation("2018 - 2020"); len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
