package resume

import (
	"reflect"
	"testing"
)

func TestExtractSkills_ColonCommaLine(t *testing.T) {
	skills := ExtractSkills("Languages: Python, Go, Rust")
	want := []string{"Go", "Python", "Rust"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}
}

func TestExtractSkills_Mixed(t *testing.T) {
	text := "TECHNICAL\nFrameworks: Django\nPython, Go\n• Docker\nKubernetes"
	skills := ExtractSkills(text)
	want := []string{"Django", "Docker", "Go", "Kubernetes", "Python"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}
}

func TestExtractSkills_Dedup(t *testing.T) {
	skills := ExtractSkills("Python, Go\nPython, Go")
	if len(skills) != 2 {
		t.Errorf("skills = %v, want 2 unique entries", skills)
	}
}

func TestExtractSkills_NoEmptyStrings(t *testing.T) {
	skills := ExtractSkills("Python, , Go,\n:")
	for _, s := range skills {
		if s == "" {
			t.Fatalf("empty skill in %v", skills)
		}
	}
}

func TestExtractSkills_Idempotent(t *testing.T) {
	text := "Languages: Python, Go\n• Docker"
	first := ExtractSkills(text)
	second := ExtractSkills(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not stable: %v vs %v", first, second)
	}
}

func TestExtractSkills_Empty(t *testing.T) {
	if skills := ExtractSkills(""); len(skills) != 0 {
		t.Errorf("skills = %v, want empty", skills)
	}
}
