package engine

import (
	"reflect"
	"testing"
)

func TestCleanHTML(t *testing.T) {
	got := CleanHTML("<p>Senior <b>Go</b> engineer</p>")
	if got != "Senior Go engineer" {
		t.Errorf("CleanHTML = %q", got)
	}
}

func TestCollapseSpaces(t *testing.T) {
	got := CollapseSpaces("  a \t b\n\nc  ")
	if got != "a b c" {
		t.Errorf("CollapseSpaces = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 10, "..."); got != "hello" {
		t.Errorf("short input truncated: %q", got)
	}
	got := TruncateRunes("hello world", 5, "...")
	if len([]rune(got)) > 5+3 {
		t.Errorf("TruncateRunes = %q, too long", got)
	}
}

func TestNonBlankLines(t *testing.T) {
	got := NonBlankLines("first\n\n  second  \n\t\nthird\n")
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NonBlankLines = %v, want %v", got, want)
	}
}
