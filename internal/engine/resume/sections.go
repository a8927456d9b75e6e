package resume

import (
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// SectionHeader is the sentinel label for text before the first section header.
const SectionHeader = "HEADER"

// sectionKeywords is the fixed vocabulary of section names. A line counts as
// a section header only if its uppercased form contains one of these.
var sectionKeywords = []string{
	"EDUCATION", "EXPERIENCE", "SKILLS", "TECHNICAL SKILLS", "PROJECTS",
	"AWARDS", "CERTIFICATIONS", "OBJECTIVE", "SUMMARY", "LANGUAGES",
	"CONTACT", "ADDITIONAL", "INTERESTS",
}

// Sections is the ordered section-name → body mapping produced by SplitSections.
type Sections struct {
	order  []string
	bodies map[string]string
}

// Get returns the body for a section name ("" if absent).
func (s *Sections) Get(name string) string {
	return s.bodies[name]
}

// First returns the body of the first listed section that is present and non-empty.
func (s *Sections) First(names ...string) string {
	for _, name := range names {
		if body := s.bodies[name]; body != "" {
			return body
		}
	}
	return ""
}

// Names returns section names in document order.
func (s *Sections) Names() []string {
	return s.order
}

// SplitSections partitions resume text into named sections. Lines before the
// first header accumulate under HEADER; a document with no headers at all
// becomes a single HEADER section.
func SplitSections(text string) *Sections {
	s := &Sections{bodies: make(map[string]string)}
	current := SectionHeader
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if _, seen := s.bodies[current]; !seen {
			s.order = append(s.order, current)
		}
		s.bodies[current] = strings.Join(buf, "\n")
		buf = nil
	}

	for _, line := range engine.NonBlankLines(text) {
		if isSectionHeader(line) {
			flush()
			current = strings.ToUpper(line)
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return s
}

// isSectionHeader reports whether a line is an all-caps section header
// containing a known section keyword. The shape test mirrors the header
// pattern: first rune uppercase letter, rest uppercase letters, spaces, or '&'.
func isSectionHeader(line string) bool {
	if !isHeaderShaped(line) {
		return false
	}
	upper := strings.ToUpper(line)
	for _, kw := range sectionKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

func isHeaderShaped(line string) bool {
	runes := []rune(line)
	if len(runes) < 2 {
		return false
	}
	if runes[0] < 'A' || runes[0] > 'Z' {
		return false
	}
	for _, r := range runes[1:] {
		if (r < 'A' || r > 'Z') && r != ' ' && r != '\t' && r != '&' {
			return false
		}
	}
	return true
}
