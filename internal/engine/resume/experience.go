package resume

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Experience line patterns. Two entry-start shapes are recognised:
//
//	standard: "Software Engineer Mar 2021 - Present" (company on the next line)
//	glyph:    "Student Intern z May 2024 * Cochin, Kerala"
//
// The glyph form comes from a diamond separator that PDF extraction decodes
// as a literal 'z'.
var (
	standardEntryRe = regexp.MustCompile(`^(.*?)\s+([A-Z][a-z]{2}\s+\d{4})\s*-\s*(Present|[A-Z][a-z]{2}\s+\d{4})`)
	glyphEntryRe    = regexp.MustCompile(`^([^z]+)z\s*([A-Z][a-z]{2}\s+\d{4}|\d{4}(?:\s*[–-]\s*(?:Present|\d{4})?)?)\s*(?:\*\s*([^•]+))?`)
	bulletRe        = regexp.MustCompile(`^\s*[•●■-]\s*(.+)`)
	rangeSepRe      = regexp.MustCompile(`[–-]`)
)

// ExtractExperience parses the EXPERIENCE section. The scan keeps at most one
// open entry: bullet lines feed its description, an entry-start line flushes
// it, and anything else with no open entry is skipped.
func ExtractExperience(text string) []ExperienceEntry {
	var entries []ExperienceEntry
	var current *ExperienceEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	lines := engine.NonBlankLines(text)
	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Stray marker-only lines.
		if line == "•" || line == "-" {
			continue
		}

		if m := bulletRe.FindStringSubmatch(line); m != nil && current != nil {
			current.Description = append(current.Description, m[1])
			continue
		}

		if m := standardEntryRe.FindStringSubmatch(line); m != nil {
			flush()
			entry := ExperienceEntry{
				Position:    strings.TrimSpace(m[1]),
				StartDate:   m[2],
				EndDate:     m[3],
				Description: []string{},
			}
			if i+1 < len(lines) {
				entry.Company, entry.Location = splitCompanyLocation(lines[i+1])
				i++ // company line consumed
			}
			current = &entry
			continue
		}

		if m := glyphEntryRe.FindStringSubmatch(line); m != nil {
			flush()
			entry := ExperienceEntry{
				Position:    strings.TrimSpace(m[1]),
				Location:    strings.TrimSpace(m[3]),
				Description: []string{},
			}
			entry.StartDate, entry.EndDate = splitDateRange(strings.TrimSpace(m[2]))
			if i+1 < len(lines) && !bulletRe.MatchString(lines[i+1]) {
				entry.Company = lines[i+1]
				i++ // company line consumed
			}
			current = &entry
		}
	}

	flush()
	return entries
}

// splitCompanyLocation splits "Acme Corp, Remote" into company and the
// comma-joined remainder as location.
func splitCompanyLocation(line string) (company, location string) {
	if !strings.Contains(line, ",") {
		return strings.TrimSpace(line), ""
	}
	parts := strings.Split(line, ",")
	company = strings.TrimSpace(parts[0])
	location = strings.TrimSpace(strings.Join(parts[1:], ","))
	return company, location
}

// splitDateRange resolves a glyph-format date: a dash/en-dash range splits
// into start and end (end defaulting to "Present"), a single date is both.
func splitDateRange(dateStr string) (start, end string) {
	if rangeSepRe.MatchString(dateStr) {
		parts := rangeSepRe.Split(dateStr, 2)
		start = strings.TrimSpace(parts[0])
		end = "Present"
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			end = strings.TrimSpace(parts[1])
		}
		return start, end
	}
	return dateStr, dateStr
}
