package resume

import (
	"sort"
	"strings"
	"unicode"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ExtractSkills parses a skills section into a deduplicated skill list.
// Lines that are entirely uppercase are sub-headers and skipped; the value
// after a colon (or the whole line) splits on commas, bullet markers are
// stripped, and anything left is a single skill. Output is sorted so equal
// inputs produce equal slices.
func ExtractSkills(text string) []string {
	seen := make(map[string]bool)

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			seen[s] = true
		}
	}

	for _, line := range engine.NonBlankLines(text) {
		if isAllUpper(line) {
			continue // sub-header like "TECHNICAL"
		}

		switch {
		case strings.Contains(line, ":"):
			value := strings.SplitN(line, ":", 2)[1]
			if strings.Contains(value, ",") {
				for _, s := range strings.Split(value, ",") {
					add(s)
				}
			} else {
				add(value)
			}
		case strings.Contains(line, ","):
			for _, s := range strings.Split(line, ",") {
				add(s)
			}
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-"):
			add(strings.TrimLeft(line, "•-"))
		default:
			add(line)
		}
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// isAllUpper reports whether every rune is uppercase or whitespace.
func isAllUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
