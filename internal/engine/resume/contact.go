package resume

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Contact field patterns. Each fires at most once per section; a populated
// field is never overwritten (first match wins).
var (
	emailRe        = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe        = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{10}`)
	linkedinHintRe = regexp.MustCompile(`(?:linkedin\.com/in/|linkedin|lujayn)`)
	linkedinURLRe  = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	linkedinUserRe = regexp.MustCompile(`linkedin\.com/in/([\w-]+)`)
	websiteRe      = regexp.MustCompile(`(?:https?://)?(?:www\.)?\S+\.(?:com|io|dev|app|vercel)`)
	allCapsNameRe  = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// locationGazetteer is the fixed set of place names recognised in contact lines.
// Matched case-sensitively, as they appear in source documents.
var locationGazetteer = []string{"Ernakulam", "Kerala", "India", "Cochin", "Kochi"}

// contactSeparators split a contact line into tokens: diamond and bullet
// glyphs, comma, pipe, asterisk, and the ï artifact some PDF extractors
// leave behind. '@' is deliberately not a separator so emails survive intact.
const contactSeparators = "⋄•,|*ï"

// ExtractContact pulls contact fields out of the header (or contact) section.
// Every field is independent; a pattern miss leaves the field empty.
func ExtractContact(text string) ContactInfo {
	var info ContactInfo

	lines := engine.NonBlankLines(text)
	if len(lines) == 0 {
		return info
	}

	// Name: the section's first line, when it is all-caps letters/spaces.
	if allCapsNameRe.MatchString(lines[0]) {
		info.Name = lines[0]
	}

	for _, line := range lines {
		for _, token := range splitContactLine(line) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}

			if info.Email == "" {
				if m := emailRe.FindString(token); m != "" {
					info.Email = m
				}
			}

			if info.Phone == "" {
				if m := phoneRe.FindString(token); m != "" {
					info.Phone = m
				}
			}

			if info.LinkedIn == "" && linkedinHintRe.MatchString(strings.ToLower(token)) {
				info.LinkedIn = linkedinFromToken(token)
				// The rest of the line is the profile URL's tail; skip it.
				break
			}

			if info.Website == "" && !strings.Contains(token, "linkedin.com") {
				if m := websiteRe.FindString(token); m != "" {
					info.Website = m
				}
			}

			if info.Location == "" {
				info.Location = locationFromToken(token)
			}
		}
	}

	return info
}

func splitContactLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(contactSeparators, r)
	})
}

// linkedinFromToken resolves a token flagged as LinkedIn-related into a
// profile reference: full URL if present, bare linkedin.com/in/<handle>
// otherwise, or a handle guessed from the nearest non-"linkedin" word.
func linkedinFromToken(token string) string {
	if m := linkedinURLRe.FindString(token); m != "" {
		return m
	}
	if m := linkedinUserRe.FindStringSubmatch(token); m != nil {
		return "linkedin.com/in/" + m[1]
	}
	if !strings.Contains(strings.ToLower(token), "linkedin") {
		return ""
	}
	var handle string
	for _, word := range strings.Fields(token) {
		if !strings.Contains(strings.ToLower(word), "linkedin") && len(word) > 3 {
			handle = strings.ToLower(word)
		}
	}
	if handle == "" {
		return ""
	}
	return "linkedin.com/in/" + handle
}

// locationFromToken rebuilds a location phrase from the comma-delimited
// fragments of token that contain a gazetteer term.
func locationFromToken(token string) string {
	if !containsGazetteerTerm(token) {
		return ""
	}
	var parts []string
	for _, frag := range strings.Split(token, ",") {
		if containsGazetteerTerm(frag) {
			parts = append(parts, strings.TrimSpace(frag))
		}
	}
	return strings.Join(parts, ", ")
}

func containsGazetteerTerm(s string) bool {
	for _, place := range locationGazetteer {
		if strings.Contains(s, place) {
			return true
		}
	}
	return false
}
