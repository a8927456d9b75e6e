package engine

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent string used across HTTP clients.
const UserAgentBot = "GoResume/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

var spaceRe = regexp.MustCompile(`\s+`)

// CollapseSpaces normalises runs of whitespace to a single space.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

// NonBlankLines splits text into trimmed lines, dropping empty ones.
// Every resume extractor walks lines in this shape.
func NonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
