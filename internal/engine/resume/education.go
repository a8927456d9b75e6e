package resume

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

var (
	degreeRe      = regexp.MustCompile(`(?:B\.Tech|M\.Tech|Bachelor|Master|Ph\.D|MBA|Higher Secondary Education|Secondary Education)`)
	institutionRe = regexp.MustCompile(`(?:University|College|School|Institute|CUSAT)`)
	yearRe        = regexp.MustCompile(`(?:20\d{2}|19\d{2})`)
	yearRangeRe   = regexp.MustCompile(`(?:20\d{2})\s*(?:–|-|\s)\s*(?:Present|20\d{2})`)
	percentageRe  = regexp.MustCompile(`Achieved\s+(\d+\.?\d*)%`)
	barePercentRe = regexp.MustCompile(`(\d+\.?\d*)%`)
	bareYearRe    = regexp.MustCompile(`20\d{2}`)
)

// ExtractEducation parses the EDUCATION section into entries. Lines are first
// grouped into segments (a degree keyword, institution keyword, or year range
// opens a new segment); each segment is then mined independently. A segment
// yields an entry only when degree or institution was found.
func ExtractEducation(text string) []EducationEntry {
	var entries []EducationEntry
	for _, segment := range educationSegments(engine.NonBlankLines(text)) {
		entry := parseEducationSegment(segment)
		if entry.Degree != "" || entry.Institution != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// educationSegments groups lines into per-entry segments. Lines before the
// first trigger line are dropped. A bare year range joins the open segment
// rather than splitting it, so "Bachelor ...\n2018 - 2020" stays one entry.
func educationSegments(lines []string) [][]string {
	var segments [][]string
	var current []string

	for _, line := range lines {
		trigger := degreeRe.MatchString(line) || institutionRe.MatchString(line)
		if !trigger && len(current) == 0 && yearRangeRe.MatchString(line) {
			trigger = true
		}
		if trigger {
			if len(current) > 0 {
				segments = append(segments, current)
			}
			current = []string{line}
			continue
		}
		if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

func parseEducationSegment(lines []string) EducationEntry {
	entry := EducationEntry{Coursework: []string{}}

	// Degree: first line with a degree keyword; keep the "in <field>" clause
	// up to the next comma when present.
	for _, line := range lines {
		loc := degreeRe.FindStringIndex(line)
		if loc == nil {
			continue
		}
		keyword := line[loc[0]:loc[1]]
		rest := line[loc[1]:]
		if strings.Contains(rest, "in ") {
			field := strings.SplitN(rest, ",", 2)[0]
			entry.Degree = strings.TrimSpace(keyword + field)
		} else {
			entry.Degree = keyword
		}
		break
	}

	// Institution: prefer the comma fragment carrying the keyword.
	for _, line := range lines {
		if !institutionRe.MatchString(line) {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if institutionRe.MatchString(part) {
				entry.Institution = strings.TrimSpace(part)
				break
			}
		}
		if entry.Institution == "" {
			entry.Institution = strings.TrimSpace(strings.SplitN(line, ",", 2)[0])
		}
		break
	}

	// End date: year range wins over a lone year; "Present" survives verbatim.
	for _, line := range lines {
		if m := yearRangeRe.FindString(line); m != "" {
			entry.EndDate = endDateFromRange(m)
			break
		}
		if m := yearRe.FindString(line); m != "" {
			entry.EndDate = m
			break
		}
	}

	// Coursework: "Achieved NN%" lines and bullet lines, in document order.
	for _, line := range lines {
		if m := percentageRe.FindStringSubmatch(line); m != nil {
			entry.Coursework = append(entry.Coursework, "Achieved "+m[1]+"%")
		} else if strings.Contains(line, "Achieved") && strings.Contains(line, "%") {
			if m := barePercentRe.FindStringSubmatch(line); m != nil {
				entry.Coursework = append(entry.Coursework, "Achieved "+m[1]+"%")
			}
		}
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			entry.Coursework = append(entry.Coursework, strings.TrimSpace(strings.TrimLeft(line, "•-")))
		}
	}

	return entry
}

// endDateFromRange picks the range's second token: a literal "Present" is
// kept as-is, otherwise the bare year is extracted from whichever side won.
func endDateFromRange(dateRange string) string {
	parts := splitRange(dateRange)

	end := parts[0]
	if len(parts) >= 2 {
		end = parts[1]
	}
	end = strings.TrimSpace(end)

	if end == "Present" {
		return "Present"
	}
	return bareYearRe.FindString(end)
}

func splitRange(s string) []string {
	for _, sep := range []string{"–", "-", " "} {
		if parts := strings.Split(s, sep); len(parts) > 1 {
			return parts
		}
	}
	return []string{s}
}
