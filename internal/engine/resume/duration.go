package resume

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	monthYearRe = regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+(\d{4})`)
	anyYearRe   = regexp.MustCompile(`\d{4}`)
)

var monthNum = map[string]int{
	"Jan": 1, "Feb": 2, "Mar": 3, "Apr": 4, "May": 5, "Jun": 6,
	"Jul": 7, "Aug": 8, "Sep": 9, "Oct": 10, "Nov": 11, "Dec": 12,
}

// CalculateTotalExperience sums tenure across experience entries, in months,
// counting both endpoint months. "Present" (or an empty end date) resolves to
// the current calendar month; a bare year means January for starts and
// December for ends. Entries whose dates fail to parse are skipped with a
// warning, never fatally.
func CalculateTotalExperience(entries []ExperienceEntry) TotalExperience {
	return totalExperienceAt(entries, time.Now())
}

// totalExperienceAt is CalculateTotalExperience with an injectable clock.
func totalExperienceAt(entries []ExperienceEntry, now time.Time) TotalExperience {
	totalMonths := 0

	for _, entry := range entries {
		if entry.StartDate == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(entry.StartDate), "present") {
			// "Present" only makes sense as an end date.
			slog.Warn("experience duration: unparseable start date",
				slog.String("start", entry.StartDate), slog.String("position", entry.Position))
			continue
		}

		endDate := entry.EndDate
		if endDate == "" {
			// No end date: assume same as start.
			endDate = entry.StartDate
		}

		startMonth, startYear, ok := parseDate(entry.StartDate, 1, now)
		if !ok {
			slog.Warn("experience duration: unparseable start date",
				slog.String("start", entry.StartDate), slog.String("position", entry.Position))
			continue
		}
		endMonth, endYear, ok := parseDate(endDate, 12, now)
		if !ok {
			slog.Warn("experience duration: unparseable end date",
				slog.String("end", entry.EndDate), slog.String("position", entry.Position))
			continue
		}

		months := (endYear-startYear)*12 + (endMonth - startMonth) + 1 // inclusive of both months
		if months > 0 {
			totalMonths += months
		}
	}

	years := totalMonths / 12
	remaining := totalMonths % 12

	formatted := fmt.Sprintf("%d months", remaining)
	if years > 0 {
		formatted = fmt.Sprintf("%d years %d months", years, remaining)
	}

	return TotalExperience{
		TotalMonths:     totalMonths,
		Years:           years,
		RemainingMonths: remaining,
		Formatted:       formatted,
	}
}

// parseDate resolves a date token to (month, year). "Present" maps to now;
// "Mon YYYY" parses exactly; a bare year falls back to defaultMonth.
func parseDate(s string, defaultMonth int, now time.Time) (month, year int, ok bool) {
	if strings.EqualFold(strings.TrimSpace(s), "present") {
		return int(now.Month()), now.Year(), true
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		y, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, 0, false
		}
		return monthNum[m[1]], y, true
	}

	if m := anyYearRe.FindString(s); m != "" {
		y, err := strconv.Atoi(m)
		if err != nil {
			return 0, 0, false
		}
		return defaultMonth, y, true
	}

	return 0, 0, false
}
