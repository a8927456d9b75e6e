package jobs

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

var punctRe = regexp.MustCompile(`[,.;:!?"'()\[\]{}]`)

// tokenize lowercases text, strips punctuation, and returns alphanumeric
// tokens with stop words removed.
func tokenize(text string) []string {
	text = punctRe.ReplaceAllString(strings.ToLower(text), " ")
	var tokens []string
	for _, tok := range strings.Fields(text) {
		if isAlnum(tok) && !matchStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return s != ""
}

// ExtractRequiredSkills scans a job description for known technical terms:
// single-word skills against the token stream, multi-word phrases as
// substrings of the lowercased text. Result is deduplicated and sorted.
func ExtractRequiredSkills(description string) []string {
	lower := strings.ToLower(description)
	found := make(map[string]bool)

	for _, tok := range tokenize(lower) {
		if singleWordSkills[tok] {
			found[tok] = true
		}
	}
	for _, phrase := range multiWordSkills {
		if strings.Contains(lower, phrase) {
			found[phrase] = true
		}
	}

	skills := make([]string, 0, len(found))
	for s := range found {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// DetermineExperienceLevel infers the required seniority by counting level
// keyword hits in the description. The highest score wins; ties break in
// enumeration order; no hits at all defaults to entry.
func DetermineExperienceLevel(description string) ExperienceLevel {
	lower := strings.ToLower(description)

	best := LevelEntry
	bestScore := 0
	for _, level := range levelOrder {
		score := 0
		for _, kw := range levelKeywords[level] {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best = level
			bestScore = score
		}
	}
	return best
}

// ScoreJob computes the raw match record for one posting: required skills,
// matching/missing splits, percentage, and the experience band check.
// Skill comparison is case-insensitive; candidate skills come out of
// extraction with their source casing.
func ScoreJob(candidateSkills []string, candidateMonths int, job JobPosting) JobMatch {
	candidate := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		candidate[strings.ToLower(strings.TrimSpace(s))] = true
	}

	required := ExtractRequiredSkills(job.Description)

	matching := []string{}
	missing := []string{}
	for _, s := range required {
		if candidate[s] {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	pct := 0.0
	if len(required) > 0 {
		pct = float64(len(matching)) / float64(len(required)) * 100
		pct = math.Round(pct*100) / 100
	}

	level := DetermineExperienceLevel(job.Description)

	return JobMatch{
		JobPosting:              job,
		MatchPercentage:         pct,
		MatchingSkills:          matching,
		MissingSkills:           missing,
		ExperienceMatch:         experienceBands[level].Contains(candidateMonths),
		RequiredExperienceLevel: level,
	}
}

// MatchJobs scores every posting against the candidate and ranks the result.
// Two explicit stages: (1) raw scoring per job, (2) a visibility pass that
// demotes weak matches to 0% rather than dropping them. Every posting is
// returned; unmatched ones just rank last.
func MatchJobs(candidateSkills []string, candidateMonths int, postings []JobPosting) []JobMatch {
	engine.IncrMatchRequests()

	matches := make([]JobMatch, 0, len(postings))
	for _, job := range postings {
		matches = append(matches, ScoreJob(candidateSkills, candidateMonths, job))
	}

	for i := range matches {
		if !retainsPercentage(&matches[i]) {
			matches[i].MatchPercentage = 0
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchPercentage != matches[j].MatchPercentage {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		}
		return len(matches[i].MissingSkills) < len(matches[j].MissingSkills)
	})
	return matches
}

// retainsPercentage is the inclusion rule: at least half the required skills
// present, or a posting with real requirements missing no more than three.
func retainsPercentage(m *JobMatch) bool {
	if m.MatchPercentage >= 50 {
		return true
	}
	required := len(m.MatchingSkills) + len(m.MissingSkills)
	return required > 0 && len(m.MissingSkills) <= 3
}
