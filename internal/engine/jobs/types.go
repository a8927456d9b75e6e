// Package jobs fetches job postings from external APIs and ranks them
// against an extracted candidate profile.
package jobs

// JobPosting is one job record as returned by a source. Immutable once fetched.
type JobPosting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Source      string   `json:"source"`
	ID          string   `json:"id"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
}

// ExperienceLevel is a named seniority tier inferred from a job description.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelAssociate ExperienceLevel = "associate"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelIntern    ExperienceLevel = "intern"
)

// levelOrder fixes the enumeration order used for tie-breaking level scores.
var levelOrder = []ExperienceLevel{LevelEntry, LevelAssociate, LevelMid, LevelSenior, LevelIntern}

// ExperienceBand is the month range associated with a level. MaxMonths < 0
// means unbounded above.
type ExperienceBand struct {
	MinMonths int
	MaxMonths int
}

// Contains reports whether months falls inside the band, inclusive at both ends.
func (b ExperienceBand) Contains(months int) bool {
	if months < b.MinMonths {
		return false
	}
	return b.MaxMonths < 0 || months <= b.MaxMonths
}

// JobMatch is a posting scored against a candidate profile.
type JobMatch struct {
	JobPosting
	MatchPercentage         float64         `json:"match_percentage"`
	MatchingSkills          []string        `json:"matching_skills"`
	MissingSkills           []string        `json:"missing_skills"`
	ExperienceMatch         bool            `json:"experience_match"`
	RequiredExperienceLevel ExperienceLevel `json:"required_experience_level"`
}
