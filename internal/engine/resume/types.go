// Package resume turns loosely formatted resume text into typed records:
// contact info, education and experience entries, skills, and total tenure.
// All extractors are deterministic line-oriented heuristics; a pattern that
// does not match leaves its field empty, never errors.
package resume

// ContactInfo holds contact fields extracted from the resume header.
// Absent fields stay "".
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
}

// EducationEntry is one education record. A segment becomes an entry only
// when degree or institution is non-empty.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	EndDate     string   `json:"end_date"`
	Coursework  []string `json:"coursework"`
}

// ExperienceEntry is one work experience record.
// EndDate may be the literal marker "Present".
type ExperienceEntry struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
}

// TotalExperience is derived from the experience list, never mutated directly.
type TotalExperience struct {
	TotalMonths     int    `json:"total_months"`
	Years           int    `json:"years"`
	RemainingMonths int    `json:"remaining_months"`
	Formatted       string `json:"formatted"`
}

// Profile is the assembled output of a whole-resume analysis.
type Profile struct {
	ContactInfo     ContactInfo       `json:"contact_info"`
	Education       []EducationEntry  `json:"education"`
	Experience      []ExperienceEntry `json:"experience"`
	TotalExperience TotalExperience   `json:"total_experience"`
	Skills          []string          `json:"skills"`
}

// StoredProfile is a Profile plus persistence metadata.
type StoredProfile struct {
	Profile
	ProfileID   string `json:"profile_id"`
	LastUpdated string `json:"last_updated"`
}

// EmptyProfile returns the all-empty-but-well-typed default record the
// analysis facade falls back to on any internal fault.
func EmptyProfile() Profile {
	return Profile{
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Skills:     []string{},
		TotalExperience: TotalExperience{
			Formatted: "0 months",
		},
	}
}
