package resume

import (
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Analyze runs the whole extraction pipeline on resume text: section split,
// per-section field extraction, tenure aggregation, profile assembly.
//
// This is the only fault boundary of the pipeline: any panic inside an
// extractor is caught here and converted into the all-empty default profile,
// so callers always receive a well-typed record.
func Analyze(text string) (profile Profile) {
	engine.IncrAnalyzeRequests()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("resume analysis failed, returning empty profile", slog.Any("panic", r))
			engine.IncrAnalyzeFaults()
			profile = EmptyProfile()
		}
	}()

	sections := SplitSections(text)
	slog.Debug("resume sections found", slog.Any("names", sections.Names()))

	contact := ExtractContact(sections.First(SectionHeader, "CONTACT"))

	// Name fallback: the document's very first non-blank line, when it is a
	// plain all-caps line, names the candidate even without a header section.
	if contact.Name == "" {
		if lines := engine.NonBlankLines(text); len(lines) > 0 && allCapsNameRe.MatchString(lines[0]) {
			contact.Name = lines[0]
		}
	}

	education := ExtractEducation(sections.Get("EDUCATION"))
	experience := ExtractExperience(sections.Get("EXPERIENCE"))
	skills := ExtractSkills(sections.First("TECHNICAL SKILLS", "SKILLS", "ADDITIONAL SKILLS"))
	total := CalculateTotalExperience(experience)

	if education == nil {
		education = []EducationEntry{}
	}
	if experience == nil {
		experience = []ExperienceEntry{}
	}
	if skills == nil {
		skills = []string{}
	}

	return Profile{
		ContactInfo:     contact,
		Education:       education,
		Experience:      experience,
		TotalExperience: total,
		Skills:          skills,
	}
}
