package resumeserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine/jobs"
	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JobMatchInput is the input for job_match. The candidate comes from a
// stored profile (profile_id), raw resume text, or an explicit skill list.
type JobMatchInput struct {
	Query       string   `json:"query"`
	Location    string   `json:"location,omitempty"`
	ProfileID   string   `json:"profile_id,omitempty"`
	ResumeText  string   `json:"resume_text,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	TotalMonths int      `json:"total_months,omitempty"`
}

// JobMatchOutput is the output for job_match.
type JobMatchOutput struct {
	Query   string          `json:"query"`
	Matches []jobs.JobMatch `json:"matches"`
	Total   int             `json:"total"`
}

func registerJobMatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match",
		Description: "Fetch postings for a query and rank them against a candidate by skill overlap and experience level. The candidate comes from profile_id, resume_text, or an explicit skills list with total_months. Matches are sorted best first; postings below the match threshold stay in the list at 0%.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobMatchInput) (*mcp.CallToolResult, JobMatchOutput, error) {
		if input.Query == "" {
			return nil, JobMatchOutput{}, errors.New("query is required")
		}

		skills, months, err := resolveCandidate(ctx, input)
		if err != nil {
			return nil, JobMatchOutput{}, err
		}

		postings := jobs.FetchJobs(ctx, input.Query, input.Location)
		matches := jobs.MatchJobs(skills, months, postings)

		if _, err := jobs.SaveMatchRun(ctx, input.ProfileID, input.Query, input.Location, matches); err != nil {
			slog.Warn("job_match: history save failed", slog.Any("error", err))
		}

		return nil, JobMatchOutput{Query: input.Query, Matches: matches, Total: len(matches)}, nil
	})
}

// resolveCandidate extracts the skill set and experience months from
// whichever candidate source the input carries.
func resolveCandidate(ctx context.Context, input JobMatchInput) ([]string, int, error) {
	switch {
	case input.ProfileID != "":
		db := resume.GetProfileDB()
		if db == nil {
			return nil, 0, errors.New("profile storage is not configured (set DATABASE_URL)")
		}
		stored, err := db.GetProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, 0, err
		}
		if stored == nil {
			return nil, 0, fmt.Errorf("profile %q not found", input.ProfileID)
		}
		return stored.Skills, stored.TotalExperience.TotalMonths, nil

	case input.ResumeText != "":
		profile := resume.Analyze(input.ResumeText)
		return profile.Skills, profile.TotalExperience.TotalMonths, nil

	case len(input.Skills) > 0:
		return input.Skills, input.TotalMonths, nil
	}
	return nil, 0, errors.New("one of profile_id, resume_text, or skills is required")
}
