package resumeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_resume/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JobFetchInput is the input for job_fetch.
type JobFetchInput struct {
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
}

// JobFetchOutput is the output for job_fetch.
type JobFetchOutput struct {
	Query string            `json:"query"`
	Jobs  []jobs.JobPosting `json:"jobs"`
	Total int               `json:"total"`
}

func registerJobFetch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_fetch",
		Description: "Fetch job postings from Adzuna and GitHub Jobs for a query and optional location. Results are cached for the rest of the day.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input JobFetchInput) (*mcp.CallToolResult, JobFetchOutput, error) {
		if input.Query == "" {
			return nil, JobFetchOutput{}, errors.New("query is required")
		}
		postings := jobs.FetchJobs(ctx, input.Query, input.Location)
		return nil, JobFetchOutput{Query: input.Query, Jobs: postings, Total: len(postings)}, nil
	})
}
