package resumeserver

import (
	"context"

	"github.com/anatolykoptev/go_resume/internal/engine/jobs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MatchHistoryInput is the input for match_history.
type MatchHistoryInput struct {
	ProfileID string `json:"profile_id,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// MatchHistoryOutput is the output for match_history.
type MatchHistoryOutput struct {
	Runs  []jobs.MatchRun `json:"runs"`
	Total int             `json:"total"`
}

func registerMatchHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_history",
		Description: "List recent job matching runs from the local history (SQLite), newest first. Optionally filter by profile_id.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input MatchHistoryInput) (*mcp.CallToolResult, *MatchHistoryOutput, error) {
		runs, err := jobs.ListMatchRuns(ctx, input.ProfileID, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &MatchHistoryOutput{Runs: runs, Total: len(runs)}, nil
	})
}
