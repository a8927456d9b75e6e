package resumeserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProfileGetInput is the input for profile_get and profile_delete.
type ProfileGetInput struct {
	ProfileID string `json:"profile_id"`
}

// ProfileListInput is the input for profile_list.
type ProfileListInput struct{}

// ProfileListOutput is the output for profile_list.
type ProfileListOutput struct {
	Profiles []resume.StoredProfile `json:"profiles"`
	Total    int                    `json:"total"`
}

// ProfileDeleteOutput is the output for profile_delete.
type ProfileDeleteOutput struct {
	ProfileID string `json:"profile_id"`
	Deleted   bool   `json:"deleted"`
}

func profileStore() (*resume.ProfileDB, error) {
	db := resume.GetProfileDB()
	if db == nil {
		return nil, errors.New("profile storage is not configured (set DATABASE_URL)")
	}
	return db, nil
}

func registerProfileGet(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_get",
		Description: "Fetch a stored resume profile by ID. Returns the full structured profile with contact info, education, experience, and skills.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileGetInput) (*mcp.CallToolResult, *resume.StoredProfile, error) {
		if input.ProfileID == "" {
			return nil, nil, errors.New("profile_id is required")
		}
		db, err := profileStore()
		if err != nil {
			return nil, nil, err
		}
		stored, err := db.GetProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, nil, err
		}
		if stored == nil {
			return nil, nil, fmt.Errorf("profile %q not found", input.ProfileID)
		}
		return nil, stored, nil
	})
}

func registerProfileList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_list",
		Description: "List all stored resume profiles, most recently updated first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ ProfileListInput) (*mcp.CallToolResult, *ProfileListOutput, error) {
		db, err := profileStore()
		if err != nil {
			return nil, nil, err
		}
		profiles, err := db.ListProfiles(ctx)
		if err != nil {
			return nil, nil, err
		}
		return nil, &ProfileListOutput{Profiles: profiles, Total: len(profiles)}, nil
	})
}

func registerProfileDelete(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_delete",
		Description: "Delete a stored resume profile by ID.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ProfileGetInput) (*mcp.CallToolResult, *ProfileDeleteOutput, error) {
		if input.ProfileID == "" {
			return nil, nil, errors.New("profile_id is required")
		}
		db, err := profileStore()
		if err != nil {
			return nil, nil, err
		}
		deleted, err := db.DeleteProfile(ctx, input.ProfileID)
		if err != nil {
			return nil, nil, err
		}
		return nil, &ProfileDeleteOutput{ProfileID: input.ProfileID, Deleted: deleted}, nil
	})
}
