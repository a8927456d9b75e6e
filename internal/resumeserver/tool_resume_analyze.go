package resumeserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anatolykoptev/go_resume/internal/engine/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResumeAnalyzeInput is the input for resume_analyze.
type ResumeAnalyzeInput struct {
	Text      string `json:"text,omitempty"`
	PDFPath   string `json:"pdf_path,omitempty"`
	ProfileID string `json:"profile_id,omitempty"`
	Save      bool   `json:"save,omitempty"`
}

// ResumeAnalyzeOutput is the output for resume_analyze.
type ResumeAnalyzeOutput struct {
	resume.Profile
	ProfileID   string `json:"profile_id,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
	Saved       bool   `json:"saved"`
}

func registerResumeAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_analyze",
		Description: "Analyze resume text (or a local PDF file) into a structured profile: contact info, education, work experience, total experience, and skills. Set save=true to persist the profile for later matching; pass profile_id to update an existing one.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ResumeAnalyzeInput) (*mcp.CallToolResult, ResumeAnalyzeOutput, error) {
		text := input.Text
		if text == "" && input.PDFPath != "" {
			extracted, err := resume.ExtractPDFText(input.PDFPath)
			if err != nil {
				return nil, ResumeAnalyzeOutput{}, err
			}
			text = extracted
		}
		if text == "" {
			return nil, ResumeAnalyzeOutput{}, errors.New("text or pdf_path is required")
		}

		profile := resume.Analyze(text)
		out := ResumeAnalyzeOutput{Profile: profile}

		if input.Save || input.ProfileID != "" {
			db := resume.GetProfileDB()
			if db == nil {
				return nil, ResumeAnalyzeOutput{}, errors.New("profile storage is not configured (set DATABASE_URL)")
			}
			stored, err := db.SaveProfile(ctx, profile, input.ProfileID)
			if err != nil {
				slog.Warn("resume_analyze: save failed", slog.Any("error", err))
				return nil, ResumeAnalyzeOutput{}, err
			}
			out.ProfileID = stored.ProfileID
			out.LastUpdated = stored.LastUpdated
			out.Saved = true
		}
		return nil, out, nil
	})
}
