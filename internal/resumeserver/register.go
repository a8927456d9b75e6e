// Package resumeserver wires the resume analysis and job matching tools
// onto an MCP server.
package resumeserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume and matching tools on the given MCP
// server: resume_analyze, profile_get, profile_list, profile_delete,
// job_fetch, job_match, match_history.
func RegisterTools(server *mcp.Server) {
	registerResumeAnalyze(server)
	registerProfileGet(server)
	registerProfileList(server)
	registerProfileDelete(server)
	registerJobFetch(server)
	registerJobMatch(server)
	registerMatchHistory(server)
}
