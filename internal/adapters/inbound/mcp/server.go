package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/repocheck/internal/adapters/outbound/config"
)

// NewRepocheckMCPServer creates a new MCP server with the repocheck tools and
// resources registered. The projectPath is the root directory of the project
// to check.
func NewRepocheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"repocheck",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	cfgLoader := config.New()
	registerTools(s, projectPath, cfgLoader)
	registerResources(s, projectPath, cfgLoader)

	return s
}
