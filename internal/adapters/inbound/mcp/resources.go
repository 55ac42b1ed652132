package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/repocheck/internal/domain"
)

const configURI = "repocheck://config"

// registerResources registers all repocheck MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, cfgLoader domain.ConfigLoader) {
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Effective Configuration",
			mcplib.WithResourceDescription("The .repocheck.yaml settings merged over the built-in defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath, cfgLoader),
	)
}

func handleConfigResource(projectPath string, cfgLoader domain.ConfigLoader) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := cfgLoader.Load(projectPath)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      configURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
