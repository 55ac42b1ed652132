package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/repocheck/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/repocheck/internal/adapters/outbound/loader"
	"github.com/openkraft/repocheck/internal/adapters/outbound/runner"
	"github.com/openkraft/repocheck/internal/application"
	"github.com/openkraft/repocheck/internal/domain"
)

const commandTimeout = 60 * time.Second

// registerTools registers all repocheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, cfgLoader domain.ConfigLoader) {
	// 1. repocheck_renovate
	s.AddTool(
		mcplib.NewTool("repocheck_renovate",
			mcplib.WithDescription("Validate the project's Renovate configuration and return the report as JSON"),
		),
		handleRenovate(projectPath, cfgLoader),
	)

	// 2. repocheck_lint_setup
	s.AddTool(
		mcplib.NewTool("repocheck_lint_setup",
			mcplib.WithDescription("Check the lint-staged, Prettier, ESLint and husky setup and return the report as JSON"),
			mcplib.WithBoolean("skip_commands", mcplib.Description("Do not run npm, npx or node")),
		),
		handleLintSetup(projectPath, cfgLoader),
	)
}

func handleRenovate(projectPath string, cfgLoader domain.ConfigLoader) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := cfgLoader.Load(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewRenovateService(loader.New("Renovate"))
		report, err := svc.Validate(projectPath, cfg.RenovateRules())
		if err != nil {
			return errorResult(fmt.Sprintf("renovate validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// lintSetupResult carries the report together with the missing files that
// make the check fatal on the command line.
type lintSetupResult struct {
	Report       *domain.LintSetupReport `json:"report"`
	MissingFiles []string                `json:"missing_files,omitempty"`
}

func handleLintSetup(projectPath string, cfgLoader domain.ConfigLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := cfgLoader.Load(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rules := cfg.LintSetupRules()
		if skip, _ := request.GetArguments()["skip_commands"].(bool); skip {
			rules.SkipCommands = true
		}

		ctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()

		svc := application.NewLintSetupService(gitinfo.New(), runner.New())
		report, err := svc.Check(ctx, projectPath, rules)

		var missing *domain.MissingFilesError
		switch {
		case errors.As(err, &missing):
			return jsonResult(lintSetupResult{Report: report, MissingFiles: missing.Files})
		case err != nil:
			return errorResult(fmt.Sprintf("lint setup check failed: %v", err)), nil
		}
		return jsonResult(lintSetupResult{Report: report})
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
