package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/repocheck/internal/adapters/outbound/config"
	"github.com/openkraft/repocheck/internal/adapters/outbound/loader"
	"github.com/openkraft/repocheck/internal/adapters/outbound/tui"
	"github.com/openkraft/repocheck/internal/application"
	"github.com/spf13/cobra"
)

func newRenovateCmd() *cobra.Command {
	var (
		path       string
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "renovate",
		Short: "Validate the project's Renovate configuration",
		Long: "Locate the Renovate configuration file, parse it and report required fields, " +
			"recommended presets, package rules, schedule and security settings.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return err
			}

			svc := application.NewRenovateService(loader.New("Renovate"))
			report, err := svc.Validate(absPath, cfg.RenovateRules())
			if err != nil {
				return err
			}
			report.Summary.ConfigFile = invocationRelPath(report.ConfigPath, report.Summary.ConfigFile)

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRenovateReport(report))
			}

			if (strict || cfg.Renovate.Strict) && report.Gaps() > 0 {
				return fmt.Errorf("%s has %d issue(s) (strict mode)", report.RelPath, report.Gaps())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root to search for the Renovate config")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any check fails or warns")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// invocationRelPath returns path relative to the working directory, or
// fallback when that cannot be computed.
func invocationRelPath(path, fallback string) string {
	wd, err := os.Getwd()
	if err != nil {
		return fallback
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return fallback
	}
	return filepath.ToSlash(rel)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

