package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/openkraft/repocheck/internal/adapters/outbound/config"
	"github.com/openkraft/repocheck/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/repocheck/internal/adapters/outbound/runner"
	"github.com/openkraft/repocheck/internal/adapters/outbound/tui"
	"github.com/openkraft/repocheck/internal/application"
	"github.com/openkraft/repocheck/internal/domain"
	"github.com/spf13/cobra"
)

func newLintSetupCmd() *cobra.Command {
	var (
		path         string
		jsonOutput   bool
		skipCommands bool
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "lint-setup",
		Short: "Check the lint-staged, Prettier and ESLint setup",
		Long: "Verify that lint-staged, Prettier and ESLint are configured, that the husky " +
			"pre-commit hook runs lint-staged and that the toolchain packages are installed.",
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
			rules := cfg.LintSetupRules()
			if skipCommands {
				rules.SkipCommands = true
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			svc := application.NewLintSetupService(gitinfo.New(), runner.New())
			report, checkErr := svc.Check(ctx, absPath, rules)
			var missing *domain.MissingFilesError
			if checkErr != nil && !errors.As(checkErr, &missing) {
				return checkErr
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLintSetupReport(report))
			}

			// missing config files are fatal once the report is out
			return checkErr
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root to check")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&skipCommands, "skip-commands", false, "Do not run npm, npx or node")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Time limit for external commands")

	return cmd
}
