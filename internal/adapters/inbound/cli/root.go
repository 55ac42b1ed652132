package cli

import (
	"fmt"
	"os"

	"github.com/openkraft/repocheck/internal/adapters/outbound/tui"
	"github.com/openkraft/repocheck/internal/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		logJSON  bool
	)

	cmd := &cobra.Command{
		Use:           "repocheck",
		Short:         "Validate repository tooling configuration",
		Long:          "repocheck validates a project's Renovate configuration and its lint-staged, Prettier and ESLint setup.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{
				Level:  logLevel,
				Output: cmd.ErrOrStderr(),
				JSON:   logJSON,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON lines")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenovateCmd())
	cmd.AddCommand(newLintSetupCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command and prints any error once to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
	}
	return err
}
