package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the caseforge CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (gen, check,
// viz, tasks), configures logging based on the --verbose flag, and executes
// the command tree with ctx as the base context, so signal cancellation
// propagates into generation loops and candidate subprocesses.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "caseforge",
		Short:        "Caseforge synthesizes seeded test corpora and validates candidates against them",
		Long:         `Caseforge is a CLI tool for generating reproducible test corpora (randomized DAGs, adversarial weighted graphs, scatter/reduce workloads) and for validating candidate implementations against the stored expectations.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			lctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(lctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("caseforge %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newTasksCmd())

	return root.ExecuteContext(ctx)
}
