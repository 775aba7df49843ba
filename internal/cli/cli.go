// Package cli implements the cratedocs command-line interface.
//
// Two subcommands mirror the two passes of the audit:
//   - fetch: retrieve crates.io metadata, version history, and READMEs,
//     writing raw artifacts plus a status index
//   - distill: render per-crate Markdown summaries and a navigation index
//     from the persisted artifacts
//
// Per-crate failures never fail the process; they are absorbed into the
// status index so a partial registry outage still yields a usable run.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the cratedocs CLI and returns an error if a command fails
// for a reason outside the documented per-crate taxonomy (for example an
// unwritable output directory).
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cratedocs",
		Short:        "cratedocs audits crates.io dependencies into Markdown summaries",
		Long:         `cratedocs fetches crates.io metadata, version history, and README text for a configured dependency list, then distills per-crate audit summaries and a navigation index.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cratedocs %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFetchCmd())
	root.AddCommand(newDistillCmd())

	return root.ExecuteContext(ctx)
}
