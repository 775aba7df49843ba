package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/cratedocs/internal/cargo"
	"github.com/git-pkgs/cratedocs/internal/distill"
	"github.com/git-pkgs/cratedocs/internal/store"
)

const defaultDocDir = "docs/deps"

func newDistillCmd() *cobra.Command {
	var (
		configPath  string
		rawDir      string
		outDir      string
		registryURL string
	)

	cmd := &cobra.Command{
		Use:   "distill",
		Short: "Distill raw fetch artifacts into Markdown summaries",
		Long: `Distill reads the status index written by fetch and renders one audit
summary per crate whose metadata artifact exists, plus a navigation
index. Crates with missing metadata are silently excluded; missing
README or version data degrades to placeholder lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			st, err := store.New(rawDir)
			if err != nil {
				return err
			}

			d := distill.New(st, cfg.Roles, cargo.NewURLs(registryURL), outDir, logger)
			n, err := d.Run()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d summaries under %s\n", n, outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "audit config file (TOML); built-in table if unset")
	cmd.Flags().StringVar(&rawDir, "raw-dir", defaultRawDir, "directory holding raw fetch artifacts")
	cmd.Flags().StringVarP(&outDir, "out", "o", defaultDocDir, "directory for rendered summaries")
	cmd.Flags().StringVar(&registryURL, "registry", "", "registry base URL used in rendered links (default crates.io)")

	return cmd
}
