package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/cratedocs/client"
	"github.com/git-pkgs/cratedocs/internal/audit"
	"github.com/git-pkgs/cratedocs/internal/cargo"
	"github.com/git-pkgs/cratedocs/internal/roles"
	"github.com/git-pkgs/cratedocs/internal/store"
)

const defaultRawDir = "third_party/crate_docs"

func newFetchCmd() *cobra.Command {
	var (
		configPath  string
		rawDir      string
		registryURL string
	)

	cmd := &cobra.Command{
		Use:   "fetch [crate|purl ...]",
		Short: "Fetch crates.io metadata, versions, and READMEs",
		Long: `Fetch retrieves, for each crate, the registry metadata document, the
version history document, and the README of the latest version, writing
each as a raw artifact plus one consolidated status index. Crates may be
given as bare names or package URLs (pkg:cargo/serde); without arguments
the configured dependency list is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			crates := cfg.Crates
			if len(args) > 0 {
				crates, err = resolveCrates(args)
				if err != nil {
					return err
				}
			}

			st, err := store.New(rawDir)
			if err != nil {
				return err
			}

			// One attempt per artifact per run; failures are recorded in
			// the index, not retried. The breaker stops hammering a host
			// that is clearly down mid-run.
			c := client.NewClient(client.WithMaxRetries(0))
			defer c.Close()
			reg := cargo.New(registryURL, client.NewBreakerClient(c))

			idx, err := audit.New(reg, st, logger).Run(cmd.Context(), crates)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d crate doc bundles under %s\n", idx.Len(), st.Root())
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "audit config file (TOML); built-in list if unset")
	cmd.Flags().StringVar(&rawDir, "raw-dir", defaultRawDir, "directory for raw fetch artifacts")
	cmd.Flags().StringVar(&registryURL, "registry", "", "registry base URL (default crates.io)")

	return cmd
}

// loadConfig returns the configuration from path, or the built-in default.
func loadConfig(path string) (roles.Config, error) {
	if path == "" {
		return roles.Default(), nil
	}
	return roles.Load(path)
}
