package cli

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/purl"
)

// resolveCrates converts command-line crate arguments to crate names.
// An argument may be a bare crate name or a package URL such as
// pkg:cargo/serde; non-cargo PURLs are rejected.
func resolveCrates(args []string) ([]string, error) {
	crates := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "pkg:") {
			crates = append(crates, arg)
			continue
		}

		p, err := purl.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid purl %q: %w", arg, err)
		}
		if p.Type != "cargo" {
			return nil, fmt.Errorf("unsupported purl type %q in %q (only cargo)", p.Type, arg)
		}
		crates = append(crates, p.Name)
	}
	return crates, nil
}
