// Package audit implements the fetch pass: for each configured crate it
// retrieves registry metadata, version history, and the latest README,
// persisting raw artifacts plus a consolidated status index.
package audit

import (
	"context"
	"errors"
	"net"

	"github.com/charmbracelet/log"

	"github.com/git-pkgs/cratedocs/client"
	"github.com/git-pkgs/cratedocs/internal/cargo"
	"github.com/git-pkgs/cratedocs/internal/core"
	"github.com/git-pkgs/cratedocs/internal/store"
)

// Runner drives one fetch pass. Crates are processed strictly in order,
// and within a crate the three retrievals run in sequence because the
// README URL needs the max version from the metadata document.
type Runner struct {
	reg    *cargo.Registry
	store  *store.Store
	logger *log.Logger
}

// New creates a fetch runner.
func New(reg *cargo.Registry, st *store.Store, logger *log.Logger) *Runner {
	return &Runner{reg: reg, store: st, logger: logger}
}

// Run fetches artifacts for every crate and writes the status index.
// Per-artifact failures are recorded in the index, never returned; the
// only error paths are catastrophic ones (artifact or index writes).
func (r *Runner) Run(ctx context.Context, crates []string) (*core.Index, error) {
	idx := core.NewIndex()
	urls := r.reg.URLs()

	for _, crate := range crates {
		entry := core.Entry{MetaURL: urls.Meta(crate)}

		// The crates.io id may differ from the configured name in
		// dash/underscore normalization; later requests use the id.
		id := crate
		maxVersion := ""

		raw, err := r.reg.FetchCrateRaw(ctx, crate)
		if err != nil {
			entry.Meta = failureStatus(err)
		} else if werr := r.store.WriteArtifact(crate, core.MetaFile, raw); werr != nil {
			return nil, werr
		} else if parsed, perr := cargo.ParseCrate(raw); perr != nil {
			entry.Meta = core.Failure("parse")
		} else {
			entry.Meta = core.OK()
			id = parsed.ID
			maxVersion = parsed.MaxVersion
		}

		rawVers, err := r.reg.FetchVersionsRaw(ctx, id)
		if err != nil {
			entry.Versions = failureStatus(err)
		} else if werr := r.store.WriteArtifact(crate, core.VersionsFile, rawVers); werr != nil {
			return nil, werr
		} else {
			entry.Versions = core.OK()
		}

		if !entry.Meta.IsOK() || maxVersion == "" {
			entry.Readme = core.Skipped("no_meta")
		} else {
			entry.ReadmeURL = urls.Readme(id, maxVersion)
			rawReadme, err := r.reg.FetchReadmeRaw(ctx, id, maxVersion)
			if err != nil {
				entry.Readme = failureStatus(err)
			} else if werr := r.store.WriteArtifact(crate, core.ReadmeFile, rawReadme); werr != nil {
				return nil, werr
			} else {
				entry.Readme = core.OK()
			}
		}

		r.logger.Debug("fetched crate bundle",
			"crate", crate,
			"meta", entry.Meta.String(),
			"versions", entry.Versions.String(),
			"readme", entry.Readme.String())

		idx.Set(crate, entry)
	}

	if err := r.store.WriteIndex(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// failureStatus converts a fetch error into its recorded status value.
func failureStatus(err error) core.Status {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return core.HTTPFailure(httpErr.StatusCode)
	}
	return core.Failure(errKind(err))
}

// errKind classifies non-HTTP failures for the status record.
func errKind(err error) string {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, client.ErrUpstreamDown):
		return "upstream_down"
	default:
		return "transport"
	}
}
