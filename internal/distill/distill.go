package distill

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/git-pkgs/cratedocs/internal/cargo"
	"github.com/git-pkgs/cratedocs/internal/core"
	"github.com/git-pkgs/cratedocs/internal/roles"
	"github.com/git-pkgs/cratedocs/internal/store"
)

// Distiller composes summary documents from persisted artifacts. It holds
// no network dependencies; the role table is injected so rendering stays
// pure and testable.
type Distiller struct {
	store  *store.Store
	table  roles.Table
	urls   *cargo.URLs
	outDir string
	logger *log.Logger
}

// New creates a distiller writing summaries under outDir. urls may be nil,
// in which case crates.io URLs are rendered.
func New(st *store.Store, table roles.Table, urls *cargo.URLs, outDir string, logger *log.Logger) *Distiller {
	if urls == nil {
		urls = cargo.NewURLs(cargo.DefaultURL)
	}
	return &Distiller{store: st, table: table, urls: urls, outDir: outDir, logger: logger}
}

// Run reads the status index and renders one summary per crate whose
// metadata artifact exists, plus the navigation index. Crates without a
// metadata artifact are silently excluded; a malformed metadata document
// is logged and skipped. Returns the number of summaries written.
func (d *Distiller) Run() (int, error) {
	idx, err := d.store.ReadIndex()
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(d.outDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	var rows []IndexRow
	for _, name := range idx.SortedNames() {
		if !d.store.HasArtifact(name, core.MetaFile) {
			continue
		}

		rawMeta, err := d.store.ReadArtifact(name, core.MetaFile)
		if err != nil {
			return 0, err
		}
		crate, err := cargo.ParseCrate(rawMeta)
		if err != nil {
			d.logger.Warn("skipping crate with malformed metadata", "crate", name, "err", err)
			continue
		}

		var readme string
		if raw, err := d.store.ReadArtifact(name, core.ReadmeFile); err == nil {
			readme = string(raw)
		}

		var cargoFeats []string
		if raw, err := d.store.ReadArtifact(name, core.VersionsFile); err == nil {
			cargoFeats = cargo.FeaturesForVersion(raw, crate.MaxVersion)
		}

		s := Summary{
			Crate:         crate,
			Annotation:    d.table.Lookup(crate.ID),
			Features:      ExtractFeatures(readme),
			CargoFeatures: cargoFeats,
			RegistryURL:   d.urls.Registry(crate.ID, ""),
			PURL:          d.urls.PURL(crate.ID, crate.MaxVersion),
		}

		doc := RenderSummary(s)
		out := filepath.Join(d.outDir, crate.ID+".md")
		if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
			return 0, fmt.Errorf("writing summary: %w", err)
		}

		d.logger.Debug("wrote summary", "crate", crate.ID, "features", len(s.Features))
		rows = append(rows, IndexRow{ID: crate.ID, Description: crate.Description})
	}

	navDoc := RenderIndex(rows, d.store.Root(), d.outDir)
	navPath := filepath.Join(d.outDir, "README.md")
	if err := os.WriteFile(navPath, []byte(navDoc), 0o644); err != nil {
		return 0, fmt.Errorf("writing index: %w", err)
	}

	return len(rows), nil
}
