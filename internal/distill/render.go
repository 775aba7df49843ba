package distill

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/cratedocs/internal/core"
	"github.com/git-pkgs/cratedocs/internal/roles"
)

// maxCargoFeatures bounds the number of declared cargo features rendered.
const maxCargoFeatures = 40

// Placeholder lines rendered when a section has nothing to show. These are
// the only user-visible traces of extraction failures.
const (
	noFeaturesLine    = "- (no Features section detected in README)"
	noFeatureMetaLine = "- (no feature metadata available)"
	indexHeader       = "# Dependency docs index"
)

// Summary is the composed record rendered into one crate document.
type Summary struct {
	Crate         *core.Crate
	Annotation    roles.Annotation
	Features      []string // README bullets, document order
	CargoFeatures []string // declared feature names, sorted
	RegistryURL   string   // crates.io crate page
	PURL          string
}

// RenderSummary renders a summary with fixed sections in fixed order:
// title, description, upstream links, role mapping, notable features,
// cargo features.
func RenderSummary(s Summary) string {
	var b strings.Builder
	c := s.Crate

	fmt.Fprintf(&b, "# `%s` (audit)\n", c.ID)
	if c.Description != "" {
		b.WriteString(c.Description + "\n")
	}

	b.WriteString("## Upstream\n")
	fmt.Fprintf(&b, "- crates.io: `%s`\n", s.RegistryURL)
	if c.MaxVersion != "" {
		fmt.Fprintf(&b, "- latest observed: `%s`\n", c.MaxVersion)
	}
	if c.Repository != "" {
		fmt.Fprintf(&b, "- repository: `%s`\n", c.Repository)
	}
	if c.Documentation != "" {
		fmt.Fprintf(&b, "- documentation: `%s`\n", c.Documentation)
	}
	if s.PURL != "" {
		fmt.Fprintf(&b, "- purl: `%s`\n", s.PURL)
	}

	b.WriteString("\n## Role mapping\n")
	fmt.Fprintf(&b, "- Intended role: %s\n", s.Annotation.Role)
	fmt.Fprintf(&b, "- Gate: `%s`\n", s.Annotation.Gate)
	fmt.Fprintf(&b, "- Adoption status: `%s`\n", s.Annotation.Status)

	b.WriteString("\n## Notable features (from upstream README, heuristic)\n")
	if len(s.Features) > 0 {
		for _, f := range s.Features {
			fmt.Fprintf(&b, "- %s\n", f)
		}
	} else {
		b.WriteString(noFeaturesLine + "\n")
	}

	b.WriteString("\n## Cargo features (from registry metadata)\n")
	if len(s.CargoFeatures) > 0 {
		feats := s.CargoFeatures
		if len(feats) > maxCargoFeatures {
			feats = feats[:maxCargoFeatures]
		}
		for _, f := range feats {
			fmt.Fprintf(&b, "- `%s`\n", f)
		}
	} else {
		b.WriteString(noFeatureMetaLine + "\n")
	}

	return b.String()
}

// IndexRow is one navigation index line.
type IndexRow struct {
	ID          string
	Description string
}

// RenderIndex renders the navigation index. docRoot is the path prefix the
// summary links are written under (e.g. "docs/deps").
func RenderIndex(rows []IndexRow, rawRoot, docRoot string) string {
	var b strings.Builder
	b.WriteString(indexHeader + "\n\n")
	fmt.Fprintf(&b, "Generated from `%s`.\n\n", rawRoot)
	for _, row := range rows {
		line := fmt.Sprintf("- `%s/%s.md`", docRoot, row.ID)
		if row.Description != "" {
			line += " — " + row.Description
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
