// Package core provides the shared data model for the fetch and distill passes.
package core

// Crate represents registry metadata for a single crate, parsed from the
// crates.io crate document. Immutable once read.
type Crate struct {
	ID            string
	Description   string
	Homepage      string
	Repository    string
	Documentation string
	MaxVersion    string
	Keywords      []string
}

// Entry records the per-artifact fetch outcome for one crate.
type Entry struct {
	MetaURL   string `json:"meta_url"`
	ReadmeURL string `json:"readme_url"`
	Meta      Status `json:"meta"`
	Versions  Status `json:"versions"`
	Readme    Status `json:"readme"`
}

// Artifact filenames written under the raw directory, one subdirectory
// per crate.
const (
	MetaFile     = "meta.json"
	VersionsFile = "versions.json"
	ReadmeFile   = "readme.md"
	IndexFile    = "index.json"
)
