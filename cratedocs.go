// Package cratedocs audits third-party crates.io dependencies.
//
// The package runs in two passes. The fetch pass retrieves, for each crate
// in a configured list, the registry metadata document, the version history
// document, and the README of the latest version, persisting each as a raw
// artifact together with a consolidated status index. The distill pass
// reads those artifacts and renders one Markdown audit summary per crate
// plus a navigation index.
//
// Basic library usage:
//
//	c := cratedocs.DefaultClient()
//	reg := cratedocs.NewRegistry("", c)
//
//	crate, err := reg.FetchCrate(context.Background(), "serde")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(crate.ID, crate.MaxVersion)
//
// The README feature heuristic and the cargo feature extractor are exposed
// directly for callers that bring their own documents:
//
//	feats := cratedocs.ExtractFeatures(readmeText)
//	cargoFeats := cratedocs.FeaturesForVersion(versionsJSON, "1.0.228")
package cratedocs

import (
	"github.com/git-pkgs/cratedocs/client"
	"github.com/git-pkgs/cratedocs/internal/cargo"
	"github.com/git-pkgs/cratedocs/internal/core"
	"github.com/git-pkgs/cratedocs/internal/distill"
)

// Re-export types from internal/core
type (
	// Crate represents registry metadata for a single crate.
	Crate = core.Crate

	// Entry records the per-artifact fetch outcome for one crate.
	Entry = core.Entry

	// Index is the consolidated status document covering a run.
	Index = core.Index

	// Status is the recorded outcome for one artifact.
	Status = core.Status

	// Kind classifies the outcome of a single artifact fetch.
	Kind = core.Kind
)

// Re-export status constructors and kinds
const (
	KindOK        = core.KindOK
	KindHTTPError = core.KindHTTPError
	KindError     = core.KindError
	KindSkipped   = core.KindSkipped
)

var (
	OK          = core.OK
	HTTPFailure = core.HTTPFailure
	Failure     = core.Failure
	Skipped     = core.Skipped
	ParseStatus = core.ParseStatus
	NewIndex    = core.NewIndex
)

// Re-export types from client
type (
	// Client is an HTTP client with retry logic for registry APIs.
	Client = client.Client

	// BreakerClient wraps a Client with per-host circuit breakers.
	BreakerClient = client.BreakerClient

	// Option configures a Client.
	Option = client.Option
)

// DefaultClient returns a client with sensible defaults:
// - 30s timeout
// - 5 retries with exponential backoff
// - Retry on 429 and 5xx responses
var DefaultClient = client.DefaultClient

// NewClient creates a new client with the given options.
var NewClient = client.NewClient

// NewBreakerClient creates a circuit breaker wrapper around a client.
var NewBreakerClient = client.NewBreakerClient

var (
	WithTimeout    = client.WithTimeout
	WithMaxRetries = client.WithMaxRetries
	WithUserAgent  = client.WithUserAgent
)

// Re-export errors
var ErrNotFound = client.ErrNotFound

type (
	HTTPError     = client.HTTPError
	NotFoundError = client.NotFoundError
)

// Registry is a crates.io API client.
type Registry = cargo.Registry

// DefaultRegistryURL is the public crates.io endpoint.
const DefaultRegistryURL = cargo.DefaultURL

// NewRegistry creates a crates.io registry client.
// If baseURL is empty, crates.io is used; if c is nil, DefaultClient() is used.
func NewRegistry(baseURL string, c client.Getter) *Registry {
	if c == nil {
		c = client.DefaultClient()
	}
	return cargo.New(baseURL, c)
}

// ExtractFeatures scans README text for a "Features" section and collects
// up to 12 bullet lines in document order.
var ExtractFeatures = distill.ExtractFeatures

// FeaturesForVersion extracts the declared feature names of the matching
// version record from a raw version history document, sorted ascending.
var FeaturesForVersion = cargo.FeaturesForVersion

// ParseCrate parses a raw crate metadata document into a Crate record.
var ParseCrate = cargo.ParseCrate
