// Package cargo provides a registry client for crates.io.
package cargo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/git-pkgs/cratedocs/client"
	"github.com/git-pkgs/cratedocs/internal/core"
)

const DefaultURL = "https://crates.io"

// Registry is a crates.io API client. It exposes the raw documents the
// fetch pass persists as artifacts, alongside parsed forms.
type Registry struct {
	baseURL string
	client  client.Getter
	urls    *URLs
}

// New creates a registry client. If baseURL is empty, crates.io is used.
func New(baseURL string, c client.Getter) *Registry {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	r := &Registry{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  c,
	}
	r.urls = NewURLs(r.baseURL)
	return r
}

func (r *Registry) URLs() *URLs {
	return r.urls
}

type crateResponse struct {
	Crate crateInfo `json:"crate"`
}

type crateInfo struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Homepage      string   `json:"homepage"`
	Documentation string   `json:"documentation"`
	Repository    string   `json:"repository"`
	MaxVersion    string   `json:"max_version"`
	Keywords      []string `json:"keywords"`
}

type versionsResponse struct {
	Versions []versionInfo `json:"versions"`
}

type versionInfo struct {
	Num       string              `json:"num"`
	License   string              `json:"license"`
	Yanked    bool                `json:"yanked"`
	CreatedAt string              `json:"created_at"`
	Features  map[string][]string `json:"features"`
}

// FetchCrateRaw retrieves the crate metadata document verbatim. Upstream
// failures come back as *client.HTTPError so callers recording statuses
// keep the response code, 404 included.
func (r *Registry) FetchCrateRaw(ctx context.Context, name string) ([]byte, error) {
	return r.client.GetBody(ctx, r.urls.Meta(name))
}

// FetchVersionsRaw retrieves the version history document verbatim.
func (r *Registry) FetchVersionsRaw(ctx context.Context, name string) ([]byte, error) {
	return r.client.GetBody(ctx, r.urls.Versions(name))
}

// FetchReadmeRaw retrieves the rendered README text for a specific version.
func (r *Registry) FetchReadmeRaw(ctx context.Context, name, version string) ([]byte, error) {
	return r.client.GetBody(ctx, r.urls.Readme(name, version))
}

// FetchCrate retrieves and parses crate metadata. A 404 is reported as a
// *client.NotFoundError.
func (r *Registry) FetchCrate(ctx context.Context, name string) (*core.Crate, error) {
	raw, err := r.FetchCrateRaw(ctx, name)
	if err != nil {
		var httpErr *client.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsNotFound() {
			return nil, &client.NotFoundError{Name: name}
		}
		return nil, err
	}
	return ParseCrate(raw)
}

// ParseCrate parses a raw crate metadata document into a Crate record.
// The crates.io id is authoritative; it may differ from the requested name
// in dash/underscore normalization.
func ParseCrate(raw []byte) (*core.Crate, error) {
	var resp crateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parsing crate metadata: %w", err)
	}
	if resp.Crate.ID == "" && resp.Crate.Name == "" {
		return nil, fmt.Errorf("parsing crate metadata: no crate record")
	}

	id := resp.Crate.ID
	if id == "" {
		id = resp.Crate.Name
	}

	return &core.Crate{
		ID:            id,
		Description:   strings.TrimSpace(resp.Crate.Description),
		Homepage:      resp.Crate.Homepage,
		Repository:    resp.Crate.Repository,
		Documentation: resp.Crate.Documentation,
		MaxVersion:    resp.Crate.MaxVersion,
		Keywords:      resp.Crate.Keywords,
	}, nil
}

// FeaturesForVersion extracts the declared feature names of the version
// record whose number equals version, sorted ascending. A malformed
// document or a missing version yields an empty result, never an error.
// Only the first matching record is used.
func FeaturesForVersion(raw []byte, version string) []string {
	var resp versionsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	for _, v := range resp.Versions {
		if v.Num != version {
			continue
		}
		feats := make([]string, 0, len(v.Features))
		for name := range v.Features {
			feats = append(feats, name)
		}
		sort.Strings(feats)
		return feats
	}
	return nil
}

// URLs constructs crates.io URLs for a crate.
type URLs struct {
	baseURL string
}

// NewURLs creates a URL builder for a registry base URL.
func NewURLs(baseURL string) *URLs {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &URLs{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Meta returns the crate metadata API URL.
func (u *URLs) Meta(name string) string {
	return fmt.Sprintf("%s/api/v1/crates/%s", u.baseURL, name)
}

// Versions returns the version history API URL.
func (u *URLs) Versions(name string) string {
	return fmt.Sprintf("%s/api/v1/crates/%s/versions", u.baseURL, name)
}

// Readme returns the rendered README API URL for a version.
func (u *URLs) Readme(name, version string) string {
	return fmt.Sprintf("%s/api/v1/crates/%s/%s/readme", u.baseURL, name, version)
}

// Registry returns the human-facing crate page URL.
func (u *URLs) Registry(name, version string) string {
	if version != "" {
		return fmt.Sprintf("%s/crates/%s/%s", u.baseURL, name, version)
	}
	return fmt.Sprintf("%s/crates/%s", u.baseURL, name)
}

// Documentation returns the docs.rs URL.
func (u *URLs) Documentation(name, version string) string {
	if version != "" {
		return fmt.Sprintf("https://docs.rs/%s/%s", name, version)
	}
	return fmt.Sprintf("https://docs.rs/%s", name)
}

// PURL returns the package URL identifier.
func (u *URLs) PURL(name, version string) string {
	if version != "" {
		return fmt.Sprintf("pkg:cargo/%s@%s", name, version)
	}
	return fmt.Sprintf("pkg:cargo/%s", name)
}
