// Package roles holds the editorial mapping from crate to its intended
// role inside the engine. This is curated data, not derived from fetches;
// it is loaded from TOML config and injected into the distiller.
package roles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// AdoptionStatus says whether a crate is in use or still under evaluation.
type AdoptionStatus string

const (
	StatusNow     AdoptionStatus = "now"
	StatusPlanned AdoptionStatus = "planned"
)

// Annotation is the editorial triple attached to a crate.
type Annotation struct {
	Role   string         `toml:"role"`
	Gate   string         `toml:"gate"`
	Status AdoptionStatus `toml:"status"`
}

// Sentinel is returned for crates absent from the table.
var Sentinel = Annotation{Role: "TBD", Gate: "TBD", Status: StatusPlanned}

// Table maps crate id to its annotation.
type Table map[string]Annotation

// Lookup returns the annotation for a crate, or the TBD sentinel.
func (t Table) Lookup(id string) Annotation {
	if a, ok := t[id]; ok {
		return a
	}
	return Sentinel
}

// Config is the audit configuration: the ordered crate list to fetch and
// the role table used when rendering summaries.
type Config struct {
	Crates []string `toml:"crates"`
	Roles  Table    `toml:"roles"`
}

//go:embed default.toml
var defaultTOML []byte

// Default returns the built-in configuration covering the canonical
// dependency list.
func Default() Config {
	cfg, err := Parse(defaultTOML)
	if err != nil {
		panic(fmt.Sprintf("roles: embedded default config: %v", err))
	}
	return cfg
}

// Load reads a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML configuration and validates adoption statuses.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	for id, a := range cfg.Roles {
		switch a.Status {
		case StatusNow, StatusPlanned, "":
		default:
			return Config{}, fmt.Errorf("crate %s: unknown adoption status %q", id, a.Status)
		}
		if a.Status == "" {
			a.Status = StatusPlanned
			cfg.Roles[id] = a
		}
	}
	if cfg.Roles == nil {
		cfg.Roles = Table{}
	}
	return cfg, nil
}
