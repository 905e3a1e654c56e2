// Package catalog holds the static crop species knowledge base: per-species
// growth stage schedules and total grow durations.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// StageDef describes one named phase of a crop's growth cycle.
type StageDef struct {
	Name         string   `json:"name" yaml:"name"`
	DurationDays int      `json:"durationDays" yaml:"duration_days"`
	Icon         string   `json:"icon" yaml:"icon"`
	CareActions  []string `json:"careActions" yaml:"care"`
}

// SpeciesConfig is the full grow schedule for one species.
//
// The sum of stage durations is not required to match TotalDurationDays; the
// stage data is informally authored and consumers must tolerate mismatch.
type SpeciesConfig struct {
	TotalDurationDays int        `json:"totalDurationDays" yaml:"total_duration_days"`
	Stages            []StageDef `json:"stages" yaml:"stages"`
}

// Catalog maps species names to their configs. Lookups are case-sensitive
// exact matches. The zero value is not usable; construct via Default or Load.
type Catalog struct {
	species map[string]SpeciesConfig
}

// FallbackTotalDurationDays is assumed for species absent from the catalog.
const FallbackTotalDurationDays = 90

// Fallback returns the config used for unknown species: a 90-day grow with
// no stage breakdown.
func Fallback() SpeciesConfig {
	return SpeciesConfig{TotalDurationDays: FallbackTotalDurationDays}
}

// Default returns the built-in species catalog.
func Default() *Catalog {
	return &Catalog{species: builtinSpecies()}
}

// Load reads a YAML species catalog from path. Species in the file replace
// the built-in entry of the same name; built-in species not mentioned in the
// file are kept.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var overrides map[string]SpeciesConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	species := builtinSpecies()
	for name, cfg := range overrides {
		if cfg.TotalDurationDays < 1 {
			return nil, fmt.Errorf("species %q: total_duration_days must be >= 1", name)
		}
		for _, s := range cfg.Stages {
			if s.DurationDays < 1 {
				return nil, fmt.Errorf("species %q stage %q: duration_days must be >= 1", name, s.Name)
			}
		}
		species[name] = cfg
	}

	return &Catalog{species: species}, nil
}

// Lookup returns the config for the named species, or the fallback config
// when the species is unknown. The second return reports whether the species
// was found.
func (c *Catalog) Lookup(name string) (SpeciesConfig, bool) {
	cfg, ok := c.species[name]
	if !ok {
		return Fallback(), false
	}
	return cfg, true
}

// Species returns the catalog's species names in sorted order.
func (c *Catalog) Species() []string {
	names := make([]string, 0, len(c.species))
	for name := range c.species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown checks whether the species has a catalog entry.
func (c *Catalog) IsKnown(name string) bool {
	_, ok := c.species[name]
	return ok
}
