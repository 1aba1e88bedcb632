// Package config holds the explicit pipeline configuration: which export to
// read, how to filter it, and what to report on.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pable/go-lol-metrics/internal/model"
)

// Defaults match the analysis the tool was first written for: ranked bot
// lane games, champions with at least twenty games, Sivir in focus.
const (
	DefaultGameMode   = "CLASSIC"
	DefaultPosition   = "BOTTOM"
	DefaultMinSamples = 20
	DefaultChampion   = "Sivir"
	DefaultEnvFile    = ".env"
)

// Environment variables read by ApplyEnv.
const (
	EnvDataset     = "LOLMETRICS_DATA"
	EnvGameMode    = "LOLMETRICS_MODE"
	EnvPosition    = "LOLMETRICS_POSITION"
	EnvMinSamples  = "LOLMETRICS_MIN_GAMES"
	EnvChampion    = "LOLMETRICS_CHAMPION"
	EnvItemVersion = "LOLMETRICS_ITEM_VERSION"
)

// Config is everything one pipeline run depends on.
type Config struct {
	DatasetPath string
	// GameMode and Position restrict the dataset before analysis. An empty
	// value disables that restriction.
	GameMode        string
	Position        string
	MinSamples      int
	TargetCharacter string
	// ItemVersion is the Data Dragon patch for item names, or "latest".
	ItemVersion string
	// Offline skips the item catalog download.
	Offline bool
}

// Default returns the built-in configuration. DatasetPath is left empty.
func Default() Config {
	return Config{
		GameMode:        DefaultGameMode,
		Position:        DefaultPosition,
		MinSamples:      DefaultMinSamples,
		TargetCharacter: DefaultChampion,
		ItemVersion:     "latest",
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing default
// file is not an error; a missing explicitly named one is.
func LoadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDataset); ok {
		c.DatasetPath = v
	}
	if v, ok := lookup(EnvGameMode); ok {
		c.GameMode = v
	}
	if v, ok := lookup(EnvPosition); ok {
		c.Position = v
	}
	if v, ok := lookup(EnvChampion); ok {
		c.TargetCharacter = v
	}
	if v, ok := lookup(EnvItemVersion); ok {
		c.ItemVersion = v
	}
	if v, ok := lookup(EnvMinSamples); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvMinSamples, v)
		}
		c.MinSamples = n
	}
	return nil
}

// Validate rejects configurations no pipeline run can satisfy.
func (c Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("no dataset: pass --data or set %s", EnvDataset)
	}
	if c.MinSamples < 0 {
		return fmt.Errorf("min games must be >= 0, got %d", c.MinSamples)
	}
	return nil
}

// Predicates returns the dataset restriction the configuration asks for.
func (c Config) Predicates() map[model.Column]string {
	p := make(map[model.Column]string, 2)
	if c.GameMode != "" {
		p[model.ColGameMode] = c.GameMode
	}
	if c.Position != "" {
		p[model.ColPosition] = c.Position
	}
	return p
}
