package trials

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config controls a trial run.
type Config struct {
	Trials   int    `hcl:"trials,optional"`    // Total hands to mint
	DeckSize int    `hcl:"deck_size,optional"` // Permutation size per hand
	Workers  int    `hcl:"workers,optional"`   // Parallel minting workers
	Seed     *int64 `hcl:"seed,optional"`      // Deterministic seed (optional)
	Progress string `hcl:"progress,optional"`  // "dots", "rate" or "none"
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Trials:   10000,
		DeckSize: 10,
		Workers:  4,
		Progress: "dots",
	}
}

// LoadConfig loads a trial configuration from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var loaded Config
	diags = gohcl.DecodeBody(file.Body, nil, &loaded)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if loaded.Trials == 0 {
		loaded.Trials = cfg.Trials
	}
	if loaded.DeckSize == 0 {
		loaded.DeckSize = cfg.DeckSize
	}
	if loaded.Workers == 0 {
		loaded.Workers = cfg.Workers
	}
	if loaded.Progress == "" {
		loaded.Progress = cfg.Progress
	}

	return loaded, nil
}

// Validate validates the trial configuration.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.DeckSize < 0 {
		return fmt.Errorf("deck size must be non-negative, got %d", c.DeckSize)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}

	validProgress := map[string]bool{
		"dots": true,
		"rate": true,
		"none": true,
	}
	if !validProgress[c.Progress] {
		return fmt.Errorf("invalid progress style %q", c.Progress)
	}

	return nil
}
