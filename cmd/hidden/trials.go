package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/hidden/internal/trials"
)

var reportHeaderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFD700")).
	Bold(true)

// TrialsCmd mints many hands and reports how uniform the dispensed
// permutations look. Useful as a smoke test of the shuffle.
type TrialsCmd struct {
	Config   string `kong:"help='HCL config file for the trial run'"`
	Trials   int    `kong:"help='Total hands to mint (overrides config)'"`
	DeckSize int    `kong:"help='Permutation size per hand (overrides config)'"`
	Workers  int    `kong:"help='Parallel minting workers (overrides config)'"`
	Seed     *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Progress string `kong:"help='Progress style: dots, rate or none (overrides config)'"`
	Debug    bool   `kong:"help='Enable debug logging'"`
}

func (c *TrialsCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg := trials.DefaultConfig()
	if c.Config != "" {
		loaded, err := trials.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override whatever the config file said.
	if c.Trials > 0 {
		cfg.Trials = c.Trials
	}
	if c.DeckSize > 0 {
		cfg.DeckSize = c.DeckSize
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.Seed != nil {
		cfg.Seed = c.Seed
	}
	if c.Progress != "" {
		cfg.Progress = c.Progress
	}

	var mon trials.Monitor
	switch cfg.Progress {
	case "rate":
		mon = trials.NewRateMonitor(logger, quartz.NewReal(), time.Second)
	case "none":
		mon = trials.NopMonitor{}
	default:
		mon = trials.NewDotsMonitor(nil)
	}

	logger.Info("starting trial run",
		"trials", cfg.Trials,
		"deck_size", cfg.DeckSize,
		"workers", cfg.Workers)

	collector, err := trials.Run(context.Background(), cfg, logger, mon)
	if err != nil {
		return fmt.Errorf("trial run failed: %w", err)
	}

	low, high := collector.AgreementConfidenceInterval95()

	fmt.Println(reportHeaderStyle.Render("Shuffle uniformity report"))
	fmt.Printf("hands:            %d (size %d)\n", collector.Hands(), collector.Size())
	fmt.Printf("chi-square:       %.2f (df %d, expected mean ≈ df)\n",
		collector.ChiSquare(), collector.DegreesOfFreedom())
	fmt.Printf("mean agreement:   %.4f (expected 1.0 for independent hands)\n",
		collector.MeanAgreement())
	fmt.Printf("95%% CI:           [%.4f, %.4f]\n", low, high)

	return nil
}
