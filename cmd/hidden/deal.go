package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hidden/dispenser"
)

var (
	handHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	elementStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

// DealCmd mints several hands from one dispenser over the same deck and
// prints each view, showing how the hands differ while each stays stable.
type DealCmd struct {
	File  string `kong:"arg,optional,help='Deck file, one element per line (stdin when omitted)'"`
	Hands int    `kong:"default='3',help='Number of hands to mint'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *DealCmd) Run() error {
	logger := setupLogger(c.Debug)

	if c.Hands < 1 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}

	deck, err := readDeck(c.File)
	if err != nil {
		return err
	}
	logger.Debug("deck loaded", "elements", len(deck))

	d := dispenser.New[string](len(deck), newRNG(c.Seed, logger))

	for n := 1; n <= c.Hands; n++ {
		hand, err := d.Mint(deck)
		if err != nil {
			return fmt.Errorf("minting hand %d: %w", n, err)
		}

		fmt.Println(handHeaderStyle.Render(fmt.Sprintf(" Hand %d ", n)))
		for i := 0; i < hand.Len(); i++ {
			element, ok := hand.Choose(i)
			if !ok {
				return fmt.Errorf("choice %d absent from a checked hand of %d", i, hand.Len())
			}
			fmt.Printf("%s %s\n",
				choiceStyle.Render(fmt.Sprintf("%3d →", i)),
				elementStyle.Render(*element))
		}
		if n < c.Hands {
			fmt.Println(strings.Repeat("─", 20))
		}
	}

	return nil
}
