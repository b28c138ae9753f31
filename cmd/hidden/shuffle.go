package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/hidden/dispenser"
)

// ShuffleCmd prints the input deck through one minted hand. The input
// order is never touched; the hand is just a shuffled view over it.
type ShuffleCmd struct {
	File  string `kong:"arg,optional,help='Deck file, one element per line (stdin when omitted)'"`
	Seed  *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *ShuffleCmd) Run() error {
	logger := setupLogger(c.Debug)

	deck, err := readDeck(c.File)
	if err != nil {
		return err
	}

	d := dispenser.New[string](len(deck), newRNG(c.Seed, logger))
	hand, err := d.Mint(deck)
	if err != nil {
		return fmt.Errorf("minting hand: %w", err)
	}

	return printHand(os.Stdout, hand)
}

// printHand writes each element of the hand's view in choice order.
func printHand(w io.Writer, hand *dispenser.Hand[string]) error {
	for i := 0; i < hand.Len(); i++ {
		element, ok := hand.Choose(i)
		if !ok {
			return fmt.Errorf("choice %d absent from a checked hand of %d", i, hand.Len())
		}
		if _, err := fmt.Fprintln(w, *element); err != nil {
			return err
		}
	}
	return nil
}
