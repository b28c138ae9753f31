package main

import (
	"bufio"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/hidden/internal/randutil"
)

// readDeck reads one deck element per line from path, or from stdin when
// path is empty or "-". Blank lines are skipped so trailing newlines don't
// grow the deck.
func readDeck(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening deck file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var deck []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		deck = append(deck, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}
	return deck, nil
}

// newRNG builds the shuffle source, deterministic when a seed flag was
// given.
func newRNG(seed *int64, logger *log.Logger) *rand.Rand {
	if seed != nil {
		logger.Debug("using deterministic seed", "seed", *seed)
		return randutil.New(*seed)
	}
	s := time.Now().UnixNano()
	logger.Debug("using random seed", "seed", s)
	return randutil.New(s)
}
