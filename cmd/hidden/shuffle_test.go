package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/lox/hidden/dispenser"
	"github.com/lox/hidden/internal/randutil"
)

func TestReadDeckFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	if err := os.WriteFile(path, []byte("ace\nking\n\nqueen\n"), 0644); err != nil {
		t.Fatal(err)
	}

	deck, err := readDeck(path)
	if err != nil {
		t.Fatalf("readDeck failed: %v", err)
	}

	want := []string{"ace", "king", "queen"}
	if len(deck) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(deck))
	}
	for i := range want {
		if deck[i] != want[i] {
			t.Errorf("element %d = %q, want %q", i, deck[i], want[i])
		}
	}
}

func TestReadDeckMissingFile(t *testing.T) {
	if _, err := readDeck(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPrintHand(t *testing.T) {
	deck := []string{"a", "b", "c", "d", "e"}
	d := dispenser.New[string](len(deck), randutil.New(42))

	hand, err := d.Mint(deck)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printHand(&buf, hand); err != nil {
		t.Fatalf("printHand failed: %v", err)
	}

	lines := strings.Fields(buf.String())
	if len(lines) != len(deck) {
		t.Fatalf("expected %d lines, got %d", len(deck), len(lines))
	}

	// The printed view is a permutation of the deck.
	sorted := append([]string(nil), lines...)
	sort.Strings(sorted)
	for i := range deck {
		if sorted[i] != deck[i] {
			t.Errorf("sorted element %d = %q, want %q", i, sorted[i], deck[i])
		}
	}
}
