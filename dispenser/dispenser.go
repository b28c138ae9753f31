// Package dispenser provides a reusable source of randomized index
// permutations that can be bound, on demand, to caller-owned decks to
// produce stable lookup views (Hands) without copying the deck.
//
// A Dispenser shuffles its internal permutation on creation and again
// after every mint, so each Hand freezes the ordering that was current
// when it was minted and later mints never disturb it.
package dispenser

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/hidden/internal/randutil"
)

// ErrLengthMismatch is returned by Mint when the deck's length does not
// match the size the dispenser was created with.
var ErrLengthMismatch = errors.New("deck length does not match dispenser size")

// Dispenser owns a shuffled permutation of [0, n) and mints frozen
// snapshots of it bound to decks of n elements.
//
// A Dispenser is not safe for concurrent use; Mint mutates internal state.
type Dispenser[T any] struct {
	seq []int
	rng *rand.Rand // Random source for shuffling, injected by the caller
}

// New creates a Dispenser for decks of n elements. The internal
// permutation starts as the identity and is shuffled immediately, so the
// first mint already dispenses a random ordering. n = 0 is valid and
// yields a dispenser that can only mint empty hands.
//
// A nil rng falls back to a time-seeded source.
func New[T any](n int, rng *rand.Rand) *Dispenser[T] {
	if rng == nil {
		rng = randutil.NewFromTime()
	}

	d := &Dispenser[T]{
		seq: make([]int, n),
		rng: rng,
	}
	for i := range d.seq {
		d.seq[i] = i
	}

	d.shuffle()
	return d
}

// Size returns the deck length this dispenser was created for.
func (d *Dispenser[T]) Size() int {
	return len(d.seq)
}

// Mint freezes the current permutation into a new Hand over deck, then
// reshuffles the internal state so the next mint dispenses a fresh
// ordering.
//
// If len(deck) differs from Size, Mint returns ErrLengthMismatch and
// leaves the dispenser untouched: no reshuffle happens on the failure
// path, so a retry with a correctly sized deck observes the same
// permutation a successful first call would have.
func (d *Dispenser[T]) Mint(deck []T) (*Hand[T], error) {
	if len(deck) != d.Size() {
		return nil, fmt.Errorf("mint: deck has %d elements, want %d: %w",
			len(deck), d.Size(), ErrLengthMismatch)
	}
	return d.MintUnchecked(deck), nil
}

// MintUnchecked is Mint without the length check. If len(deck) differs
// from Size, the resulting Hand may report absence for in-range choice
// indexes (Hand.Choose still bounds-checks against the deck). Intended
// for callers that have already established matching lengths by
// construction.
func (d *Dispenser[T]) MintUnchecked(deck []T) *Hand[T] {
	// Snapshot before reshuffling so the issued hand reflects the
	// pre-mutation permutation.
	choices := make([]int, len(d.seq))
	copy(choices, d.seq)

	d.shuffle()
	return NewHand(choices, deck)
}

// shuffle permutes seq in place using Fisher-Yates.
func (d *Dispenser[T]) shuffle() {
	for i := len(d.seq) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.seq[i], d.seq[j] = d.seq[j], d.seq[i]
	}
}
