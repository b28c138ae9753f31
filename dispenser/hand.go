package dispenser

// Hand is an immutable permutation frozen at mint time, paired with a
// borrowed view of the deck it was minted against. The deck's backing
// array is owned by the caller and must stay alive, unmutated, and at
// least as long as it was at mint time for the Hand's lifetime; the Hand
// never re-validates it.
//
// Hands are safe for concurrent reads once constructed.
type Hand[T any] struct {
	choices  []int
	elements []T
}

// NewHand pairs a frozen choice sequence with a deck. No length
// equivalence check is performed; this is the same escape hatch as
// Dispenser.MintUnchecked, for callers that guarantee matching lengths
// themselves. Prefer minting hands from a Dispenser.
func NewHand[T any](choices []int, elements []T) *Hand[T] {
	return &Hand[T]{
		choices:  choices,
		elements: elements,
	}
}

// Choose resolves the logical choice index idx to an element of the deck
// through the frozen permutation.
//
// With choices [2,3,1,0,4] over the deck [a,b,c,d,e], Choose(1) follows
// choice 3 to element d, and Choose(2) follows choice 1 to element b.
//
// The returned pointer refers into the deck itself, so choosing the same
// idx on the same hand always yields the same element. Choose reports
// false when idx is outside the choice sequence, or when the stored
// choice falls outside the deck (only reachable through the unchecked
// construction paths with mismatched lengths).
func (h *Hand[T]) Choose(idx int) (*T, bool) {
	if idx < 0 || idx >= len(h.choices) {
		return nil, false
	}
	u := h.choices[idx]
	if u < 0 || u >= len(h.elements) {
		return nil, false
	}
	return &h.elements[u], true
}

// Len returns the number of choices in the hand. This matches the deck's
// length at mint time for hands minted through the checked path, but not
// necessarily for hands built via NewHand or MintUnchecked.
func (h *Hand[T]) Len() int {
	return len(h.choices)
}
