package dispenser

import (
	"testing"

	"github.com/lox/hidden/internal/randutil"
)

func TestHandChooseFixture(t *testing.T) {
	// idx 1 follows choice 3 to element d, idx 2 follows choice 1 to b.
	hand := NewHand([]int{2, 3, 1, 0, 4}, []string{"a", "b", "c", "d", "e"})

	cases := []struct {
		idx  int
		want string
	}{
		{0, "c"},
		{1, "d"},
		{2, "b"},
		{3, "a"},
		{4, "e"},
	}
	for _, tc := range cases {
		got, ok := hand.Choose(tc.idx)
		if !ok {
			t.Fatalf("Choose(%d) absent", tc.idx)
		}
		if *got != tc.want {
			t.Errorf("Choose(%d) = %q, want %q", tc.idx, *got, tc.want)
		}
	}
}

func TestHandChooseStability(t *testing.T) {
	deck := []string{"a", "b", "c", "d", "e"}
	d := New[string](len(deck), randutil.New(42))

	hand, err := d.Mint(deck)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	for idx := 0; idx < hand.Len(); idx++ {
		first, ok := hand.Choose(idx)
		if !ok {
			t.Fatalf("Choose(%d) absent", idx)
		}
		for rep := 0; rep < 3; rep++ {
			again, ok := hand.Choose(idx)
			if !ok {
				t.Fatalf("Choose(%d) became absent on repeat", idx)
			}
			if again != first {
				t.Errorf("Choose(%d) returned a different element pointer on repeat", idx)
			}
		}
	}
}

func TestHandChooseBounds(t *testing.T) {
	hand := NewHand([]int{1, 0}, []string{"a", "b"})

	if _, ok := hand.Choose(-1); ok {
		t.Error("Choose(-1) should be absent")
	}
	if _, ok := hand.Choose(2); ok {
		t.Error("Choose(len) should be absent")
	}
	if _, ok := hand.Choose(100); ok {
		t.Error("Choose far out of range should be absent")
	}
}

func TestHandChooseShortDeck(t *testing.T) {
	// Direct construction with mismatched lengths: choices past the deck
	// report absence, in-range ones still resolve.
	hand := NewHand([]int{0, 3}, []string{"a", "b"})

	got, ok := hand.Choose(0)
	if !ok || *got != "a" {
		t.Errorf("Choose(0) = %v, %v, want a, true", got, ok)
	}
	if _, ok := hand.Choose(1); ok {
		t.Error("Choose(1) points past the deck and should be absent")
	}
}

func TestHandLen(t *testing.T) {
	hand := NewHand([]int{0, 3}, []string{"a", "b"})
	if hand.Len() != 2 {
		t.Errorf("Len() = %d, want 2", hand.Len())
	}

	empty := NewHand([]int{}, []string{})
	if empty.Len() != 0 {
		t.Errorf("empty Len() = %d, want 0", empty.Len())
	}
}
