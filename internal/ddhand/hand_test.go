package ddhand

import (
	"testing"

	"github.com/bran/ddsolve/internal/ddcard"
)

func mustSet(t *testing.T, tok string) ddcard.CardSet {
	t.Helper()
	cs, err := ddcard.ParseCardSet(tok)
	if err != nil {
		t.Fatalf("ParseCardSet(%q): %v", tok, err)
	}
	return cs
}

func TestAvailableMovesLeadEmpty(t *testing.T) {
	var h Hand
	h[ddcard.Clubs] = mustSet(t, "AK")
	h[ddcard.Hearts] = mustSet(t, "2")

	moves := h.AvailableMoves(ddcard.NoTrump)
	if len(moves) != 3 {
		t.Fatalf("got %d moves, want 3", len(moves))
	}
	// suit order: Clubs before Hearts
	if moves[0].Suit != ddcard.Clubs || moves[2].Suit != ddcard.Hearts {
		t.Errorf("wrong suit ordering: %v", moves)
	}
}

func TestAvailableMovesFollowSuit(t *testing.T) {
	var h Hand
	h[ddcard.Clubs] = mustSet(t, "AK")
	h[ddcard.Hearts] = mustSet(t, "2")

	moves := h.AvailableMoves(ddcard.Clubs)
	if len(moves) != 2 {
		t.Fatalf("must-follow-suit should return only clubs, got %v", moves)
	}
	for _, m := range moves {
		if m.Suit != ddcard.Clubs {
			t.Errorf("leaked non-club move %v", m)
		}
	}
}

func TestAvailableMovesVoidInLeadSuit(t *testing.T) {
	var h Hand
	h[ddcard.Hearts] = mustSet(t, "2")
	h[ddcard.Spades] = mustSet(t, "A")

	moves := h.AvailableMoves(ddcard.Clubs) // void in clubs
	if len(moves) != 2 {
		t.Fatalf("void hand should offer all cards, got %v", moves)
	}
}

func TestMoveLegal(t *testing.T) {
	var h Hand
	h[ddcard.Clubs] = mustSet(t, "AK")
	h[ddcard.Hearts] = mustSet(t, "2")

	ace := ddcard.Card{Rank: ddcard.Ace, Suit: ddcard.Clubs}
	two := ddcard.Card{Rank: ddcard.Two, Suit: ddcard.Hearts}

	if !h.MoveLegal(ddcard.NoTrump, ace) {
		t.Error("any card legal when leading")
	}
	if !h.MoveLegal(ddcard.Clubs, ace) {
		t.Error("club legal when clubs led and held")
	}
	if h.MoveLegal(ddcard.Clubs, two) {
		t.Error("must follow suit: heart illegal when clubs led and held")
	}
	if !h.MoveLegal(ddcard.Diamonds, two) {
		t.Error("void in diamonds: any card legal")
	}
	if h.MoveLegal(ddcard.Clubs, ddcard.Card{Rank: ddcard.Queen, Suit: ddcard.Clubs}) {
		t.Error("card not in hand should be illegal")
	}
}

func TestIntersects(t *testing.T) {
	var a, b Hand
	a[ddcard.Clubs] = mustSet(t, "AK")
	b[ddcard.Clubs] = mustSet(t, "K")
	if !a.Intersects(b) {
		t.Error("should intersect on King of clubs")
	}
	b[ddcard.Clubs] = mustSet(t, "Q")
	if a.Intersects(b) {
		t.Error("should not intersect")
	}
}
