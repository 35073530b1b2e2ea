package ddcache

import (
	"testing"

	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddhand"
	"github.com/bran/ddsolve/internal/ddstate"
)

func card(tok string) ddcard.Card {
	c, err := ddcard.ParseCard(tok)
	if err != nil {
		panic(err)
	}
	return c
}

func handWith(cards ...string) ddhand.Hand {
	var h ddhand.Hand
	for _, tok := range cards {
		h.Add(card(tok))
	}
	return h
}

func fourTrickState(leader ddcard.Side, trump ddcard.Suit) ddstate.State {
	var s ddstate.State
	s.Trump = trump
	s.Leader = leader
	s.Hands[ddcard.North] = handWith("AS", "AH", "AD", "AC")
	s.Hands[ddcard.East] = handWith("KS", "KH", "KD", "KC")
	s.Hands[ddcard.South] = handWith("QS", "QH", "QD", "QC")
	s.Hands[ddcard.West] = handWith("JS", "JH", "JD", "JC")
	return s
}

func TestCacheableRequiresTrickBoundaryAndMinimumTricks(t *testing.T) {
	s := fourTrickState(ddcard.North, ddcard.NoTrump)
	if !Cacheable(s) {
		t.Fatal("4-trick boundary state should be cacheable")
	}

	mid := s
	mid.MakeMove(card("AS"))
	if Cacheable(mid) {
		t.Fatal("mid-trick state should not be cacheable")
	}

	var small ddstate.State
	small.Trump = ddcard.NoTrump
	small.Leader = ddcard.North
	small.Hands[ddcard.North] = handWith("AS")
	small.Hands[ddcard.East] = handWith("KS")
	small.Hands[ddcard.South] = handWith("QS")
	small.Hands[ddcard.West] = handWith("JS")
	if Cacheable(small) {
		t.Fatal("single-trick-remaining state should not be cacheable")
	}
}

func TestEntryMissThenUpdateThenHit(t *testing.T) {
	c := New(false)
	s := fourTrickState(ddcard.North, ddcard.Spades)

	e := c.GetEntry(s)
	if _, ok := e.Lookup(); ok {
		t.Fatal("fresh cache should miss")
	}

	moves := []RankedMove{
		{Card: card("AC"), Tricks: 1},
		{Card: card("AD"), Tricks: 2},
		{Card: card("AH"), Tricks: 3},
		{Card: card("AS"), Tricks: 4},
	}
	e.Update(moves)

	e2 := c.GetEntry(s)
	got, ok := e2.Lookup()
	if !ok {
		t.Fatal("expected a hit after Update")
	}
	if len(got) != len(moves) {
		t.Fatalf("got %d moves, want %d", len(got), len(moves))
	}
	for i := range moves {
		if got[i] != moves[i] {
			t.Errorf("move %d = %+v, want %+v", i, got[i], moves[i])
		}
	}
}

// TestCacheKeyIgnoresAbsoluteSide verifies the fingerprint is invariant
// under NS/EW-symmetric reuse: a state whose current player is NS and the
// same relative layout whose current player is EW resolve to the same key,
// and the stored move list round-trips correctly through both
// perspectives.
func TestCacheKeyIgnoresAbsoluteSide(t *testing.T) {
	c := New(false)
	nsState := fourTrickState(ddcard.North, ddcard.Spades) // North (NS) to move
	ewState := fourTrickState(ddcard.East, ddcard.Spades)  // East (EW) to move
	// Rotate the hands one seat clockwise so East holds what North holds in
	// nsState: the same layout relative to the leader.
	ewState.Hands[ddcard.East] = nsState.Hands[ddcard.North]
	ewState.Hands[ddcard.South] = nsState.Hands[ddcard.East]
	ewState.Hands[ddcard.West] = nsState.Hands[ddcard.South]
	ewState.Hands[ddcard.North] = nsState.Hands[ddcard.West]

	if ComputeKey(nsState, false) != ComputeKey(ewState, false) {
		t.Fatal("leader-relative key should ignore which absolute side is on move")
	}

	// Write from the NS occurrence: canonical form is raw NS tricks.
	nsEntry := c.GetEntry(nsState)
	nsMoves := []RankedMove{
		{Card: card("AC"), Tricks: 0},
		{Card: card("AD"), Tricks: 2},
		{Card: card("AH"), Tricks: 3},
		{Card: card("AS"), Tricks: 4},
	}
	nsEntry.Update(nsMoves)

	// Read from the EW occurrence: the leader's partnership is now EW, so
	// the NS trick count of each move is maxTricks minus the stored count,
	// sorted ascending.
	ewEntry := c.GetEntry(ewState)
	ewMoves, ok := ewEntry.Lookup()
	if !ok {
		t.Fatal("expected the EW occurrence to hit the NS-written entry")
	}
	want := []RankedMove{
		{Card: card("AS"), Tricks: 0},
		{Card: card("AH"), Tricks: 1},
		{Card: card("AD"), Tricks: 2},
		{Card: card("AC"), Tricks: 4},
	}
	if len(ewMoves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(ewMoves), len(want))
	}
	for i := range want {
		if ewMoves[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, ewMoves[i], want[i])
		}
	}
}

func TestToggleIsSelfInverse(t *testing.T) {
	raw := []RankedMove{
		{Card: card("AC"), Tricks: 0},
		{Card: card("AD"), Tricks: 1},
		{Card: card("AH"), Tricks: 2},
		{Card: card("AS"), Tricks: 4},
	}
	canonical := toggle(raw, 4, false)
	back := toggle(canonical, 4, false)
	for i := range raw {
		if back[i] != raw[i] {
			t.Errorf("round trip mismatch at %d: got %+v, want %+v", i, back[i], raw[i])
		}
	}
}

// TestSimplifyCollidesGapOnlyVariants verifies the rank-squeeze canonicalization:
// two deals whose spade holdings occupy the same *relative* rank positions
// but different absolute ranks (because the globally-absent ranks around
// them differ) produce the same simplified key, while the unsimplified key
// tells them apart.
func TestSimplifyCollidesGapOnlyVariants(t *testing.T) {
	low := fourTrickState(ddcard.North, ddcard.Spades) // North 2S, East 3S, nothing else in spades
	low.Hands[ddcard.North] = handWith("2S", "AH", "AD", "AC")
	low.Hands[ddcard.East] = handWith("3S", "KH", "KD", "KC")
	low.Hands[ddcard.South] = handWith("QH", "QD", "QC")
	low.Hands[ddcard.West] = handWith("JH", "JD", "JC")

	high := fourTrickState(ddcard.North, ddcard.Spades) // North KS, East AS: same relative gap structure
	high.Hands[ddcard.North] = handWith("KS", "AH", "AD", "AC")
	high.Hands[ddcard.East] = handWith("AS", "KH", "KD", "KC")
	high.Hands[ddcard.South] = handWith("QH", "QD", "QC")
	high.Hands[ddcard.West] = handWith("JH", "JD", "JC")

	if ComputeKey(low, true) != ComputeKey(high, true) {
		t.Fatal("same relative spade structure should collide after simplification")
	}
	if ComputeKey(low, false) == ComputeKey(high, false) {
		t.Fatal("these two deals hold genuinely different absolute spade ranks, should differ unsimplified")
	}
}

func TestDistinctTrumpsDoNotCollide(t *testing.T) {
	c := New(false)
	s := fourTrickState(ddcard.North, ddcard.Spades)

	spadesEntry := c.GetEntry(s)
	spadesEntry.Update([]RankedMove{{Card: card("AS"), Tricks: 4}})

	ntState := s
	ntState.Trump = ddcard.NoTrump
	ntEntry := c.GetEntry(ntState)
	if _, ok := ntEntry.Lookup(); ok {
		t.Fatal("a different trump at the same key should still miss")
	}
}
