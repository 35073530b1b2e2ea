package ddcache

import (
	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddstate"
)

// Key is the 32-byte canonical fingerprint of a state at a trick boundary:
// the four hands' card-sets, 2 bytes per suit (Clubs, Diamonds, Hearts,
// Spades) times 4 hands, written starting from the current leader — byte
// offsets 0..7 are the leader's hand, 8..15 the next side clockwise, and
// so on. Two states with the same relative arrangement collide under this
// key regardless of which absolute side holds which cards.
type Key [32]byte

var keySuitOrder = [ddcard.NumSuits]ddcard.Suit{ddcard.Clubs, ddcard.Diamonds, ddcard.Hearts, ddcard.Spades}

// ComputeKey builds the fingerprint for s, which must be a trick-boundary
// state (callers check cacheability before calling this). When simplify is
// true, each suit's four card-sets are first squeezed through
// compactRanks: ranks absent from all four hands in that suit are dropped
// and the remaining ranks shifted down to fill the gap. This never touches
// the state itself or any RankedMove.Card the cache hands back — only the
// bytes used to address a cache slot, so a deal differing only by which
// globally-unheld ranks it was dealt without collides with one that's
// already been solved.
func ComputeKey(s ddstate.State, simplify bool) Key {
	var k Key
	var present [ddcard.NumSuits]ddcard.CardSet
	if simplify {
		for i, suit := range keySuitOrder {
			var union ddcard.CardSet
			for side := 0; side < ddcard.NumSides; side++ {
				union |= s.Hands[side][suit]
			}
			present[i] = union
		}
	}
	for seat := 0; seat < ddcard.NumSides; seat++ {
		side := s.Leader.Add(seat)
		hand := s.Hands[side]
		base := seat * 8
		for i, suit := range keySuitOrder {
			cs := hand[suit]
			if simplify {
				cs = compactRanks(cs, present[i])
			}
			k[base+2*i] = byte(cs)
			k[base+2*i+1] = byte(cs >> 8)
		}
	}
	return k
}

// compactRanks squeezes cs down onto the low bits of present's rank order:
// the nth rank present anywhere in the suit (ascending) becomes bit n,
// regardless of which absolute ranks those were. Two suits with the same
// relative rank structure produce the same compacted mask even if they
// don't share any absent-rank gaps at the same absolute positions.
func compactRanks(cs, present ddcard.CardSet) ddcard.CardSet {
	var out ddcard.CardSet
	idx := ddcard.Rank(0)
	for r := ddcard.Rank(0); r < ddcard.NumRanks; r++ {
		if !present.Contains(r) {
			continue
		}
		if cs.Contains(r) {
			out.Add(idx)
		}
		idx++
	}
	return out
}
