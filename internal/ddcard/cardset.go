package ddcard

import (
	"fmt"
	"math/bits"
)

// CardSet is a 13-bit bitmask of the ranks present in one (hand, suit)
// slot; bit i corresponds to Rank(i). Bits outside 0..12 are always zero.
type CardSet uint16

const fullMask = CardSet(1<<NumRanks) - 1

// Empty reports whether the set holds no ranks.
func (cs CardSet) Empty() bool {
	return cs == 0
}

// Contains reports whether r is present.
func (cs CardSet) Contains(r Rank) bool {
	return cs&(1<<uint(r)) != 0
}

// Add inserts r, returning false if it was already present.
func (cs *CardSet) Add(r Rank) bool {
	bit := CardSet(1 << uint(r))
	if *cs&bit != 0 {
		return false
	}
	*cs |= bit
	return true
}

// Remove deletes r, a no-op if it is absent.
func (cs *CardSet) Remove(r Rank) {
	*cs &^= 1 << uint(r)
}

// Intersects reports whether cs and other share any rank.
func (cs CardSet) Intersects(other CardSet) bool {
	return cs&other != 0
}

// Count returns the number of ranks present.
func (cs CardSet) Count() int {
	return bits.OnesCount16(uint16(cs))
}

// IsAdjacent reports whether r and r+1 are both members of cs — the
// rank-adjacency condition equivalence pruning relies on: two consecutive
// ranks held by the same hand are interchangeable in every line of play.
func (cs CardSet) IsAdjacent(r Rank) bool {
	if r >= Ace {
		return false
	}
	return cs.Contains(r) && cs.Contains(r+1)
}

// EnumerateMoves returns cards of this set ascending by rank, in the given
// suit.
func (cs CardSet) EnumerateMoves(suit Suit) []Card {
	if cs.Empty() {
		return nil
	}
	moves := make([]Card, 0, cs.Count())
	for r := Rank(0); r < NumRanks; r++ {
		if cs.Contains(r) {
			moves = append(moves, Card{Rank: r, Suit: suit})
		}
	}
	return moves
}

// String renders the set ascending by rank as a compact token string, or
// "-" if empty — the same grammar ParseCardSet accepts.
func (cs CardSet) String() string {
	if cs.Empty() {
		return "-"
	}
	s := ""
	for r := Rank(0); r < NumRanks; r++ {
		if cs.Contains(r) {
			s += r.String()
		}
	}
	return s
}

// ParseCardSet decodes a compact rank-token string such as "AKQJ" or "23",
// or "-" for an empty set.
func ParseCardSet(str string) (CardSet, error) {
	var cs CardSet
	if str == "-" || str == "" {
		return cs, nil
	}
	for len(str) > 0 {
		tok := str[:1]
		rest := str[1:]
		if len(str) >= 2 && str[:2] == "10" {
			tok = str[:2]
			rest = str[2:]
		}
		r, err := ParseRank(tok)
		if err != nil {
			return 0, err
		}
		if !cs.Add(r) {
			return 0, fmt.Errorf("%w: duplicate rank %q in %q", ErrParse, tok, str)
		}
		str = rest
	}
	return cs, nil
}
