package ddstate

import "github.com/bran/ddsolve/internal/ddcard"

// Play is one card played by one side, in the order it was played.
type Play struct {
	Side ddcard.Side
	Card ddcard.Card
}

// MaxTrickPlays is the most cards a trick-in-progress can hold; a trick is
// resolved and cleared the instant the fourth card lands.
const MaxTrickPlays = 3

// Trick is the 0-3 plays made so far in the current trick. It is a fixed-
// size value type so that State stays a plain, copyable struct — no trick
// in progress is ever shared between two search branches.
type Trick struct {
	Plays    [MaxTrickPlays]Play
	Count    int
	LeadSuit ddcard.Suit // meaningful only when Count > 0
}

// leadSuitForCheck is the suit that constrains the next play: NoTrump (the
// "any card" sentinel) if the trick is empty, else the established lead
// suit.
func (t Trick) leadSuitForCheck() ddcard.Suit {
	if t.Count == 0 {
		return ddcard.NoTrump
	}
	return t.LeadSuit
}

// append records a play, establishing the lead suit if this is the first
// card of the trick. The caller is responsible for ensuring Count <
// MaxTrickPlays before calling; the fourth play is never appended, the
// caller resolves and clears the trick instead.
func (t *Trick) append(p Play) {
	if t.Count == 0 {
		t.LeadSuit = p.Card.Suit
	}
	t.Plays[t.Count] = p
	t.Count++
}

// winner resolves the trick's winning side: the highest-ranked card of the
// lead suit, unless at least one trump was played, in which case the
// highest-ranked trump wins. NoTrump disables the trump override. Only
// valid once Count == 4 (call sites pass the would-be fourth play
// separately; see State.MakeMove).
func winner(plays [4]Play, leadSuit, trump ddcard.Suit) ddcard.Side {
	best := plays[0]
	bestValue := trickValue(best.Card, leadSuit, trump)
	for _, p := range plays[1:] {
		if v := trickValue(p.Card, leadSuit, trump); v > bestValue {
			best = p
			bestValue = v
		}
	}
	return best.Side
}

// trickValue ranks a card's trick-winning power: trump beats lead suit
// beats everything else, which can never win.
func trickValue(c ddcard.Card, leadSuit, trump ddcard.Suit) int {
	switch {
	case c.Suit.IsTrump(trump):
		return 200 + int(c.Rank)
	case c.Suit == leadSuit:
		return 100 + int(c.Rank)
	default:
		return -1
	}
}
