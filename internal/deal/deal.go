// Package deal parses a deal input record — four hands, trump, turn
// starter, any already-played cards of the current trick, and an optional
// oracle result matrix — into a ddstate.State ready for the search engine.
// The serialization itself is peripheral glue, so this package picks a
// compact line format rather than pulling in a markup library.
package deal

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddhand"
	"github.com/bran/ddsolve/internal/ddstate"
)

// upper folds tokens to uppercase before handing them to ddcard's parsers,
// so "nt", "Kh", "10s" all read the same as "NT", "KH", "10S".
var upper = cases.Upper(language.Und)

// ResultMatrix is the optional oracle: rows are opening leader
// (North..West), columns are trump (Clubs..Spades, then NoTrump).
type ResultMatrix [ddcard.NumSides][ddcard.NumSuits + 1]int

// Input is one deal as the outside world hands it to this program: every
// field a plain string or slice of strings, unvalidated.
type Input struct {
	// Hands[side] is that side's cards as four dot-separated rank-token
	// groups in suit order Clubs.Diamonds.Hearts.Spades, e.g.
	// "AKQ.1098.-.-". Suit order matches ddcard's fixed suit order.
	Hands       [ddcard.NumSides]string
	Trump       string   // "C", "D", "H", "S", or "NT"
	TurnStarter string   // "N", "E", "S", or "W"
	Played      []string // already-played cards of the trick in progress, in play order
	Result      *ResultMatrix
}

// Parse builds and validates a State from in. A malformed token is a parse
// error; a structurally sound but rule-violating deal is an invalid-deal
// error, reported by ValidateInitialDeal.
func Parse(in Input) (ddstate.State, error) {
	var s ddstate.State

	trump, err := ddcard.ParseTrump(upper.String(in.Trump))
	if err != nil {
		return s, fmt.Errorf("trump %q: %w", in.Trump, err)
	}
	s.Trump = trump

	turnStarter, err := ddcard.ParseSide(upper.String(in.TurnStarter))
	if err != nil {
		return s, fmt.Errorf("turn starter %q: %w", in.TurnStarter, err)
	}
	s.Leader = turnStarter

	for side := 0; side < ddcard.NumSides; side++ {
		hand, err := parseHand(in.Hands[side])
		if err != nil {
			return s, fmt.Errorf("hand %s: %w", ddcard.Side(side), err)
		}
		s.Hands[side] = hand
	}

	if len(in.Played) > ddstate.MaxTrickPlays {
		return s, fmt.Errorf("%d already-played cards exceeds the %d a trick-in-progress can hold", len(in.Played), ddstate.MaxTrickPlays)
	}
	for i, tok := range in.Played {
		c, err := ddcard.ParseCard(upper.String(tok))
		if err != nil {
			return s, fmt.Errorf("played card %d (%q): %w", i, tok, err)
		}
		side := turnStarter.Add(i)
		if s.Hands[side].Contains(c) {
			return s, fmt.Errorf("played card %d (%s): %s still listed in %s's hand", i, c, c, side)
		}
		if i == 0 {
			s.Trick.LeadSuit = c.Suit
		}
		s.Trick.Plays[i] = ddstate.Play{Side: side, Card: c}
		s.Trick.Count++
	}

	if err := s.ValidateInitialDeal(); err != nil {
		return s, err
	}
	return s, nil
}

// parseHand decodes the dot-separated Clubs.Diamonds.Hearts.Spades groups
// of one hand string.
func parseHand(hand string) (ddhand.Hand, error) {
	var h ddhand.Hand
	groups := strings.Split(hand, ".")
	if len(groups) != ddcard.NumSuits {
		return h, fmt.Errorf("expected %d dot-separated suit groups, got %d in %q", ddcard.NumSuits, len(groups), hand)
	}
	suits := [ddcard.NumSuits]ddcard.Suit{ddcard.Clubs, ddcard.Diamonds, ddcard.Hearts, ddcard.Spades}
	for i, suit := range suits {
		cs, err := ddcard.ParseCardSet(upper.String(groups[i]))
		if err != nil {
			return h, fmt.Errorf("suit group %d (%s) of %q: %w", i, suit, hand, err)
		}
		h[suit] = cs
	}
	return h, nil
}
