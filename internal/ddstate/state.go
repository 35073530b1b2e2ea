// Package ddstate holds the full deal state the search operates over: four
// hands, trump, leader, and the trick currently in progress.
package ddstate

import (
	"github.com/pkg/errors"

	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddhand"
)

// State is the aggregate game state the search operates over. It is a
// plain value type: every field is itself a value, so assigning a State
// clones it — the search engine clones at each trial move rather than
// mutating in place.
type State struct {
	Hands  [ddcard.NumSides]ddhand.Hand
	Trump  ddcard.Suit
	Leader ddcard.Side
	Trick  Trick
}

// CurrentPlayer is the leader plus the number of cards already played in
// the current trick, mod 4.
func (s State) CurrentPlayer() ddcard.Side {
	return s.Leader.Add(s.Trick.Count)
}

// IsFirstOfTrick reports whether the current trick is empty.
func (s State) IsFirstOfTrick() bool {
	return s.Trick.Count == 0
}

// IsLastOfTrick reports whether the current trick has its third card down
// — the next play will be the trick's fourth and final one.
func (s State) IsLastOfTrick() bool {
	return s.Trick.Count == MaxTrickPlays
}

// MaxTricks is the number of cards remaining in the current player's hand,
// i.e. the number of tricks left to be played from this state.
func (s State) MaxTricks() int {
	return s.Hands[s.CurrentPlayer()].Size()
}

// IsTerminal reports whether all four hands are empty.
func (s State) IsTerminal() bool {
	for _, h := range s.Hands {
		if h.Size() != 0 {
			return false
		}
	}
	return true
}

// MoveLegal reports whether c is a legal play for the current player right
// now.
func (s State) MoveLegal(c ddcard.Card) bool {
	return s.Hands[s.CurrentPlayer()].MoveLegal(s.Trick.leadSuitForCheck(), c)
}

// CurrentLeadSuit is the suit the next play must follow, or NoTrump if the
// trick is empty and any suit is open.
func (s State) CurrentLeadSuit() ddcard.Suit {
	return s.Trick.leadSuitForCheck()
}

// MakeMove applies a play by the current player:
//  1. assert legality (a violation is a fatal internal-inconsistency bug);
//  2. remove the card from the mover's hand, append to the trick;
//  3. if the trick now has four cards, resolve the winner, clear the
//     trick, and set leader to the winner, returning the winner;
//  4. otherwise return the unchanged (trick) leader.
func (s *State) MakeMove(c ddcard.Card) (ddcard.Side, error) {
	player := s.CurrentPlayer()
	if !s.Hands[player].MoveLegal(s.Trick.leadSuitForCheck(), c) {
		return 0, errors.Wrapf(ErrInternal, "make-move: %s is not a legal play for %s", c, player)
	}

	s.Hands[player].Remove(c)
	play := Play{Side: player, Card: c}

	if s.Trick.Count < MaxTrickPlays {
		s.Trick.append(play)
		return s.Leader, nil
	}

	all := [4]Play{s.Trick.Plays[0], s.Trick.Plays[1], s.Trick.Plays[2], play}
	w := winner(all, s.Trick.LeadSuit, s.Trump)
	s.Leader = w
	s.Trick = Trick{}
	return w, nil
}

// Clone returns an independent copy. Because every field of State is
// itself a plain value (arrays of arrays of ints, no pointers or slices),
// a Go value copy already performs a full clone; Clone exists to name the
// operation at call sites and to keep that invariant documented in one
// place.
func (s State) Clone() State {
	return s
}

// ValidateInitialDeal checks the invariants a freshly parsed deal must
// satisfy before any search begins: hands are pairwise disjoint, and —
// accounting for any partial trick already recorded — the four hand sizes
// are consistent with a single deal of N cards each.
func (s State) ValidateInitialDeal() error {
	for i := 0; i < ddcard.NumSides; i++ {
		for j := i + 1; j < ddcard.NumSides; j++ {
			if s.Hands[i].Intersects(s.Hands[j]) {
				return errors.Wrapf(ErrInvalidDeal, "hands of %s and %s share a card", ddcard.Side(i), ddcard.Side(j))
			}
		}
	}

	if s.Trick.Count > MaxTrickPlays {
		return errors.Wrapf(ErrInvalidDeal, "trick has %d plays, more than the %d allowed", s.Trick.Count, MaxTrickPlays)
	}

	maxSize := 0
	for _, h := range s.Hands {
		if n := h.Size(); n > maxSize {
			maxSize = n
		}
	}
	for i := 0; i < ddcard.NumSides; i++ {
		side := ddcard.Side(i)
		played := sideHasPlayedThisTrick(s, side)
		want := maxSize
		if played {
			want = maxSize - 1
		}
		if s.Hands[i].Size() != want {
			return errors.Wrapf(ErrInvalidDeal, "%s holds %d cards, want %d", side, s.Hands[i].Size(), want)
		}
	}

	return s.ValidateTrickInProgress()
}

// sideHasPlayedThisTrick reports whether side already played a card in the
// current (possibly partial) trick.
func sideHasPlayedThisTrick(s State, side ddcard.Side) bool {
	for i := 0; i < s.Trick.Count; i++ {
		if s.Leader.Add(i) == side {
			return true
		}
	}
	return false
}

// ValidateTrickInProgress checks legality for every already-played card of
// the current trick by unplaying them into a scratch copy of the hands and
// re-checking legality forward, against the lead suit each card actually
// saw when it was played.
func (s State) ValidateTrickInProgress() error {
	if s.Trick.Count > MaxTrickPlays {
		return errors.Wrapf(ErrInvalidDeal, "trick has %d plays, more than the %d allowed", s.Trick.Count, MaxTrickPlays)
	}

	scratch := s.Hands
	for i := 0; i < s.Trick.Count; i++ {
		p := s.Trick.Plays[i]
		scratch[p.Side].Add(p.Card)
	}

	for i := 0; i < s.Trick.Count; i++ {
		p := s.Trick.Plays[i]
		leadSuit := ddcard.NoTrump
		if i > 0 {
			leadSuit = s.Trick.LeadSuit
		}
		if !scratch[p.Side].MoveLegal(leadSuit, p.Card) {
			return errors.Wrapf(ErrInvalidDeal, "play %d (%s by %s) was not legal when played", i, p.Card, p.Side)
		}
		scratch[p.Side].Remove(p.Card)
	}

	return nil
}
