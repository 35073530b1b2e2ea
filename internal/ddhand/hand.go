// Package ddhand models one player's four-suit hand and its legal-move
// enumeration.
package ddhand

import "github.com/bran/ddsolve/internal/ddcard"

// Hand is four card-sets, one per suit.
type Hand [ddcard.NumSuits]ddcard.CardSet

// Size returns the total number of cards held.
func (h Hand) Size() int {
	n := 0
	for _, cs := range h {
		n += cs.Count()
	}
	return n
}

// Contains reports whether the hand holds c.
func (h Hand) Contains(c ddcard.Card) bool {
	return h[c.Suit].Contains(c.Rank)
}

// Add places c into the hand, failing if it is already present.
func (h *Hand) Add(c ddcard.Card) bool {
	return h[c.Suit].Add(c.Rank)
}

// Remove takes c out of the hand.
func (h *Hand) Remove(c ddcard.Card) {
	h[c.Suit].Remove(c.Rank)
}

// HasSuit reports whether the hand holds any card of suit.
func (h Hand) HasSuit(suit ddcard.Suit) bool {
	return !h[suit].Empty()
}

// Intersects reports whether h and other share any card — used to check
// that hands are pairwise disjoint.
func (h Hand) Intersects(other Hand) bool {
	for suit := 0; suit < ddcard.NumSuits; suit++ {
		if h[suit].Intersects(other[suit]) {
			return true
		}
	}
	return false
}

// AvailableMoves returns every legal play given the lead suit: if leadSuit
// is NoTrump (trick empty), the union of all four suits, suit order Clubs,
// Diamonds, Hearts, Spades; otherwise the lead suit alone if held, or
// (void) all four suits again. Moves are ascending by rank within each
// suit.
func (h Hand) AvailableMoves(leadSuit ddcard.Suit) []ddcard.Card {
	if leadSuit != ddcard.NoTrump && h.HasSuit(leadSuit) {
		return h[leadSuit].EnumerateMoves(leadSuit)
	}
	var moves []ddcard.Card
	for _, suit := range []ddcard.Suit{ddcard.Clubs, ddcard.Diamonds, ddcard.Hearts, ddcard.Spades} {
		moves = append(moves, h[suit].EnumerateMoves(suit)...)
	}
	return moves
}

// MoveLegal reports whether playing c is legal given the lead suit: a card
// that matches the lead suit, or any card if void in it, or any card at
// all if the trick is empty (leadSuit == NoTrump).
func (h Hand) MoveLegal(leadSuit ddcard.Suit, c ddcard.Card) bool {
	if !h.Contains(c) {
		return false
	}
	if leadSuit == ddcard.NoTrump {
		return true
	}
	if c.Suit == leadSuit {
		return true
	}
	return !h.HasSuit(leadSuit)
}
