// Package ddcache implements a transposition table: a map from a
// leader-relative hand fingerprint to a per-trump block of ranked moves,
// reusable by both partnerships via the NS/EW trick-count flip.
package ddcache

import (
	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddstate"
)

// RankedMove is one candidate play annotated with the NS trick count its
// subtree resolves to, in the caller's own (real, absolute) perspective —
// never the cache's internal canonical form. Search code only ever sees
// RankedMove in this sense; the canonical/mover-relative conversion is an
// internal detail of Entry.
type RankedMove struct {
	Card   ddcard.Card
	Tricks int
}

// block holds one cache slot's moves for each of the five trump values
// (Clubs..Spades, NoTrump), stored in canonical form: ascending by the
// trick count of whichever side was on move when the slot was written.
// Because that quantity depends only on the relative card layout (not on
// which absolute side happened to be moving), a slot written while EW was
// on move is just as valid for a later NS occurrence at the same key,
// provided the reader converts with toggle.
type block struct {
	moves [ddcard.NumSuits + 1][]RankedMove
}

// Cache is the transposition table. Hit/miss/reuse counts are the search
// engine's concern (ddsolve.Stats), not the table's — this type only
// implements the storage mechanism.
type Cache struct {
	blocks   map[Key]*block
	simplify bool
}

// New returns an empty Cache. When simplify is true, keys are built with
// the optional rank-squeeze canonicalization (more cache hits, same
// game-tree value); when false, keys use the raw hand layout.
func New(simplify bool) *Cache {
	return &Cache{blocks: make(map[Key]*block), simplify: simplify}
}

// Entry is a handle returned by GetEntry: Lookup reads whatever moves are
// currently cached for this state+trump (already converted into the
// caller's real perspective), and Update writes a freshly computed move
// list back. An Entry obtained for a non-cacheable state is a harmless
// no-op on both ends — caching only applies at trick boundaries with 3 or
// more tricks left.
type Entry struct {
	blk       *block
	trump     ddcard.Suit
	moverIsNS bool
	maxTricks int
}

// Cacheable reports whether this state qualifies for caching at all: a
// trick boundary (no cards played yet in the current trick) with at least
// three tricks remaining. Below that threshold the original implementation
// found the bookkeeping cost outweighed the reuse benefit.
func Cacheable(s ddstate.State) bool {
	return s.IsFirstOfTrick() && s.MaxTricks() >= 3
}

// GetEntry returns the cache handle for s. Callers should check Cacheable
// themselves if they need to skip other cache-only bookkeeping (e.g.
// iteration counters); GetEntry itself degrades gracefully when s is not
// cacheable.
func (c *Cache) GetEntry(s ddstate.State) Entry {
	if !Cacheable(s) {
		return Entry{}
	}
	key := ComputeKey(s, c.simplify)
	blk, ok := c.blocks[key]
	if !ok {
		blk = &block{}
		c.blocks[key] = blk
	}
	return Entry{
		blk:       blk,
		trump:     s.Trump,
		moverIsNS: s.CurrentPlayer().IsNS(),
		maxTricks: s.MaxTricks(),
	}
}

// Lookup returns the cached move list for this entry's state+trump,
// converted into the caller's real NS-trick-count perspective, or
// (nil, false) if nothing has been stored there yet.
func (e Entry) Lookup() ([]RankedMove, bool) {
	if e.blk == nil {
		return nil, false
	}
	canonical := e.blk.moves[e.trump]
	if canonical == nil {
		return nil, false
	}
	return toggle(canonical, e.maxTricks, e.moverIsNS), true
}

// Update stores a freshly computed move list (in the caller's real
// perspective, sorted ascending by NS trick count as the search produces
// it) into this entry's slot, converting to canonical form first.
func (e Entry) Update(moves []RankedMove) {
	if e.blk == nil {
		return
	}
	e.blk.moves[e.trump] = toggle(moves, e.maxTricks, e.moverIsNS)
}

// toggle converts a move list between "real NS-trick-count, as seen by an
// NS mover" and "canonical mover-trick-count" representations. When the
// mover is NS the two coincide and the list is returned unchanged (ascending
// order preserved). When the mover is EW, each entry's trick count is
// replaced by maxTricks-Tricks (its own side's share of the remaining
// tricks) and the order is reversed so the result stays sorted ascending.
// The transform is its own inverse, so the same function serves both
// Lookup (canonical -> real) and Update (real -> canonical).
func toggle(moves []RankedMove, maxTricks int, moverIsNS bool) []RankedMove {
	out := make([]RankedMove, len(moves))
	if moverIsNS {
		copy(out, moves)
		return out
	}
	n := len(moves)
	for i, m := range moves {
		out[n-1-i] = RankedMove{Card: m.Card, Tricks: maxTricks - m.Tricks}
	}
	return out
}
