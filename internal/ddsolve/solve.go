// Package ddsolve implements the negamax search that computes the number
// of tricks North-South can guarantee against optimal defense, for a given
// leader and trump.
package ddsolve

import (
	"log/slog"
	"sort"

	"github.com/pkg/errors"

	"github.com/bran/ddsolve/internal/ddcache"
	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddstate"
)

// Stats accumulates counters over one Solve call: total recursive calls,
// cache hits/misses at cacheable trick boundaries, and the number of
// candidate plays skipped outright by rank-adjacency equivalence pruning.
type Stats struct {
	Iterations  int
	CacheHits   int
	CacheMisses int
	CacheReused int
}

// Options carries an optional progress logger (a nil Logger disables
// progress reporting entirely) and a switch to bypass the transposition
// cache altogether, independent of whatever Cache the caller built.
type Options struct {
	Logger        *slog.Logger
	ProgressEvery int
	DisableCache  bool
}

// Solve returns the number of tricks North-South can force from s with
// both sides playing optimally, reusing cache across the whole call.
func Solve(s ddstate.State, cache *ddcache.Cache, stats *Stats, opts Options) (int, error) {
	if s.IsTerminal() {
		return 0, nil
	}
	best, err := search(s, 0, 0, cache, stats, opts)
	if err != nil {
		return 0, errors.Wrap(err, "solve")
	}
	return best.Tricks, nil
}

// adjacent reports whether cur is the next-higher rank of prev within the
// same suit — the condition under which cur's outcome is guaranteed
// identical to prev's and recursion can be skipped.
func adjacent(prev, cur ddcard.Card) bool {
	return prev.Suit == cur.Suit && cur.Rank == prev.Rank+1
}

// search is the recursive core, transcribing the negamax-over-tricks
// algorithm: enumerate legal plays in rank order, skip recursion for a
// play that is rank-adjacent to its predecessor (they are interchangeable),
// otherwise try the play, account for the trick it resolves (if any), and
// recurse on what remains. alphaNS and alphaEW are the trick counts each
// partnership has already secured via sibling branches explored so far at
// this or an ancestor node; once one side's bound reaches max_tricks, the
// remaining sibling branches for the other side can be cut off outright.
func search(s ddstate.State, alphaNS, alphaEW int, cache *ddcache.Cache, stats *Stats, opts Options) (ddcache.RankedMove, error) {
	stats.Iterations++
	if opts.Logger != nil && opts.ProgressEvery > 0 && stats.Iterations%opts.ProgressEvery == 0 {
		opts.Logger.Info("solving",
			"iterations", stats.Iterations,
			"cache_hits", stats.CacheHits,
			"cache_misses", stats.CacheMisses,
		)
	}

	isLastMove := s.IsLastOfTrick()
	current := s.CurrentPlayer()
	isNS := current.IsNS()
	maxTricks := s.MaxTricks()

	var entry ddcache.Entry
	cacheable := !opts.DisableCache && ddcache.Cacheable(s)
	if cacheable {
		entry = cache.GetEntry(s)
	}

	var moves []ddcache.RankedMove
	if cacheable {
		if cached, ok := entry.Lookup(); ok {
			stats.CacheHits++
			moves = cached
		} else {
			stats.CacheMisses++
		}
	}

	if moves == nil {
		candidates := s.Hands[current].AvailableMoves(s.CurrentLeadSuit())
		moves = make([]ddcache.RankedMove, 0, len(candidates))

		for i, c := range candidates {
			if i > 0 && adjacent(candidates[i-1], c) {
				stats.CacheReused++
				moves = append(moves, ddcache.RankedMove{Card: c, Tricks: moves[i-1].Tricks})
				continue
			}

			trial := s.Clone()
			winnerSide, err := trial.MakeMove(c)
			if err != nil {
				return ddcache.RankedMove{}, errors.Wrapf(err, "candidate %s", c)
			}

			tricks := 0
			if isLastMove {
				if winnerSide.IsNS() {
					if alphaEW >= maxTricks {
						moves = append(moves, ddcache.RankedMove{Card: c, Tricks: maxTricks})
						continue
					}
					tricks = 1
					if alphaNS > 0 {
						alphaNS--
					}
				} else {
					if alphaNS >= maxTricks {
						moves = append(moves, ddcache.RankedMove{Card: c, Tricks: tricks})
						continue
					}
					if alphaEW > 0 {
						alphaEW--
					}
				}
			}

			if !trial.IsTerminal() {
				sub, err := search(trial, alphaNS, alphaEW, cache, stats, opts)
				if err != nil {
					return ddcache.RankedMove{}, err
				}
				tricks += sub.Tricks

				if isLastMove {
					if isNS {
						if tricks > alphaNS {
							alphaNS = tricks
						}
					} else {
						if ew := maxTricks - tricks; ew > alphaEW {
							alphaEW = ew
						}
					}
				}
			}

			moves = append(moves, ddcache.RankedMove{Card: c, Tricks: tricks})
		}

		sort.SliceStable(moves, func(i, j int) bool { return moves[i].Tricks < moves[j].Tricks })

		if cacheable {
			entry.Update(moves)
		}
	}

	best := moves[0]
	if isNS {
		best = moves[len(moves)-1]
	}
	if best.Tricks < 0 || best.Tricks > maxTricks {
		return ddcache.RankedMove{}, errors.Wrapf(ddstate.ErrInternal, "%s yields %d tricks, outside 0..%d", best.Card, best.Tricks, maxTricks)
	}
	return best, nil
}
