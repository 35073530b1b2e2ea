// Package batch drives the 4x5 (leader x trump) result matrix for a deal,
// and runs a whole file of deals without letting one bad deal take down
// the rest.
package batch

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/bran/ddsolve/internal/ddcache"
	"github.com/bran/ddsolve/internal/ddcard"
	"github.com/bran/ddsolve/internal/ddsolve"
	"github.com/bran/ddsolve/internal/ddstate"
	"github.com/bran/ddsolve/internal/deal"
)

// Matrix is the 4x5 table of NS trick counts: rows are opening leader
// (North..West), columns are trump (Clubs..Spades, then NoTrump).
type Matrix [ddcard.NumSides][ddcard.NumSuits + 1]int

// trumpColumns is the fixed column order of a Matrix / deal.ResultMatrix.
var trumpColumns = [ddcard.NumSuits + 1]ddcard.Suit{
	ddcard.Clubs, ddcard.Diamonds, ddcard.Hearts, ddcard.Spades, ddcard.NoTrump,
}

// Mismatch names the first (leader, trump) cell, in row-major order, where
// a computed Matrix disagreed with an oracle.
type Mismatch struct {
	Leader ddcard.Side
	Trump  ddcard.Suit
	Got    int
	Want   int
}

// Unsolved marks a Matrix cell the sweep skipped because of a Filter,
// distinct from a genuine 0-trick result.
const Unsolved = -1

// Filter narrows a sweep to a subset of leaders and/or trumps; a nil slice
// means "every value" for that axis. Cells outside the filter are left at
// Unsolved rather than 0.
type Filter struct {
	Leaders []ddcard.Side
	Trumps  []ddcard.Suit
}

func (f Filter) includesLeader(s ddcard.Side) bool {
	if len(f.Leaders) == 0 {
		return true
	}
	for _, l := range f.Leaders {
		if l == s {
			return true
		}
	}
	return false
}

func (f Filter) includesTrump(t ddcard.Suit) bool {
	if len(f.Trumps) == 0 {
		return true
	}
	for _, x := range f.Trumps {
		if x == t {
			return true
		}
	}
	return false
}

// SolveMatrix computes the 4x5 table for base, sweeping every leader and
// trump filter allows while reusing one transposition cache across the
// whole sweep. base's own Trump/Leader/Trick fields are ignored; only its
// four hands matter, since the sweep itself sets each cell's leader and
// trump and starts from an empty trick. simplify controls the optional
// rank-squeeze canonicalization on the shared cache; it never changes a
// cell's answer, only how often cells reuse each other's work.
func SolveMatrix(base ddstate.State, filter Filter, simplify bool, opts ddsolve.Options) (Matrix, ddsolve.Stats, error) {
	var m Matrix
	for leaderIdx := range m {
		for col := range m[leaderIdx] {
			m[leaderIdx][col] = Unsolved
		}
	}
	var stats ddsolve.Stats
	cache := ddcache.New(simplify)

	for leaderIdx := 0; leaderIdx < ddcard.NumSides; leaderIdx++ {
		leader := ddcard.Side(leaderIdx)
		if !filter.includesLeader(leader) {
			continue
		}
		for col, trump := range trumpColumns {
			if !filter.includesTrump(trump) {
				continue
			}
			s := base
			s.Leader = leader
			s.Trump = trump
			s.Trick = ddstate.Trick{}

			tricks, err := ddsolve.Solve(s, cache, &stats, opts)
			if err != nil {
				return m, stats, fmt.Errorf("leader=%s trump=%s: %w", leader, trump, err)
			}
			m[leaderIdx][col] = tricks
		}
	}
	return m, stats, nil
}

// CompareToOracle returns the first (leader, trump) cell where got
// disagrees with want, scanning rows N,E,S,W and within each row columns
// C,D,H,S,NT, or nil if every cell matches. A cell left at Unsolved by a
// Filter is skipped rather than reported as a mismatch.
func CompareToOracle(got Matrix, want deal.ResultMatrix) *Mismatch {
	for side := 0; side < ddcard.NumSides; side++ {
		for col := 0; col < ddcard.NumSuits+1; col++ {
			if got[side][col] == Unsolved {
				continue
			}
			if got[side][col] != want[side][col] {
				return &Mismatch{
					Leader: ddcard.Side(side),
					Trump:  trumpColumns[col],
					Got:    got[side][col],
					Want:   want[side][col],
				}
			}
		}
	}
	return nil
}

// DealResult is one deal's outcome within a batch run.
type DealResult struct {
	Index    int // 1-based position in the input file
	Matrix   Matrix
	Stats    ddsolve.Stats
	Mismatch *Mismatch // nil if the deal carried no oracle, or the oracle matched
}

// RunFile parses and solves every deal in inputs. A parse failure, an
// invalid-deal failure, or a fatal internal-inconsistency failure from the
// engine itself all skip just that deal: its error is appended to the
// returned multierror and the remaining deals still run, rather than
// aborting the whole batch.
func RunFile(inputs []deal.Input, filter Filter, simplify bool, opts ddsolve.Options) ([]DealResult, error) {
	var results []DealResult
	var errs *multierror.Error

	for i, in := range inputs {
		n := i + 1
		s, err := deal.Parse(in)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("deal %d: %w", n, err))
			continue
		}

		m, stats, err := SolveMatrix(s, filter, simplify, opts)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("deal %d: %w", n, err))
			continue
		}

		var mismatch *Mismatch
		if in.Result != nil {
			mismatch = CompareToOracle(m, *in.Result)
		}
		results = append(results, DealResult{Index: n, Matrix: m, Stats: stats, Mismatch: mismatch})
	}

	return results, errs.ErrorOrNil()
}
