// Package scoring turns a finished game's raw play history into quantitative
// preference signals: a per-card reluctance score from the discard log, and
// four bipolar axis scores blending the final hand with that discard
// evidence. Everything here is pure; identical inputs give identical output.
package scoring

import (
	"errors"
	"math"
	"sort"
)

// ErrInvalidTurnIndex reports a log entry whose turn index is not a finite
// number while tolerance was not requested.
var ErrInvalidTurnIndex = errors.New("invalid turnIndex in discard log")

// LogEntry is one discard action as read back from the store. TurnIndex and
// DelaySec are float64 because loose snapshot data can carry non-finite
// values; well-formed rooms always produce finite ones.
type LogEntry struct {
	CardID    int
	CardFrom  string // "deck" or "discard"
	DelaySec  float64
	TurnIndex float64
}

// FromDeck is the LogEntry.CardFrom value for freshly drawn cards.
const FromDeck = "deck"

// CombinePolicy selects how repeated card ids fold into one score.
type CombinePolicy string

const (
	// CombineSum accumulates every occurrence's score.
	CombineSum CombinePolicy = "sum"
	// CombineMax keeps the largest occurrence's score.
	CombineMax CombinePolicy = "max"
	// CombineLast keeps the chronologically latest occurrence's score.
	CombineLast CombinePolicy = "last"
)

// DiscardOptions configures ScoreDiscardLogs. The zero value means
// CombineLast and strict turn-index validation.
type DiscardOptions struct {
	Combine CombinePolicy
	// AllowInvalidTurnIndex sorts entries with a non-finite TurnIndex after
	// all valid ones instead of failing. Invalid entries keep their original
	// order relative to each other.
	AllowInvalidTurnIndex bool
}

// delayCurve maps a delay rate in [0,1] to [0,1], concave: longer
// deliberation scores higher with diminishing returns.
func delayCurve(rate float64) float64 {
	if !isFinite(rate) || rate <= 0 {
		return 0
	}
	return (5 * rate) / (4*rate + 1)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ScoreDiscardLogs computes a reluctance score per distinct card id from one
// player's discard log: how costly it was, in play terms, to part with that
// card. Entries are re-sorted by turn index first, so the result does not
// depend on the input order of well-formed logs.
//
// A deck-origin entry at rank k scores k * delayCurve(delaySec/maxDelay); a
// pile-origin entry scores k²/n, rewarding cards kept until very late where
// deliberation time carries no signal.
func ScoreDiscardLogs(entries []LogEntry, opts DiscardOptions) (map[int]float64, error) {
	combine := opts.Combine
	if combine == "" {
		combine = CombineLast
	}

	if len(entries) == 0 {
		return map[int]float64{}, nil
	}

	sorted := make([]LogEntry, len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if !isFinite(e.TurnIndex) && !opts.AllowInvalidTurnIndex {
			return nil, ErrInvalidTurnIndex
		}
	}
	stableSortByTurnIndex(sorted)

	maxDelay := 0.0
	for _, e := range sorted {
		if isFinite(e.DelaySec) && e.DelaySec > maxDelay {
			maxDelay = e.DelaySec
		}
	}

	n := float64(len(sorted))
	scores := make(map[int]float64, len(sorted))

	for i, e := range sorted {
		k := float64(i + 1)

		var score float64
		if e.CardFrom == FromDeck {
			d := e.DelaySec
			if !isFinite(d) || d < 0 {
				d = 0
			}
			rate := 0.0
			if maxDelay > 0 {
				rate = d / maxDelay
			}
			score = k * delayCurve(rate)
		} else {
			score = k * k / n
		}

		prev, seen := scores[e.CardID]
		if !seen {
			scores[e.CardID] = score
			continue
		}
		switch combine {
		case CombineSum:
			scores[e.CardID] = prev + score
		case CombineMax:
			scores[e.CardID] = math.Max(prev, score)
		default:
			scores[e.CardID] = score
		}
	}

	return scores, nil
}

// stableSortByTurnIndex orders valid entries ascending and pushes non-finite
// turn indexes to the back, preserving insertion order among equals.
func stableSortByTurnIndex(entries []LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		fa, fb := isFinite(a.TurnIndex), isFinite(b.TurnIndex)
		if fa && fb {
			return a.TurnIndex < b.TurnIndex
		}
		return fa && !fb
	})
}
