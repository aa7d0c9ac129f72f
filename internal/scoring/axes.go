package scoring

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Axis is one of four bipolar preference dimensions. A score of 100 leans
// fully toward the axis's left pole, 0 fully toward its right pole.
type Axis string

const (
	// AxisES spans Exploration (E) against Stability (S).
	AxisES Axis = "ES"
	// AxisAC spans Autonomy (A) against Community (C).
	AxisAC Axis = "AC"
	// AxisDW spans Drive (D) against Wellbeing (W).
	AxisDW Axis = "DW"
	// AxisLI spans Logic (L) against Intuition (I).
	AxisLI Axis = "LI"
)

// Axes lists every axis in presentation order.
var Axes = []Axis{AxisES, AxisAC, AxisDW, AxisLI}

// Pole names one end of an axis.
type Pole string

var leftPole = map[Axis]Pole{AxisES: "E", AxisAC: "A", AxisDW: "D", AxisLI: "L"}

// AxisWeight is a single card's pull toward one pole of one axis.
type AxisWeight struct {
	Axis  Axis    `json:"axis"`
	Pole  Pole    `json:"pole"`
	Score float64 `json:"score"`
}

// CardInfo is the supplied per-card reference data consumed by the axis
// scorer.
type CardInfo struct {
	Name    string       `json:"name"`
	Weights []AxisWeight `json:"weights"`
}

// DiscardScore pairs a card id with its reluctance score.
type DiscardScore struct {
	CardID int     `json:"cardId"`
	Score  float64 `json:"score"`
}

// AxisBreakdown exposes the raw evidence behind one axis result, for
// explainability and testing.
type AxisBreakdown struct {
	BaseAxis  float64 `json:"baseAxis"`
	BaseAbs   float64 `json:"baseAbs"`
	AuxAxis   float64 `json:"auxAxis"`
	AuxAbs    float64 `json:"auxAbs"`
	TotalAxis float64 `json:"totalAxis"`
	TotalAbs  float64 `json:"totalAbs"`
}

// AxisResult is one axis's final score.
type AxisResult struct {
	Axis       Axis          `json:"axis"`
	Score100   int           `json:"score100"`
	Ratio      float64       `json:"ratio"`
	Confidence float64       `json:"confidence"`
	Breakdown  AxisBreakdown `json:"breakdown"`
}

// ErrUnknownCard reports a card id missing from the reference table.
var ErrUnknownCard = errors.New("card id not in reference table")

// AxisOptions configures ComputeAxisScores. Use DefaultAxisOptions as the
// starting point; a zero Alpha legitimately means "ignore discard evidence".
type AxisOptions struct {
	// Alpha in [0,1] weights discard evidence against the final hand.
	Alpha float64
	// Compress dampens raw discard scores before normalization. Nil means
	// CompressLog1p.
	Compress func(float64) float64
	// Scale resolves the factor k applied to the discard contribution of one
	// axis. Nil means "use that axis's own baseAbs", so axes with weak hand
	// evidence also get a weak discard boost.
	Scale func(axis Axis, baseAbs float64) float64
	// ConfidenceTargetAbs is the evidence magnitude treated as full
	// confidence.
	ConfidenceTargetAbs float64
	// ExcludeFinalFromDiscard drops discard entries whose card is already in
	// the final hand.
	ExcludeFinalFromDiscard bool
	// Eps guards divisions by zero.
	Eps float64
}

// DefaultAxisOptions returns the standard configuration.
func DefaultAxisOptions() AxisOptions {
	return AxisOptions{
		Alpha:               0.35,
		ConfidenceTargetAbs: 60,
		Eps:                 1e-9,
	}
}

// CompressLog1p is the default discard-score compressor.
func CompressLog1p(x float64) float64 {
	return math.Log1p(math.Max(0, x))
}

// CompressSqrt is an alternative, milder compressor.
func CompressSqrt(x float64) float64 {
	return math.Sqrt(math.Max(0, x))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// signedContribution sums a card's pull on one axis, positive toward the
// left pole.
func signedContribution(card CardInfo, axis Axis) float64 {
	v := 0.0
	left := leftPole[axis]
	for _, w := range card.Weights {
		if w.Axis != axis || !isFinite(w.Score) || w.Score == 0 {
			continue
		}
		if w.Pole == left {
			v += w.Score
		} else {
			v -= w.Score
		}
	}
	return v
}

// ComputeAxisScores blends a player's final hand (strong, intentional
// signal) with normalized discard evidence (weak, circumstantial signal)
// into a 0-100 score per axis, plus a signed ratio and a confidence
// estimate. Duplicate final-hand ids count once; duplicate discard ids
// accumulate their normalized weight.
func ComputeAxisScores(finalHandCardIDs []int, discardScores []DiscardScore, cards map[int]CardInfo, opts AxisOptions) (map[Axis]AxisResult, error) {
	compress := opts.Compress
	if compress == nil {
		compress = CompressLog1p
	}
	scale := opts.Scale
	if scale == nil {
		scale = func(_ Axis, baseAbs float64) float64 { return baseAbs }
	}
	confidenceTarget := opts.ConfidenceTargetAbs
	if confidenceTarget <= 0 {
		confidenceTarget = 60
	}
	eps := opts.Eps
	if eps <= 0 {
		eps = 1e-9
	}
	alpha := clamp(opts.Alpha, 0, 1)

	finalSet := make(map[int]bool, len(finalHandCardIDs))
	finalIDs := make([]int, 0, len(finalHandCardIDs))
	for _, id := range finalHandCardIDs {
		if finalSet[id] {
			continue
		}
		if _, ok := cards[id]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCard, id)
		}
		finalSet[id] = true
		finalIDs = append(finalIDs, id)
	}

	// Keep only finite, strictly positive discard evidence.
	filtered := make([]DiscardScore, 0, len(discardScores))
	for _, d := range discardScores {
		if !isFinite(d.Score) || d.Score <= 0 {
			continue
		}
		if opts.ExcludeFinalFromDiscard && finalSet[d.CardID] {
			continue
		}
		if _, ok := cards[d.CardID]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCard, d.CardID)
		}
		filtered = append(filtered, d)
	}

	// Compress, then normalize weights to sum to 1 across the whole list.
	// Duplicate ids accumulate.
	weightSum := 0.0
	compressed := make([]float64, len(filtered))
	for i, d := range filtered {
		compressed[i] = compress(d.Score)
		weightSum += compressed[i]
	}
	weightByID := make(map[int]float64)
	if weightSum > 0 {
		for i, d := range filtered {
			weightByID[d.CardID] += compressed[i] / weightSum
		}
	}
	// Sorted iteration keeps float accumulation order, and therefore output
	// bits, identical across runs.
	weightedIDs := make([]int, 0, len(weightByID))
	for id := range weightByID {
		weightedIDs = append(weightedIDs, id)
	}
	sort.Ints(weightedIDs)
	sort.Ints(finalIDs)

	out := make(map[Axis]AxisResult, len(Axes))
	for _, axis := range Axes {
		var baseAxis, baseAbs float64
		for _, id := range finalIDs {
			v := signedContribution(cards[id], axis)
			baseAxis += v
			baseAbs += math.Abs(v)
		}

		var auxAxis, auxAbs float64
		for _, id := range weightedIDs {
			v := signedContribution(cards[id], axis)
			w := weightByID[id]
			auxAxis += w * v
			auxAbs += w * math.Abs(v)
		}

		k := scale(axis, baseAbs)
		totalAxis := baseAxis + alpha*k*auxAxis
		totalAbs := baseAbs + alpha*k*auxAbs

		ratio := clamp(totalAxis/(totalAbs+eps), -1, 1)
		out[axis] = AxisResult{
			Axis:       axis,
			Score100:   int(math.Round((ratio + 1) / 2 * 100)),
			Ratio:      ratio,
			Confidence: clamp(totalAbs/confidenceTarget, 0, 1),
			Breakdown: AxisBreakdown{
				BaseAxis:  baseAxis,
				BaseAbs:   baseAbs,
				AuxAxis:   auxAxis,
				AuxAbs:    auxAbs,
				TotalAxis: totalAxis,
				TotalAbs:  totalAbs,
			},
		}
	}
	return out, nil
}
