package scoring

import (
	"errors"
	"math"
	"testing"
)

// testCards is a minimal reference table: one strong card per pole of ES
// plus one AC card and one two-axis card.
var testCards = map[int]CardInfo{
	1: {Name: "left-es", Weights: []AxisWeight{{Axis: AxisES, Pole: "E", Score: 10}}},
	2: {Name: "right-es", Weights: []AxisWeight{{Axis: AxisES, Pole: "S", Score: 10}}},
	3: {Name: "left-ac", Weights: []AxisWeight{{Axis: AxisAC, Pole: "A", Score: 5}}},
	4: {Name: "mixed", Weights: []AxisWeight{{Axis: AxisES, Pole: "E", Score: 2}, {Axis: AxisLI, Pole: "I", Score: 4}}},
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeAxisScoresHandOnly(t *testing.T) {
	// Empty discard evidence must reduce exactly to final-hand scoring.
	out, err := ComputeAxisScores([]int{1, 3}, nil, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}

	es := out[AxisES]
	if es.Breakdown.AuxAxis != 0 || es.Breakdown.AuxAbs != 0 {
		t.Fatalf("aux = %+v, want zero", es.Breakdown)
	}
	if es.Breakdown.BaseAxis != 10 || es.Breakdown.BaseAbs != 10 {
		t.Fatalf("base = %+v, want 10/10", es.Breakdown)
	}
	wantRatio := 10 / (10 + 1e-9)
	if !almostEqual(es.Ratio, wantRatio) {
		t.Fatalf("ratio = %v, want %v", es.Ratio, wantRatio)
	}
	if es.Score100 != 100 {
		t.Fatalf("score100 = %d, want 100", es.Score100)
	}

	ac := out[AxisAC]
	if ac.Breakdown.BaseAxis != 5 || ac.Score100 != 100 {
		t.Fatalf("ac = %+v", ac)
	}
	if !almostEqual(ac.Confidence, 5.0/60.0) {
		t.Fatalf("ac confidence = %v, want %v", ac.Confidence, 5.0/60.0)
	}

	// Axes with no evidence sit exactly in the middle with no confidence.
	dw := out[AxisDW]
	if dw.Score100 != 50 || dw.Ratio != 0 || dw.Confidence != 0 {
		t.Fatalf("dw = %+v, want neutral", dw)
	}
}

func TestComputeAxisScoresOpposingHand(t *testing.T) {
	// A hand pulling both ways cancels the signed sum but keeps the
	// absolute evidence, so the ratio lands in the middle with confidence.
	out, err := ComputeAxisScores([]int{1, 2}, nil, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	es := out[AxisES]
	if es.Breakdown.BaseAxis != 0 || es.Breakdown.BaseAbs != 20 {
		t.Fatalf("base = %+v, want 0/20", es.Breakdown)
	}
	if es.Score100 != 50 {
		t.Fatalf("score100 = %d, want 50", es.Score100)
	}
	if !almostEqual(es.Confidence, 20.0/60.0) {
		t.Fatalf("confidence = %v, want 1/3", es.Confidence)
	}
}

func TestComputeAxisScoresDiscardEvidence(t *testing.T) {
	// Hand: card 1 (E +10). Discard: card 2 (S) with all the weight.
	// With one positive discard entry its normalized weight is 1:
	// auxAxis=-10, auxAbs=10, k=baseAbs=10, alpha=0.35.
	out, err := ComputeAxisScores([]int{1}, []DiscardScore{{CardID: 2, Score: 3}}, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	es := out[AxisES]
	wantTotalAxis := 10 + 0.35*10*(-10.0)
	wantTotalAbs := 10 + 0.35*10*10.0
	if !almostEqual(es.Breakdown.TotalAxis, wantTotalAxis) {
		t.Fatalf("totalAxis = %v, want %v", es.Breakdown.TotalAxis, wantTotalAxis)
	}
	if !almostEqual(es.Breakdown.TotalAbs, wantTotalAbs) {
		t.Fatalf("totalAbs = %v, want %v", es.Breakdown.TotalAbs, wantTotalAbs)
	}
	wantRatio := wantTotalAxis / (wantTotalAbs + 1e-9)
	if !almostEqual(es.Ratio, wantRatio) {
		t.Fatalf("ratio = %v, want %v", es.Ratio, wantRatio)
	}
	if es.Score100 != int(math.Round((wantRatio+1)/2*100)) {
		t.Fatalf("score100 = %d", es.Score100)
	}
}

func TestComputeAxisScoresDuplicateDiscardsAccumulate(t *testing.T) {
	// The same discard id twice must end with weight 1 overall, identical
	// to a single entry of the summed compressed weight split.
	once, err := ComputeAxisScores([]int{1}, []DiscardScore{{CardID: 2, Score: 3}}, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	twice, err := ComputeAxisScores([]int{1}, []DiscardScore{
		{CardID: 2, Score: 3},
		{CardID: 2, Score: 3},
	}, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	if !almostEqual(once[AxisES].Ratio, twice[AxisES].Ratio) {
		t.Fatalf("ratio differs: %v vs %v", once[AxisES].Ratio, twice[AxisES].Ratio)
	}
}

func TestComputeAxisScoresFiltersAndExclusion(t *testing.T) {
	// Non-positive and non-finite scores are dropped; with
	// ExcludeFinalFromDiscard the final-hand card's discard entry is too.
	opts := DefaultAxisOptions()
	opts.ExcludeFinalFromDiscard = true
	out, err := ComputeAxisScores([]int{1}, []DiscardScore{
		{CardID: 1, Score: 5},             // excluded: in final hand
		{CardID: 2, Score: 0},             // dropped: not strictly positive
		{CardID: 2, Score: -3},            // dropped
		{CardID: 2, Score: math.NaN()},    // dropped
		{CardID: 2, Score: math.Inf(+1)},  // dropped
	}, testCards, opts)
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	if out[AxisES].Breakdown.AuxAbs != 0 {
		t.Fatalf("aux = %+v, want zero", out[AxisES].Breakdown)
	}
}

func TestComputeAxisScoresDegenerateInputs(t *testing.T) {
	out, err := ComputeAxisScores(nil, nil, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	for _, axis := range Axes {
		r := out[axis]
		if r.Score100 != 50 || r.Ratio != 0 || r.Confidence != 0 {
			t.Fatalf("%s = %+v, want neutral", axis, r)
		}
	}
}

func TestComputeAxisScoresBounds(t *testing.T) {
	out, err := ComputeAxisScores([]int{1, 2, 3, 4}, []DiscardScore{
		{CardID: 1, Score: 100},
		{CardID: 2, Score: 0.01},
		{CardID: 3, Score: 7},
	}, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	for _, axis := range Axes {
		r := out[axis]
		if r.Score100 < 0 || r.Score100 > 100 {
			t.Fatalf("%s score100 = %d", axis, r.Score100)
		}
		if r.Ratio < -1 || r.Ratio > 1 {
			t.Fatalf("%s ratio = %v", axis, r.Ratio)
		}
		if r.Confidence < 0 || r.Confidence > 1 {
			t.Fatalf("%s confidence = %v", axis, r.Confidence)
		}
	}
}

func TestComputeAxisScoresUnknownCard(t *testing.T) {
	if _, err := ComputeAxisScores([]int{42}, nil, testCards, DefaultAxisOptions()); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("err = %v, want ErrUnknownCard", err)
	}
	if _, err := ComputeAxisScores([]int{1}, []DiscardScore{{CardID: 42, Score: 1}}, testCards, DefaultAxisOptions()); !errors.Is(err, ErrUnknownCard) {
		t.Fatalf("err = %v, want ErrUnknownCard", err)
	}
}

func TestComputeAxisScoresDeterministic(t *testing.T) {
	hand := []int{1, 2, 3, 4}
	discards := []DiscardScore{{CardID: 1, Score: 2}, {CardID: 3, Score: 9}, {CardID: 4, Score: 0.5}}
	a, err := ComputeAxisScores(hand, discards, testCards, DefaultAxisOptions())
	if err != nil {
		t.Fatalf("compute error: %v", err)
	}
	for i := 0; i < 20; i++ {
		b, err := ComputeAxisScores(hand, discards, testCards, DefaultAxisOptions())
		if err != nil {
			t.Fatalf("compute error: %v", err)
		}
		for _, axis := range Axes {
			if a[axis] != b[axis] {
				t.Fatalf("%s differs between runs: %+v vs %+v", axis, a[axis], b[axis])
			}
		}
	}
}
