package scoring

import (
	"errors"
	"math"
	"testing"
)

func TestScoreDiscardLogsExample(t *testing.T) {
	logs := []LogEntry{
		{CardFrom: "deck", CardID: 1, DelaySec: 10, TurnIndex: 0},
		{CardFrom: "discard", CardID: 2, DelaySec: 0, TurnIndex: 1},
	}

	scores, err := ScoreDiscardLogs(logs, DiscardOptions{})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	// maxDelay=10: rank 1 deck entry scores 1*delayCurve(1)=1; rank 2 pile
	// entry scores 4/2=2.
	if got := scores[1]; math.Abs(got-1) > 1e-12 {
		t.Fatalf("score[1] = %v, want 1", got)
	}
	if got := scores[2]; math.Abs(got-2) > 1e-12 {
		t.Fatalf("score[2] = %v, want 2", got)
	}
}

func TestScoreDiscardLogsOrderIndependent(t *testing.T) {
	ordered := []LogEntry{
		{CardFrom: "deck", CardID: 3, DelaySec: 2, TurnIndex: 0},
		{CardFrom: "discard", CardID: 4, DelaySec: 0, TurnIndex: 1},
		{CardFrom: "deck", CardID: 5, DelaySec: 8, TurnIndex: 2},
	}
	shuffled := []LogEntry{ordered[2], ordered[0], ordered[1]}

	a, err := ScoreDiscardLogs(ordered, DiscardOptions{})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	b, err := ScoreDiscardLogs(shuffled, DiscardOptions{})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("result sizes differ: %d vs %d", len(a), len(b))
	}
	for id, score := range a {
		if b[id] != score {
			t.Fatalf("score[%d] = %v vs %v", id, score, b[id])
		}
	}
}

func TestScoreDiscardLogsCombinePolicies(t *testing.T) {
	// Same card twice, both deck-origin. maxDelay=10.
	// Rank 1: delayRate=0.5, curve=2.5/3, score=5/6.
	// Rank 2: delayRate=1, curve=1, score=2.
	logs := []LogEntry{
		{CardFrom: "deck", CardID: 7, DelaySec: 5, TurnIndex: 0},
		{CardFrom: "deck", CardID: 7, DelaySec: 10, TurnIndex: 1},
	}
	first := 5.0 / 6.0
	second := 2.0

	tests := []struct {
		policy CombinePolicy
		want   float64
	}{
		{CombineSum, first + second},
		{CombineMax, second},
		{CombineLast, second},
		{"", second}, // default is last
	}
	for _, tt := range tests {
		scores, err := ScoreDiscardLogs(logs, DiscardOptions{Combine: tt.policy})
		if err != nil {
			t.Fatalf("%s: score error: %v", tt.policy, err)
		}
		if got := scores[7]; math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%s: score = %v, want %v", tt.policy, got, tt.want)
		}
	}
}

func TestScoreDiscardLogsCombineLastUsesChronology(t *testing.T) {
	// The later entry by turnIndex must win even when it appears first in
	// the input slice.
	logs := []LogEntry{
		{CardFrom: "discard", CardID: 9, TurnIndex: 5}, // rank 2: 4/2 = 2
		{CardFrom: "discard", CardID: 9, TurnIndex: 1}, // rank 1: 1/2 = 0.5
	}
	scores, err := ScoreDiscardLogs(logs, DiscardOptions{Combine: CombineLast})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	if got := scores[9]; math.Abs(got-2) > 1e-12 {
		t.Fatalf("score = %v, want 2", got)
	}
}

func TestScoreDiscardLogsInvalidTurnIndex(t *testing.T) {
	logs := []LogEntry{
		{CardFrom: "deck", CardID: 1, TurnIndex: math.NaN()},
		{CardFrom: "deck", CardID: 2, TurnIndex: 0},
	}

	if _, err := ScoreDiscardLogs(logs, DiscardOptions{}); !errors.Is(err, ErrInvalidTurnIndex) {
		t.Fatalf("err = %v, want ErrInvalidTurnIndex", err)
	}

	// Tolerant mode: invalid entries rank after all valid ones, keeping
	// their insertion order. All pile-origin here, n=3:
	// valid card 2 -> rank 1 -> 1/3; card 1 -> rank 2 -> 4/3; card 3 ->
	// rank 3 -> 3.
	logs = append(logs, LogEntry{CardFrom: "discard", CardID: 3, TurnIndex: math.Inf(1)})
	logs[0].CardFrom = "discard"
	logs[1].CardFrom = "discard"
	scores, err := ScoreDiscardLogs(logs, DiscardOptions{AllowInvalidTurnIndex: true})
	if err != nil {
		t.Fatalf("tolerant score error: %v", err)
	}
	if got := scores[2]; math.Abs(got-1.0/3.0) > 1e-12 {
		t.Fatalf("score[2] = %v, want 1/3", got)
	}
	if got := scores[1]; math.Abs(got-4.0/3.0) > 1e-12 {
		t.Fatalf("score[1] = %v, want 4/3", got)
	}
	if got := scores[3]; math.Abs(got-3) > 1e-12 {
		t.Fatalf("score[3] = %v, want 3", got)
	}
}

func TestScoreDiscardLogsEmpty(t *testing.T) {
	scores, err := ScoreDiscardLogs(nil, DiscardOptions{})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	if len(scores) != 0 {
		t.Fatalf("scores = %v, want empty", scores)
	}
}

func TestScoreDiscardLogsZeroMaxDelay(t *testing.T) {
	// No positive delay anywhere: every deck entry's delay rate is 0 and
	// scores 0.
	logs := []LogEntry{
		{CardFrom: "deck", CardID: 1, DelaySec: 0, TurnIndex: 0},
		{CardFrom: "deck", CardID: 2, DelaySec: 0, TurnIndex: 1},
	}
	scores, err := ScoreDiscardLogs(logs, DiscardOptions{})
	if err != nil {
		t.Fatalf("score error: %v", err)
	}
	if scores[1] != 0 || scores[2] != 0 {
		t.Fatalf("scores = %v, want all zero", scores)
	}
}

func TestDelayCurve(t *testing.T) {
	if got := delayCurve(0); got != 0 {
		t.Fatalf("delayCurve(0) = %v, want 0", got)
	}
	if got := delayCurve(1); math.Abs(got-1) > 1e-12 {
		t.Fatalf("delayCurve(1) = %v, want 1", got)
	}
	if got := delayCurve(0.5); math.Abs(got-2.5/3.0) > 1e-12 {
		t.Fatalf("delayCurve(0.5) = %v, want 2.5/3", got)
	}
	if got := delayCurve(math.NaN()); got != 0 {
		t.Fatalf("delayCurve(NaN) = %v, want 0", got)
	}
}
