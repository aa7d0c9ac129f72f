package content

import (
	"testing"

	"valuedeck/internal/scoring"
)

var polesByAxis = map[scoring.Axis][]scoring.Pole{
	scoring.AxisES: {"E", "S"},
	scoring.AxisAC: {"A", "C"},
	scoring.AxisDW: {"D", "W"},
	scoring.AxisLI: {"L", "I"},
}

func TestCardTableIntegrity(t *testing.T) {
	if DeckSize != len(Cards) {
		t.Fatalf("DeckSize = %d, cards = %d", DeckSize, len(Cards))
	}

	// Ids must be contiguous from 0 so any room deck [0, cardCount) with
	// cardCount <= DeckSize is fully covered.
	for id := 0; id < DeckSize; id++ {
		card, ok := Cards[id]
		if !ok {
			t.Fatalf("card id %d missing", id)
		}
		if card.Name == "" {
			t.Fatalf("card %d has no name", id)
		}
		if len(card.Weights) == 0 {
			t.Fatalf("card %d has no axis weights", id)
		}
		for _, w := range card.Weights {
			poles, ok := polesByAxis[w.Axis]
			if !ok {
				t.Fatalf("card %d uses unknown axis %q", id, w.Axis)
			}
			if w.Pole != poles[0] && w.Pole != poles[1] {
				t.Fatalf("card %d: pole %q does not belong to axis %q", id, w.Pole, w.Axis)
			}
			if w.Score <= 0 {
				t.Fatalf("card %d: non-positive weight %v", id, w.Score)
			}
		}
	}
}

func TestEveryAxisHasBothPoles(t *testing.T) {
	covered := make(map[scoring.Axis]map[scoring.Pole]bool)
	for _, card := range Cards {
		for _, w := range card.Weights {
			if covered[w.Axis] == nil {
				covered[w.Axis] = make(map[scoring.Pole]bool)
			}
			covered[w.Axis][w.Pole] = true
		}
	}
	for axis, poles := range polesByAxis {
		for _, pole := range poles {
			if !covered[axis][pole] {
				t.Fatalf("no card pulls toward pole %q of axis %q", pole, axis)
			}
		}
	}
}
