// Package content holds the static card reference data: display names and
// per-card axis contributions. It is supplied data, consumed by the scorers,
// never computed.
package content

import "valuedeck/internal/scoring"

// Cards maps every card id of the standard 36-card deck to its reference
// data. Weights pull toward one pole of one axis; a card may touch more than
// one axis.
var Cards = map[int]scoring.CardInfo{
	0:  {Name: "Adventure", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "E", Score: 6}}},
	1:  {Name: "Security", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "S", Score: 6}}},
	2:  {Name: "Curiosity", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "E", Score: 5}, {Axis: scoring.AxisLI, Pole: "L", Score: 2}}},
	3:  {Name: "Tradition", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "S", Score: 5}, {Axis: scoring.AxisAC, Pole: "C", Score: 2}}},
	4:  {Name: "Novelty", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "E", Score: 4}}},
	5:  {Name: "Routine", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "S", Score: 4}, {Axis: scoring.AxisDW, Pole: "W", Score: 2}}},
	6:  {Name: "Travel", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "E", Score: 5}}},
	7:  {Name: "Home", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "S", Score: 5}, {Axis: scoring.AxisDW, Pole: "W", Score: 2}}},
	8:  {Name: "Risk-taking", Weights: []scoring.AxisWeight{{Axis: scoring.AxisES, Pole: "E", Score: 6}, {Axis: scoring.AxisDW, Pole: "D", Score: 2}}},
	9:  {Name: "Independence", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "A", Score: 6}}},
	10: {Name: "Belonging", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "C", Score: 6}}},
	11: {Name: "Solitude", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "A", Score: 5}, {Axis: scoring.AxisDW, Pole: "W", Score: 2}}},
	12: {Name: "Friendship", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "C", Score: 5}}},
	13: {Name: "Self-reliance", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "A", Score: 5}, {Axis: scoring.AxisDW, Pole: "D", Score: 2}}},
	14: {Name: "Teamwork", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "C", Score: 5}}},
	15: {Name: "Freedom", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "A", Score: 6}, {Axis: scoring.AxisES, Pole: "E", Score: 2}}},
	16: {Name: "Family", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "C", Score: 6}, {Axis: scoring.AxisES, Pole: "S", Score: 2}}},
	17: {Name: "Privacy", Weights: []scoring.AxisWeight{{Axis: scoring.AxisAC, Pole: "A", Score: 4}}},
	18: {Name: "Ambition", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "D", Score: 6}}},
	19: {Name: "Contentment", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "W", Score: 6}}},
	20: {Name: "Achievement", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "D", Score: 5}}},
	21: {Name: "Rest", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "W", Score: 5}}},
	22: {Name: "Recognition", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "D", Score: 4}, {Axis: scoring.AxisAC, Pole: "C", Score: 2}}},
	23: {Name: "Balance", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "W", Score: 5}}},
	24: {Name: "Mastery", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "D", Score: 5}, {Axis: scoring.AxisLI, Pole: "L", Score: 2}}},
	25: {Name: "Health", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "W", Score: 5}}},
	26: {Name: "Wealth", Weights: []scoring.AxisWeight{{Axis: scoring.AxisDW, Pole: "D", Score: 4}, {Axis: scoring.AxisES, Pole: "S", Score: 2}}},
	27: {Name: "Analysis", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "L", Score: 6}}},
	28: {Name: "Instinct", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "I", Score: 6}}},
	29: {Name: "Planning", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "L", Score: 5}, {Axis: scoring.AxisES, Pole: "S", Score: 2}}},
	30: {Name: "Spontaneity", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "I", Score: 5}, {Axis: scoring.AxisES, Pole: "E", Score: 2}}},
	31: {Name: "Evidence", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "L", Score: 5}}},
	32: {Name: "Imagination", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "I", Score: 5}}},
	33: {Name: "Precision", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "L", Score: 4}, {Axis: scoring.AxisDW, Pole: "D", Score: 2}}},
	34: {Name: "Empathy", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "I", Score: 4}, {Axis: scoring.AxisAC, Pole: "C", Score: 2}}},
	35: {Name: "Wonder", Weights: []scoring.AxisWeight{{Axis: scoring.AxisLI, Pole: "I", Score: 4}, {Axis: scoring.AxisES, Pole: "E", Score: 2}}},
}

// DeckSize is the number of cards the content module supplies. Rooms may not
// be created with a cardCount above this.
var DeckSize = len(Cards)
