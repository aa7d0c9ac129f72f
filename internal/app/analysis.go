package app

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"valuedeck/internal/domain"
	"valuedeck/internal/scoring"
)

// AnalysisResult is the derived artifact for one player of a finished room.
// Downstream consumers (summarizer, image composer) take it from here.
type AnalysisResult struct {
	RoomCode      string                              `json:"roomCode"`
	PlayerID      string                              `json:"playerId"`
	FinalHand     []int                               `json:"finalHand"`
	DiscardScores []scoring.DiscardScore              `json:"discardScores"`
	Axes          map[scoring.Axis]scoring.AxisResult `json:"axes"`
}

// Analyze scores one player of a finished room: discard reluctance first,
// then the four preference axes over the final hand plus that evidence. Runs
// over a read-only snapshot; the room is not touched.
func (s *Service) Analyze(ctx context.Context, code, playerID string) (*AnalysisResult, error) {
	room, err := s.store.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if room.Status != domain.StatusFinished {
		return nil, ErrNotFinished
	}
	if _, ok := room.Players[playerID]; !ok {
		return nil, ErrUnknownPlayer
	}

	entries := make([]scoring.LogEntry, 0, len(room.DiscardLogs[playerID]))
	for _, e := range room.DiscardLogs[playerID] {
		entries = append(entries, scoring.LogEntry{
			CardID:    int(e.CardID),
			CardFrom:  string(e.CardFrom),
			DelaySec:  e.DelaySec,
			TurnIndex: float64(e.TurnIndex),
		})
	}

	byCard, err := scoring.ScoreDiscardLogs(entries, scoring.DiscardOptions{})
	if err != nil {
		return nil, err
	}
	discardScores := make([]scoring.DiscardScore, 0, len(byCard))
	for id, score := range byCard {
		discardScores = append(discardScores, scoring.DiscardScore{CardID: id, Score: score})
	}
	sort.Slice(discardScores, func(i, j int) bool {
		return discardScores[i].CardID < discardScores[j].CardID
	})

	hand := room.Hands[playerID]
	if len(hand) > domain.CardsPerPlayer {
		hand = hand[:domain.CardsPerPlayer]
	}
	finalHand := make([]int, len(hand))
	for i, c := range hand {
		finalHand[i] = int(c)
	}

	axes, err := scoring.ComputeAxisScores(finalHand, discardScores, s.cards, scoring.DefaultAxisOptions())
	if err != nil {
		return nil, err
	}

	s.log.Info("analysis computed",
		zap.String("room", code),
		zap.String("player", playerID),
		zap.Int("discards", len(discardScores)))

	return &AnalysisResult{
		RoomCode:      code,
		PlayerID:      playerID,
		FinalHand:     finalHand,
		DiscardScores: discardScores,
		Axes:          axes,
	}, nil
}
