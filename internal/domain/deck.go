package domain

import "math/rand"

// CardsPerPlayer is the initial hand size dealt at game start.
const CardsPerPlayer = 5

// NewShuffledDeck returns a uniformly random permutation of [0, cardCount).
func NewShuffledDeck(rng *rand.Rand, cardCount int) []CardID {
	deck := make([]CardID, cardCount)
	for i := range deck {
		deck[i] = CardID(i)
	}
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}

// DealInitialHands deals cardsPerPlayer cards to each id in playerIDs order,
// consuming from the front of deck. Neither input is mutated.
func DealInitialHands(playerIDs []string, deck []CardID, cardsPerPlayer int) (map[string][]CardID, []CardID, error) {
	if len(deck) < len(playerIDs)*cardsPerPlayer {
		return nil, nil, ErrInsufficientCards
	}

	remaining := copyCards(deck)
	hands := make(map[string][]CardID, len(playerIDs))
	for _, id := range playerIDs {
		hands[id] = copyCards(remaining[:cardsPerPlayer])
		remaining = remaining[cardsPerPlayer:]
	}
	return hands, remaining, nil
}

// NewGameState builds the patch that takes a waiting room into play: a
// shuffled deck, initial hands, empty discard piles and logs, and the first
// player's draw phase. Turn order is the player ids sorted ascending.
func NewGameState(rng *rand.Rand, room *Room) (Patch, error) {
	playerIDs := room.PlayerIDs()
	if len(playerIDs) == 0 {
		return nil, ErrNoPlayers
	}

	deck := NewShuffledDeck(rng, room.CardCount)
	hands, remaining, err := DealInitialHands(playerIDs, deck, CardsPerPlayer)
	if err != nil {
		return nil, err
	}

	discards := make(map[string][]CardID, len(playerIDs))
	logs := make(map[string][]DiscardLogEntry, len(playerIDs))
	for _, id := range playerIDs {
		discards[id] = []CardID{}
		logs[id] = []DiscardLogEntry{}
	}

	return Patch{
		FieldStatus:         StatusPlaying,
		FieldDeck:           remaining,
		FieldHands:          hands,
		FieldDiscards:       discards,
		FieldDiscardLogs:    logs,
		FieldCardSources:    map[CardID]CardSource{},
		FieldTurnOrder:      playerIDs,
		FieldActivePlayerID: playerIDs[0],
		FieldTurnIndex:      0,
		FieldTurnPhase:      PhaseDraw,
	}, nil
}
