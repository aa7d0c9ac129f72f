package domain

// The turn engine. Every function here validates its preconditions against
// the given snapshot, computes a minimal patch and never mutates its input,
// so the enclosing store transaction can safely re-run it against a fresher
// snapshot after a write conflict.

func ensureTurn(room *Room, playerID string, phase TurnPhase) error {
	switch room.Status {
	case StatusPlaying:
	case StatusFinished:
		return ErrGameOver
	default:
		return ErrNotStarted
	}
	if room.ActivePlayerID != playerID {
		return ErrNotYourTurn
	}
	if room.TurnPhase != phase {
		return ErrWrongPhase
	}
	return nil
}

// ApplyDrawFromDeck moves the top card of the deck into the active player's
// hand and puts the turn into the discard phase.
func ApplyDrawFromDeck(room *Room, playerID string) (Patch, error) {
	if err := ensureTurn(room, playerID, PhaseDraw); err != nil {
		return nil, err
	}
	if len(room.Deck) == 0 {
		return nil, ErrEmptyDeck
	}

	card := room.Deck[0]
	hands := copyHands(room.Hands)
	hands[playerID] = append(hands[playerID], card)

	return Patch{
		FieldDeck:      copyCards(room.Deck[1:]),
		FieldHands:     hands,
		FieldTurnPhase: PhaseDiscard,
	}, nil
}

// ApplyDrawFromDiscard moves the card at cardIndex in fromPlayerID's discard
// pile into the active player's hand. The card is addressed by position, not
// identity; the index is validated against the given snapshot, so a retried
// transaction re-checks it against the freshest pile.
func ApplyDrawFromDiscard(room *Room, playerID, fromPlayerID string, cardIndex int) (Patch, error) {
	if err := ensureTurn(room, playerID, PhaseDraw); err != nil {
		return nil, err
	}

	pile := room.Discards[fromPlayerID]
	if len(pile) == 0 {
		return nil, ErrEmptyPile
	}
	if cardIndex < 0 || cardIndex >= len(pile) {
		return nil, ErrInvalidIndex
	}

	card := pile[cardIndex]
	discards := make(map[string][]CardID, len(room.Discards))
	for id, cards := range room.Discards {
		discards[id] = copyCards(cards)
	}
	discards[fromPlayerID] = append(copyCards(pile[:cardIndex]), pile[cardIndex+1:]...)

	hands := copyHands(room.Hands)
	hands[playerID] = append(hands[playerID], card)

	sources := copySources(room.CardSources)
	sources[card] = SourceDiscard

	return Patch{
		FieldDiscards:    discards,
		FieldHands:       hands,
		FieldCardSources: sources,
		FieldTurnPhase:   PhaseDiscard,
	}, nil
}

// ApplyDiscardAndAdvance removes cardID from the active player's hand, puts
// it on top of their discard pile, logs the discard, and hands the turn to
// the next player in order. When the deck is already empty the room becomes
// finished.
func ApplyDiscardAndAdvance(room *Room, playerID string, cardID CardID, delaySec float64) (Patch, error) {
	if err := ensureTurn(room, playerID, PhaseDiscard); err != nil {
		return nil, err
	}

	hand := room.Hands[playerID]
	idx := -1
	for i, c := range hand {
		if c == cardID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrCardNotInHand
	}

	hands := copyHands(room.Hands)
	hands[playerID] = append(copyCards(hand[:idx]), hand[idx+1:]...)

	discards := make(map[string][]CardID, len(room.Discards))
	for id, cards := range room.Discards {
		discards[id] = copyCards(cards)
	}
	discards[playerID] = append(discards[playerID], cardID)

	from := SourceDeck
	if room.CardSources[cardID] == SourceDiscard {
		from = SourceDiscard
	}
	if delaySec < 0 {
		delaySec = 0
	}
	logs := copyLogs(room.DiscardLogs)
	logs[playerID] = append(logs[playerID], DiscardLogEntry{
		CardID:    cardID,
		CardFrom:  from,
		DelaySec:  delaySec,
		TurnIndex: room.TurnIndex,
	})

	status := room.Status
	if len(room.Deck) == 0 {
		status = StatusFinished
	}

	return Patch{
		FieldHands:          hands,
		FieldDiscards:       discards,
		FieldDiscardLogs:    logs,
		FieldActivePlayerID: room.NextPlayer(playerID),
		FieldTurnIndex:      room.TurnIndex + 1,
		FieldTurnPhase:      PhaseDraw,
		FieldStatus:         status,
	}, nil
}

// ApplySkip is the host's escape hatch for a stalled player: the turn passes
// to the next player in order without any card movement. Only the host may
// skip.
func ApplySkip(room *Room, callerID string) (Patch, error) {
	if callerID != room.HostID {
		return nil, ErrNotHost
	}
	switch room.Status {
	case StatusPlaying:
	case StatusFinished:
		return nil, ErrGameOver
	default:
		return nil, ErrNotStarted
	}
	if room.ActivePlayerID == "" || len(room.TurnOrder) == 0 {
		return nil, ErrNotStarted
	}

	return Patch{
		FieldActivePlayerID: room.NextPlayer(room.ActivePlayerID),
		FieldTurnIndex:      room.TurnIndex + 1,
		FieldTurnPhase:      PhaseDraw,
	}, nil
}
