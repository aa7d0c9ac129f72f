package domain

import "sort"

// Status is the lifecycle stage of a room.
type Status string

const (
	// StatusWaiting is the pre-game state where players can join.
	StatusWaiting Status = "waiting"
	// StatusPlaying is the active game state.
	StatusPlaying Status = "playing"
	// StatusFinished is the terminal state after the deck runs out.
	StatusFinished Status = "finished"
)

// TurnPhase is the sub-state of the active player's turn.
type TurnPhase string

const (
	// PhaseDraw means the active player must pick up a card.
	PhaseDraw TurnPhase = "draw"
	// PhaseDiscard means the active player must discard a card.
	PhaseDiscard TurnPhase = "discard"
)

// CardID identifies a single card. A room's full card set is [0, CardCount).
type CardID int

// CardSource records where a card most recently entered a hand from.
type CardSource string

const (
	// SourceDeck marks a card dealt or drawn fresh from the deck.
	SourceDeck CardSource = "deck"
	// SourceDiscard marks a card picked up from a discard pile.
	SourceDiscard CardSource = "discard"
)

// Player holds per-player room membership data.
type Player struct {
	Name     string `json:"name"`
	JoinedAt int64  `json:"joinedAt"`
}

// DiscardLogEntry records one discard action for later scoring.
// DelaySec is how long the player held the card before discarding it and is
// only meaningful for deck-origin cards.
type DiscardLogEntry struct {
	CardID    CardID     `json:"cardId"`
	CardFrom  CardSource `json:"cardFrom"`
	DelaySec  float64    `json:"delaySec"`
	TurnIndex int        `json:"turnIndex"`
}

// Room is the shared aggregate holding one game's full state. The "true" copy
// lives in the store; transition functions only ever see a snapshot and
// return a Patch of the fields they change.
//
// Deck index 0 is the top of the deck. The last element of a discard pile is
// the top of that pile.
type Room struct {
	Code      string            `json:"code"`
	HostID    string            `json:"hostId"`
	Status    Status            `json:"status"`
	CardCount int               `json:"cardCount"`
	Players   map[string]Player `json:"players"`

	Deck        []CardID                     `json:"deck"`
	Hands       map[string][]CardID          `json:"hands"`
	Discards    map[string][]CardID          `json:"discards"`
	DiscardLogs map[string][]DiscardLogEntry `json:"discardLogs"`

	// CardSources is sparse: only cards picked up from a discard pile are
	// present. Everything else is deck-origin.
	CardSources map[CardID]CardSource `json:"cardSources"`

	TurnOrder        []string  `json:"turnOrder"`
	ActivePlayerID   string    `json:"activePlayerId"`
	TurnIndex        int       `json:"turnIndex"`
	TurnPhase        TurnPhase `json:"turnPhase"`
	TurnTimerSeconds int       `json:"turnTimerSeconds,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// PlayerIDs returns the room's player ids sorted ascending.
func (r *Room) PlayerIDs() []string {
	ids := make([]string, 0, len(r.Players))
	for id := range r.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NextPlayer returns the id after playerID in turn order, cyclically.
// Returns "" when the turn order is empty or playerID is not in it.
func (r *Room) NextPlayer(playerID string) string {
	if len(r.TurnOrder) == 0 {
		return ""
	}
	for i, id := range r.TurnOrder {
		if id == playerID {
			return r.TurnOrder[(i+1)%len(r.TurnOrder)]
		}
	}
	return ""
}

func copyCards(cards []CardID) []CardID {
	out := make([]CardID, len(cards))
	copy(out, cards)
	return out
}

func copyHands(src map[string][]CardID) map[string][]CardID {
	out := make(map[string][]CardID, len(src))
	for id, cards := range src {
		out[id] = copyCards(cards)
	}
	return out
}

func copyLogs(src map[string][]DiscardLogEntry) map[string][]DiscardLogEntry {
	out := make(map[string][]DiscardLogEntry, len(src))
	for id, entries := range src {
		es := make([]DiscardLogEntry, len(entries))
		copy(es, entries)
		out[id] = es
	}
	return out
}

func copySources(src map[CardID]CardSource) map[CardID]CardSource {
	out := make(map[CardID]CardSource, len(src))
	for id, from := range src {
		out[id] = from
	}
	return out
}
