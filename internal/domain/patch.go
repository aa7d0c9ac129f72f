package domain

// Patch is a minimal set of room field changes keyed by wire field name.
// Transitions return only the fields they semantically changed so that
// unrelated concurrent writers rarely collide at the store.
type Patch map[string]any

// Wire field names shared by Patch, the store's hash layout and the room's
// JSON tags.
const (
	FieldCode             = "code"
	FieldHostID           = "hostId"
	FieldStatus           = "status"
	FieldCardCount        = "cardCount"
	FieldPlayers          = "players"
	FieldDeck             = "deck"
	FieldHands            = "hands"
	FieldDiscards         = "discards"
	FieldDiscardLogs      = "discardLogs"
	FieldCardSources      = "cardSources"
	FieldTurnOrder        = "turnOrder"
	FieldActivePlayerID   = "activePlayerId"
	FieldTurnIndex        = "turnIndex"
	FieldTurnPhase        = "turnPhase"
	FieldTurnTimerSeconds = "turnTimerSeconds"
	FieldCreatedAt        = "createdAt"
	FieldUpdatedAt        = "updatedAt"
)

// Apply merges a patch into a copy of room. The input room is not mutated.
// Unknown patch fields are ignored.
func Apply(room *Room, patch Patch) *Room {
	out := *room
	for field, value := range patch {
		switch field {
		case FieldCode:
			out.Code = value.(string)
		case FieldHostID:
			out.HostID = value.(string)
		case FieldStatus:
			out.Status = value.(Status)
		case FieldCardCount:
			out.CardCount = value.(int)
		case FieldPlayers:
			out.Players = value.(map[string]Player)
		case FieldDeck:
			out.Deck = value.([]CardID)
		case FieldHands:
			out.Hands = value.(map[string][]CardID)
		case FieldDiscards:
			out.Discards = value.(map[string][]CardID)
		case FieldDiscardLogs:
			out.DiscardLogs = value.(map[string][]DiscardLogEntry)
		case FieldCardSources:
			out.CardSources = value.(map[CardID]CardSource)
		case FieldTurnOrder:
			out.TurnOrder = value.([]string)
		case FieldActivePlayerID:
			out.ActivePlayerID = value.(string)
		case FieldTurnIndex:
			out.TurnIndex = value.(int)
		case FieldTurnPhase:
			out.TurnPhase = value.(TurnPhase)
		case FieldTurnTimerSeconds:
			out.TurnTimerSeconds = value.(int)
		case FieldCreatedAt:
			out.CreatedAt = value.(int64)
		case FieldUpdatedAt:
			out.UpdatedAt = value.(int64)
		}
	}
	return &out
}
