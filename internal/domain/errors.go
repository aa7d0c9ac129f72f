package domain

import "errors"

// State errors: a transition was attempted against a snapshot that does not
// allow it. The snapshot is never touched; the caller gets exactly one of
// these and no patch.
var (
	ErrNotStarted    = errors.New("game has not started")
	ErrGameOver      = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("not this player's turn")
	ErrWrongPhase    = errors.New("action not allowed in current phase")
	ErrEmptyDeck     = errors.New("deck is empty")
	ErrEmptyPile     = errors.New("discard pile is empty")
	ErrInvalidIndex  = errors.New("discard pile index out of range")
	ErrCardNotInHand = errors.New("card is not in player's hand")
	ErrNotHost       = errors.New("caller is not the room host")
)

// Setup errors: initial game state could not be built.
var (
	ErrNoPlayers         = errors.New("room has no players")
	ErrInsufficientCards = errors.New("not enough cards to deal")
)
