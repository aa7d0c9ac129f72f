// Package app contains the use-cases that tie the pure game engine to the
// room store: room lifecycle, the turn actions run inside store
// transactions, and post-game analysis.
package app

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"valuedeck/internal/domain"
	"valuedeck/internal/scoring"
	"valuedeck/internal/store"
)

var (
	// ErrAlreadyStarted reports a lobby action against a room past waiting.
	ErrAlreadyStarted = errors.New("game already started")
	// ErrNotFinished reports an analysis request for an unfinished room.
	ErrNotFinished = errors.New("game not finished yet")
	// ErrUnknownPlayer reports a player id the room has never seen.
	ErrUnknownPlayer = errors.New("player not in room")
	// ErrBadCardCount reports a card count outside the configured bounds.
	ErrBadCardCount = errors.New("card count out of range")
)

const roomCodeLength = 6

// RoomStore is the transactional document store the service runs on.
type RoomStore interface {
	Get(ctx context.Context, code string) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	Transactionally(ctx context.Context, code string, fn func(*domain.Room) (domain.Patch, error)) (*domain.Room, error)
}

// Notifier receives every committed room snapshot, e.g. for live push.
type Notifier interface {
	RoomUpdated(code string, room *domain.Room)
}

// Limits bounds room creation.
type Limits struct {
	MinCardCount int
	MaxCardCount int
}

// Service exposes the game's use-cases.
type Service struct {
	store    RoomStore
	cards    map[int]scoring.CardInfo
	rng      *rand.Rand
	log      *zap.Logger
	limits   Limits
	notifier Notifier
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(store RoomStore, cards map[int]scoring.CardInfo, limits Limits, rng *rand.Rand, log *zap.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cards: cards, rng: rng, log: log, limits: limits}
}

// SetNotifier installs the live-push sink. Must be called before serving.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

func (s *Service) notify(room *domain.Room) {
	if s.notifier != nil && room != nil {
		s.notifier.RoomUpdated(room.Code, room)
	}
}

func now() int64 {
	return time.Now().Unix()
}

// newRoomCode derives a short uppercase code from a UUID.
func newRoomCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.ToUpper(raw[:roomCodeLength])
}

// CreateRoom creates a waiting room hosted by playerID and returns it.
func (s *Service) CreateRoom(ctx context.Context, playerID, playerName string, cardCount, turnTimerSeconds int) (*domain.Room, error) {
	if cardCount < s.limits.MinCardCount || cardCount > s.limits.MaxCardCount {
		return nil, ErrBadCardCount
	}

	ts := now()
	for attempt := 0; attempt < 10; attempt++ {
		room := &domain.Room{
			Code:             newRoomCode(),
			HostID:           playerID,
			Status:           domain.StatusWaiting,
			CardCount:        cardCount,
			Players:          map[string]domain.Player{playerID: {Name: playerName, JoinedAt: ts}},
			TurnTimerSeconds: turnTimerSeconds,
			CreatedAt:        ts,
			UpdatedAt:        ts,
		}
		err := s.store.Create(ctx, room)
		if err == nil {
			s.log.Info("room created",
				zap.String("room", room.Code),
				zap.String("host", playerID),
				zap.Int("cardCount", cardCount))
			return room, nil
		}
		if errors.Is(err, store.ErrRoomExists) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("could not allocate a unique room code")
}

// JoinRoom adds a player to a waiting room. Joining a room you are already
// in is a no-op.
func (s *Service) JoinRoom(ctx context.Context, code, playerID, playerName string) (*domain.Room, error) {
	joined := false
	room, err := s.store.Transactionally(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		joined = false
		if _, ok := r.Players[playerID]; ok {
			return nil, nil
		}
		if r.Status != domain.StatusWaiting {
			return nil, ErrAlreadyStarted
		}
		players := make(map[string]domain.Player, len(r.Players)+1)
		for id, p := range r.Players {
			players[id] = p
		}
		players[playerID] = domain.Player{Name: playerName, JoinedAt: now()}
		joined = true
		return domain.Patch{
			domain.FieldPlayers:   players,
			domain.FieldUpdatedAt: now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	// A rejoin commits nothing, so subscribers get nothing.
	if joined {
		s.log.Info("player joined", zap.String("room", code), zap.String("player", playerID))
		s.notify(room)
	}
	return room, nil
}

// StartGame deals the initial state and moves a waiting room into play.
func (s *Service) StartGame(ctx context.Context, code string) (*domain.Room, error) {
	room, err := s.store.Transactionally(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		switch r.Status {
		case domain.StatusWaiting:
		case domain.StatusFinished:
			return nil, domain.ErrGameOver
		default:
			return nil, ErrAlreadyStarted
		}
		patch, err := domain.NewGameState(s.rng, r)
		if err != nil {
			return nil, err
		}
		patch[domain.FieldUpdatedAt] = now()
		return patch, nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("game started",
		zap.String("room", code),
		zap.Int("players", len(room.Players)),
		zap.Int("deck", len(room.Deck)))
	s.notify(room)
	return room, nil
}

// Room returns the current snapshot.
func (s *Service) Room(ctx context.Context, code string) (*domain.Room, error) {
	return s.store.Get(ctx, code)
}

func (s *Service) mutate(ctx context.Context, code string, fn func(*domain.Room) (domain.Patch, error)) (*domain.Room, error) {
	room, err := s.store.Transactionally(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		patch, err := fn(r)
		if err != nil {
			return nil, err
		}
		patch[domain.FieldUpdatedAt] = now()
		return patch, nil
	})
	if err != nil {
		return nil, err
	}
	s.notify(room)
	return room, nil
}

// DrawFromDeck draws the top deck card for playerID.
func (s *Service) DrawFromDeck(ctx context.Context, code, playerID string) (*domain.Room, error) {
	room, err := s.mutate(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		return domain.ApplyDrawFromDeck(r, playerID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("drew from deck", zap.String("room", code), zap.String("player", playerID))
	return room, nil
}

// DrawFromDiscard picks the card at cardIndex of fromPlayerID's pile for
// playerID.
func (s *Service) DrawFromDiscard(ctx context.Context, code, playerID, fromPlayerID string, cardIndex int) (*domain.Room, error) {
	room, err := s.mutate(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		return domain.ApplyDrawFromDiscard(r, playerID, fromPlayerID, cardIndex)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("drew from discard pile",
		zap.String("room", code),
		zap.String("player", playerID),
		zap.String("from", fromPlayerID))
	return room, nil
}

// DiscardAndAdvance discards cardID for playerID and passes the turn.
func (s *Service) DiscardAndAdvance(ctx context.Context, code, playerID string, cardID domain.CardID, delaySec float64) (*domain.Room, error) {
	room, err := s.mutate(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		return domain.ApplyDiscardAndAdvance(r, playerID, cardID, delaySec)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("discarded",
		zap.String("room", code),
		zap.String("player", playerID),
		zap.Int("card", int(cardID)),
		zap.Bool("finished", room.Status == domain.StatusFinished))
	return room, nil
}

// Skip lets the host pass a stalled player's turn.
func (s *Service) Skip(ctx context.Context, code, callerID string) (*domain.Room, error) {
	room, err := s.mutate(ctx, code, func(r *domain.Room) (domain.Patch, error) {
		return domain.ApplySkip(r, callerID)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("turn skipped", zap.String("room", code), zap.String("by", callerID))
	return room, nil
}
