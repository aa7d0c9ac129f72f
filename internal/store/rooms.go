// Package store keeps room aggregates in redis, one hash per room, one hash
// field per room field with a JSON-encoded value. Minimal patches become
// per-field writes, and WATCH gives the optimistic read-compute-write loop
// the engine's pure transitions were built for.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"valuedeck/internal/domain"
)

var (
	// ErrRoomNotFound reports a missing room code.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomExists reports a create against a code already in use.
	ErrRoomExists = errors.New("room code already in use")
	// ErrTxRetriesExceeded reports a transaction that kept conflicting.
	ErrTxRetriesExceeded = errors.New("room transaction retries exceeded")
)

const keyPrefix = "room:"

// Rooms is the redis-backed room store.
type Rooms struct {
	rdb     *redis.Client
	log     *zap.Logger
	retries int
}

// New builds a Rooms store. retries caps how often a conflicting transaction
// is re-run from its read.
func New(rdb *redis.Client, log *zap.Logger, retries int) *Rooms {
	if log == nil {
		log = zap.NewNop()
	}
	if retries <= 0 {
		retries = 10
	}
	return &Rooms{rdb: rdb, log: log, retries: retries}
}

func roomKey(code string) string {
	return keyPrefix + code
}

// Get reads one room snapshot.
func (s *Rooms) Get(ctx context.Context, code string) (*domain.Room, error) {
	fields, err := s.rdb.HGetAll(ctx, roomKey(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading room %s: %w", code, err)
	}
	if len(fields) == 0 {
		return nil, ErrRoomNotFound
	}
	return decodeRoom(fields)
}

// Create writes a brand-new room, failing if the code is taken. The
// existence check and the write run in one WATCH transaction so concurrent
// creates of the same code cannot both succeed.
func (s *Rooms) Create(ctx context.Context, room *domain.Room) error {
	key := roomKey(room.Code)
	txf := func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrRoomExists
		}
		enc, err := encodeRoom(room)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, enc)
			return nil
		})
		return err
	}

	for i := 0; i < s.retries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxRetriesExceeded
}

// Transactionally runs fn against the current snapshot of a room and writes
// the returned patch, retrying the whole read-compute-write cycle when the
// room changed underneath. Errors from fn abort immediately: a rule
// violation is not a conflict. Returns the room with the patch applied.
func (s *Rooms) Transactionally(ctx context.Context, code string, fn func(*domain.Room) (domain.Patch, error)) (*domain.Room, error) {
	key := roomKey(code)

	var updated *domain.Room
	txf := func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return ErrRoomNotFound
		}
		room, err := decodeRoom(fields)
		if err != nil {
			return err
		}

		patch, err := fn(room)
		if err != nil {
			return err
		}
		if len(patch) == 0 {
			updated = room
			return nil
		}

		enc, err := encodePatch(patch)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, enc)
			return nil
		})
		if err == nil {
			updated = domain.Apply(room, patch)
		}
		return err
	}

	for i := 0; i < s.retries; i++ {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			s.log.Debug("room transaction conflict, retrying",
				zap.String("room", code), zap.Int("attempt", i+1))
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, ErrTxRetriesExceeded
}

// decodeRoom converts the loose hash fields into the typed aggregate. The
// engine only ever sees the validated type, never raw store data.
func decodeRoom(fields map[string]string) (*domain.Room, error) {
	raw := make(map[string]any, len(fields))
	for field, value := range fields {
		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			return nil, fmt.Errorf("decoding room field %q: %w", field, err)
		}
		raw[field] = v
	}

	var room domain.Room
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &room,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding room snapshot: %w", err)
	}
	return &room, nil
}

// encodeRoom flattens a full room into hash fields.
func encodeRoom(room *domain.Room) (map[string]any, error) {
	blob, err := json.Marshal(room)
	if err != nil {
		return nil, err
	}
	var byField map[string]json.RawMessage
	if err := json.Unmarshal(blob, &byField); err != nil {
		return nil, err
	}
	enc := make(map[string]any, len(byField))
	for field, value := range byField {
		enc[field] = string(value)
	}
	return enc, nil
}

// encodePatch JSON-encodes each changed field for a partial HSet.
func encodePatch(patch domain.Patch) (map[string]any, error) {
	enc := make(map[string]any, len(patch))
	for field, value := range patch {
		blob, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding patch field %q: %w", field, err)
		}
		enc[field] = string(blob)
	}
	return enc, nil
}
