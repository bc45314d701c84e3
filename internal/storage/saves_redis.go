package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/pixil98/go-adventure/internal/state"
)

const redisSavePrefix = "adventure:save:"

// RedisSaveStore keeps snapshots in redis, one key per slot.
type RedisSaveStore struct {
	client *redis.Client
}

func NewRedisSaveStore(addr string) *RedisSaveStore {
	return &RedisSaveStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Ping verifies the connection. Called once at startup.
func (s *RedisSaveStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisSaveStore) Close() error {
	return s.client.Close()
}

func (s *RedisSaveStore) Save(ctx context.Context, slot string, gs *state.GameState) error {
	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("marshalling save: %w", err)
	}

	if err := s.client.Set(ctx, s.key(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	return nil
}

func (s *RedisSaveStore) Load(ctx context.Context, slot string) (*state.GameState, error) {
	data, err := s.client.Get(ctx, s.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}

	gs := &state.GameState{}
	if err := json.Unmarshal(data, gs); err != nil {
		return nil, fmt.Errorf("unmarshalling save: %w", err)
	}
	return gs, nil
}

func (s *RedisSaveStore) Delete(ctx context.Context, slot string) error {
	n, err := s.client.Del(ctx, s.key(slot)).Result()
	if err != nil {
		return fmt.Errorf("deleting save: %w", err)
	}
	if n == 0 {
		return ErrSaveNotFound
	}
	return nil
}

func (s *RedisSaveStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, redisSavePrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}

	slots := make([]string, 0, len(keys))
	for _, k := range keys {
		slots = append(slots, strings.TrimPrefix(k, redisSavePrefix))
	}
	slices.Sort(slots)
	return slots, nil
}

func (s *RedisSaveStore) key(slot string) string {
	return redisSavePrefix + NormalizeSlot(slot)
}
