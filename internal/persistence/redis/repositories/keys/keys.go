package keys

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/repositories"
)

const (
	itemsKey   = "keys:items"
	createdKey = "keys:created"
)

type storedItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Variant   string `json:"variant"`
	Key       string `json:"key"`
	CreatedAt int64  `json:"created_at"`
}

type Repository struct {
	client *redis.Client
	clock  clockwork.Clock
}

func New(client *redis.Client, c clockwork.Clock) *Repository {
	return &Repository{
		client: client,
		clock:  c,
	}
}

func (r *Repository) Add(ctx context.Context, key storedkey.StoredKey) error {
	if key.CreatedAt.IsZero() {
		key.CreatedAt = r.clock.Now()
	}
	item, err := encodeKey(key)
	if err != nil {
		return err
	}
	var added *redis.BoolCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		added = pipe.HSetNX(ctx, itemsKey, key.Name, item)
		// no-op for an existing name, the member is already there
		pipe.ZAddNX(ctx, createdKey, redis.Z{
			Score:  float64(key.CreatedAt.UnixNano()),
			Member: key.Name,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to add key: %w", err)
	}
	if !added.Val() {
		return repositories.ErrKeyExists
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, name string) (storedkey.StoredKey, error) {
	item, err := r.client.HGet(ctx, itemsKey, name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return storedkey.Blank, repositories.ErrKeyNotFound
		}
		return storedkey.Blank, fmt.Errorf("failed to retrieve key by name: %w", err)
	}
	return decodeKey(item)
}

func (r *Repository) Remove(ctx context.Context, name string) error {
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, itemsKey, name)
		pipe.ZRem(ctx, createdKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove key: %w", err)
	}
	if removed.Val() == 0 {
		return repositories.ErrKeyNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]storedkey.StoredKey, error) {
	names, err := r.client.ZRange(ctx, createdKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch key names: %w", err)
	}
	if len(names) == 0 {
		return []storedkey.StoredKey{}, nil
	}

	items, err := r.client.HMGet(ctx, itemsKey, names...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch keys: %w", err)
	}

	result := make([]storedkey.StoredKey, 0, len(items))
	for _, item := range items {
		// the key could have been removed in between
		if item == nil {
			continue
		}
		key, decodeErr := decodeKey(item)
		if decodeErr != nil {
			return nil, decodeErr
		}
		result = append(result, key)
	}

	return result, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count keys: %w", err)
	}
	return int(count), nil
}

func encodeKey(key storedkey.StoredKey) ([]byte, error) {
	encoded, err := json.Marshal(storedItem{
		ID:        key.ID,
		Name:      key.Name,
		Variant:   key.Variant.String(),
		Key:       key.Key,
		CreatedAt: key.CreatedAt.UnixNano(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key item: %w", err)
	}
	return encoded, nil
}

func decodeKey(val any) (storedkey.StoredKey, error) {
	var decoded storedItem
	encoded, ok := val.(string)
	if !ok {
		return storedkey.Blank, fmt.Errorf("unexpected type %T, %v", val, val)
	}
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		return storedkey.Blank, fmt.Errorf("failed to unmarshal key item: %w", err)
	}
	v, err := variant.Parse(decoded.Variant)
	if err != nil {
		return storedkey.Blank, fmt.Errorf("stored key %s: %w", decoded.Name, err)
	}
	return storedkey.New(
		decoded.ID,
		decoded.Name,
		v,
		decoded.Key,
		time.Unix(0, decoded.CreatedAt).UTC(),
	), nil
}
