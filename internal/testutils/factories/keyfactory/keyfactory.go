package keyfactory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/pkg/slice"
)

type BuildParams struct {
	ID        string
	Name      string
	Variant   variant.Variant
	Key       string
	CreatedAt time.Time
}

type BuildOption func(*BuildParams)

func WithName(name string) BuildOption {
	return func(p *BuildParams) {
		p.Name = name
	}
}

func WithGronsfeldKey(key string) BuildOption {
	return func(p *BuildParams) {
		p.Variant = variant.Gronsfeld
		p.Key = key
	}
}

func WithPermutationKey(key string) BuildOption {
	return func(p *BuildParams) {
		p.Variant = variant.Permutation
		p.Key = key
	}
}

func WithRandomGronsfeldKey() BuildOption {
	return func(p *BuildParams) {
		p.Variant = variant.Gronsfeld
		p.Key = slice.RandomChoice([]string{"БКД", "КЛЮЧ", "ШИФР", "Я"})
	}
}

func WithCreatedAt(createdAt time.Time) BuildOption {
	return func(p *BuildParams) {
		p.CreatedAt = createdAt
	}
}

func Build(opts ...BuildOption) storedkey.StoredKey {
	params := BuildParams{
		ID:        uuid.NewString(),
		Name:      "default",
		Variant:   variant.Gronsfeld,
		Key:       "БКД",
		CreatedAt: time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(&params)
	}

	return storedkey.New(params.ID, params.Name, params.Variant, params.Key, params.CreatedAt)
}

func Save(
	ctx context.Context,
	repo repositories.KeyRepository,
	key storedkey.StoredKey,
) storedkey.StoredKey {
	if err := repo.Add(ctx, key); err != nil {
		panic(err)
	}
	return key
}

func Create(
	ctx context.Context,
	repo repositories.KeyRepository,
	opts ...BuildOption,
) storedkey.StoredKey {
	return Save(ctx, repo, Build(opts...))
}
