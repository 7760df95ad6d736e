package repositories

import (
	"context"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
)

type KeyRepository interface {
	Add(context.Context, storedkey.StoredKey) error
	Get(context.Context, string) (storedkey.StoredKey, error)
	Remove(context.Context, string) error
	List(context.Context) ([]storedkey.StoredKey, error)
	Count(context.Context) (int, error)
}
