package keys

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/repositories"
)

type Repository struct {
	items map[string]storedkey.StoredKey
	mutex sync.RWMutex
}

func New() *Repository {
	return &Repository{
		items: make(map[string]storedkey.StoredKey),
	}
}

func (r *Repository) Add(_ context.Context, key storedkey.StoredKey) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.items[key.Name]; exists {
		return repositories.ErrKeyExists
	}
	r.items[key.Name] = key
	return nil
}

func (r *Repository) Get(_ context.Context, name string) (storedkey.StoredKey, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	key, exists := r.items[name]
	if !exists {
		return storedkey.Blank, repositories.ErrKeyNotFound
	}
	return key, nil
}

func (r *Repository) Remove(_ context.Context, name string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.items[name]; !exists {
		return repositories.ErrKeyNotFound
	}
	delete(r.items, name)
	return nil
}

func (r *Repository) List(_ context.Context) ([]storedkey.StoredKey, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	items := make([]storedkey.StoredKey, 0, len(r.items))
	for _, key := range r.items {
		items = append(items, key)
	}
	// oldest first, names break ties
	slices.SortFunc(items, func(a, b storedkey.StoredKey) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return items, nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.items), nil
}
