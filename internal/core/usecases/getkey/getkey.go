package getkey

import (
	"context"
	"errors"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/repositories"
)

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrUnableToObtainKey = errors.New("unable to obtain key from repository")
)

type UseCase struct {
	keyRepo repositories.KeyRepository
}

func New(
	keyRepo repositories.KeyRepository,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
	}
}

func (uc UseCase) Execute(ctx context.Context, name string) (storedkey.StoredKey, error) {
	key, err := uc.keyRepo.Get(ctx, name)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrKeyNotFound):
			return storedkey.Blank, ErrKeyNotFound
		default:
			return storedkey.Blank, ErrUnableToObtainKey
		}
	}
	return key, nil
}
