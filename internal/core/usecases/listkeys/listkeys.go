package listkeys

import (
	"context"
	"errors"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/repositories"
)

var ErrUnableToObtainKeys = errors.New("unable to obtain keys from repository")

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

// Execute returns stored keys, oldest first.
func (uc UseCase) Execute(ctx context.Context) ([]storedkey.StoredKey, error) {
	keys, err := uc.keyRepo.List(ctx)
	if err != nil {
		return nil, ErrUnableToObtainKeys
	}
	return keys, nil
}
