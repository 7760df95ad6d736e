package removekey

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/internal/core/repositories"
)

var (
	ErrKeyNotFound       = errors.New("the requested key was not found")
	ErrUnableToRemoveKey = errors.New("unable to remove key")
)

type UseCase struct {
	keyRepo repositories.KeyRepository
	logger  *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo: keyRepo,
		logger:  logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, name string) error {
	if err := uc.keyRepo.Remove(ctx, name); err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			uc.logger.Info().Str("name", name).Msg("Removed key not found")
			return ErrKeyNotFound
		}
		uc.logger.Error().Err(err).Str("name", name).Msg("Failed to remove key")
		return ErrUnableToRemoveKey
	}

	uc.logger.Info().Str("name", name).Msg("Removed key on request")

	return nil
}
