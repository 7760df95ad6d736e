package addkey

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/sergeii/classicrypt/internal/core/ciphers"
	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/internal/settings"
)

var (
	ErrInvalidName      = errors.New("key name is invalid")
	ErrKeyExists        = errors.New("key with this name already exists")
	ErrUnableToStoreKey = errors.New("unable to store key")
)

type Request struct {
	Name    string
	Variant variant.Variant
	Key     string
}

type UseCase struct {
	keyRepo  repositories.KeyRepository
	settings settings.Settings
	clock    clockwork.Clock
	logger   *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	settings settings.Settings,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo:  keyRepo,
		settings: settings,
		clock:    clock,
		logger:   logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (storedkey.StoredKey, error) {
	name := slug.Make(req.Name)
	if name == "" || len(name) > storedkey.MaxNameLength {
		return storedkey.Blank, ErrInvalidName
	}

	key := req.Key
	if uc.settings.NormalizeInput {
		key = norm.NFC.String(key)
	}

	// a key that can't make a cipher is never stored
	if _, err := ciphers.New(req.Variant, key, uc.logger); err != nil {
		return storedkey.Blank, err
	}

	item := storedkey.New(uuid.NewString(), name, req.Variant, key, uc.clock.Now())
	if err := uc.keyRepo.Add(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrKeyExists) {
			return storedkey.Blank, ErrKeyExists
		}
		uc.logger.Error().Err(err).Str("name", name).Msg("Failed to store key")
		return storedkey.Blank, ErrUnableToStoreKey
	}

	uc.logger.Info().
		Str("name", name).Stringer("variant", req.Variant).Str("id", item.ID).
		Msg("Stored new key")

	return item, nil
}
