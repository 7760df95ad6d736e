package transformtext

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/sergeii/classicrypt/internal/core/ciphers"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/settings"
	"github.com/sergeii/classicrypt/pkg/cipher"
)

var (
	ErrTextTooLong       = errors.New("text is too long")
	ErrAmbiguousKey      = errors.New("either key or key name must be provided, not both")
	ErrKeyNotFound       = errors.New("the requested key was not found")
	ErrVariantMismatch   = errors.New("stored key belongs to another cipher variant")
	ErrUnableToObtainKey = errors.New("unable to obtain key from repository")
)

type Operation int

const (
	Encrypt Operation = iota
	Decrypt
)

func (op Operation) String() string {
	switch op {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

type Request struct {
	Operation Operation
	// Variant may be left unknown when the key is referred to by name.
	Variant variant.Variant
	Key     string
	KeyName string
	Text    string
}

type Response struct {
	Variant variant.Variant
	Text    string
}

type UseCase struct {
	keyRepo  repositories.KeyRepository
	metrics  *metrics.Collector
	settings settings.Settings
	logger   *zerolog.Logger
}

func New(
	keyRepo repositories.KeyRepository,
	metrics *metrics.Collector,
	settings settings.Settings,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		keyRepo:  keyRepo,
		metrics:  metrics,
		settings: settings,
		logger:   logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	v, key, err := uc.resolveKey(ctx, req)
	if err != nil {
		return Response{}, err
	}

	text := req.Text
	if uc.settings.NormalizeInput {
		key = norm.NFC.String(key)
		text = norm.NFC.String(text)
	}

	runes := utf8.RuneCountInString(text)
	if uc.settings.MaxTextLength > 0 && runes > uc.settings.MaxTextLength {
		return Response{}, ErrTextTooLong
	}

	started := time.Now()
	result, err := uc.transform(v, key, text, req.Operation)
	if err != nil {
		uc.metrics.CipherErrors.WithLabelValues(v.String(), req.Operation.String(), errorKind(err)).Inc()
		uc.logger.Debug().
			Err(err).Stringer("variant", v).Stringer("operation", req.Operation).
			Msg("Unable to transform text")
		return Response{}, err
	}

	uc.metrics.CipherDurations.
		WithLabelValues(v.String(), req.Operation.String()).
		Observe(time.Since(started).Seconds())
	uc.metrics.CipherOperations.WithLabelValues(v.String(), req.Operation.String()).Inc()
	uc.metrics.CipherRunes.WithLabelValues(v.String(), req.Operation.String()).Add(float64(runes))

	return Response{Variant: v, Text: result}, nil
}

func (uc UseCase) resolveKey(ctx context.Context, req Request) (variant.Variant, string, error) {
	if req.KeyName == "" {
		if req.Variant == variant.Unknown {
			return variant.Unknown, "", variant.ErrUnknownVariant
		}
		return req.Variant, req.Key, nil
	}

	if req.Key != "" {
		return variant.Unknown, "", ErrAmbiguousKey
	}

	stored, err := uc.keyRepo.Get(ctx, req.KeyName)
	if err != nil {
		if errors.Is(err, repositories.ErrKeyNotFound) {
			return variant.Unknown, "", ErrKeyNotFound
		}
		uc.logger.Error().Err(err).Str("name", req.KeyName).Msg("Failed to obtain stored key")
		return variant.Unknown, "", ErrUnableToObtainKey
	}

	if req.Variant != variant.Unknown && req.Variant != stored.Variant {
		return variant.Unknown, "", ErrVariantMismatch
	}

	return stored.Variant, stored.Key, nil
}

func (uc UseCase) transform(v variant.Variant, key, text string, op Operation) (string, error) {
	c, err := ciphers.New(v, key, uc.logger)
	if err != nil {
		return "", err
	}
	switch op {
	case Encrypt:
		return c.Encrypt(text)
	case Decrypt:
		return c.Decrypt(text)
	default:
		return "", errors.New("unknown operation")
	}
}

func errorKind(err error) string {
	if kind := cipher.Kind(err); kind != "" {
		return kind
	}
	return "other"
}
