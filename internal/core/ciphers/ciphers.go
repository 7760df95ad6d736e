package ciphers

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/pkg/cipher"
	"github.com/sergeii/classicrypt/pkg/cipher/gronsfeld"
	"github.com/sergeii/classicrypt/pkg/cipher/permutation"
)

// New builds a ready to use cipher of the given variant.
// Key validation errors of the variant are returned unchanged.
// Rejected texts come from user input, so their failures are logged at debug level.
func New(v variant.Variant, key string, logger *zerolog.Logger) (cipher.Cipher, error) {
	switch v {
	case variant.Gronsfeld:
		c, err := gronsfeld.New(
			key,
			gronsfeld.WithLogger(logger),
			gronsfeld.WithFailureLevel(zerolog.DebugLevel),
		)
		if err != nil {
			return nil, err
		}
		return c, nil
	case variant.Permutation:
		c, err := permutation.New(
			key,
			permutation.WithLogger(logger),
			permutation.WithFailureLevel(zerolog.DebugLevel),
		)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, variant.ErrUnknownVariant
	}
}
