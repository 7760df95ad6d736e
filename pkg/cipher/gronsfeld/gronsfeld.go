// Package gronsfeld implements the Gronsfeld cipher over the Cyrillic alphabet.
//
// The key is written with letters of the same alphabet, each letter standing
// for a shift equal to its alphabet index (А=0, Б=1 and so forth).
package gronsfeld

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/pkg/cipher"
	"github.com/sergeii/classicrypt/pkg/cipher/alphabet"
)

type Cipher struct {
	alpha        *alphabet.Alphabet
	key          []int
	logger       *zerolog.Logger
	failureLevel zerolog.Level
}

type Option func(*Cipher)

// WithLogger makes the cipher log failed transforms before returning the error.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Cipher) {
		c.logger = logger
	}
}

// WithFailureLevel sets the level failed transforms are logged at, error by default.
func WithFailureLevel(lvl zerolog.Level) Option {
	return func(c *Cipher) {
		c.failureLevel = lvl
	}
}

func New(key string, opts ...Option) (*Cipher, error) {
	if key == "" {
		return nil, cipher.ErrEmptyKey
	}
	nop := zerolog.Nop()
	c := &Cipher{
		alpha:        alphabet.Cyrillic,
		logger:       &nop,
		failureLevel: zerolog.ErrorLevel,
	}
	for _, opt := range opts {
		opt(c)
	}
	vec, err := c.alpha.Encode(key)
	if err != nil {
		return nil, err
	}
	c.key = vec
	return c, nil
}

func (c *Cipher) Encrypt(text string) (string, error) {
	result, err := c.transform(text, cipher.Forward)
	if err != nil {
		c.logger.WithLevel(c.failureLevel).Err(err).Msg("Encryption failed")
		return "", err
	}
	return result, nil
}

func (c *Cipher) Decrypt(text string) (string, error) {
	result, err := c.transform(text, cipher.Backward)
	if err != nil {
		c.logger.WithLevel(c.failureLevel).Err(err).Msg("Decryption failed")
		return "", err
	}
	return result, nil
}

// Key returns a copy of the numeric key vector.
func (c *Cipher) Key() []int {
	vec := make([]int, len(c.key))
	copy(vec, c.key)
	return vec
}

func (c *Cipher) transform(text string, dir cipher.Direction) (string, error) {
	if text == "" {
		return "", cipher.ErrEmptyText
	}
	work, err := c.alpha.Encode(text)
	if err != nil {
		return "", err
	}
	cipher.Shift(work, c.key, c.alpha.Len(), dir)
	return c.alpha.Decode(work)
}
