// Package permutation implements the digit keyed shift cipher
// over the combined Cyrillic and Latin alphabet.
//
// Every digit of the key is a shift on its own, so the key "305"
// shifts the text by 3, 0 and 5 positions in turn.
package permutation

import (
	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/pkg/cipher"
	"github.com/sergeii/classicrypt/pkg/cipher/alphabet"
)

type Cipher struct {
	alpha        *alphabet.Alphabet
	key          []int
	skipInvalid  bool
	logger       *zerolog.Logger
	failureLevel zerolog.Level
}

type Option func(*Cipher)

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

// WithSkipInvalid drops runes outside the alphabet instead of rejecting the text.
// The key keeps cycling over input positions, dropped runes included.
func WithSkipInvalid() Option {
	return func(c *Cipher) {
		c.skipInvalid = true
	}
}

func New(key string, opts ...Option) (*Cipher, error) {
	vec, err := parseKey(key)
	if err != nil {
		return nil, err
	}
	nop := zerolog.Nop()
	c := &Cipher{
		alpha:        alphabet.CyrillicLatin,
		key:          vec,
		logger:       &nop,
		failureLevel: zerolog.ErrorLevel,
	}
	for _, opt := range opts {
		opt(c)
	}
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

func (c *Cipher) Key() []int {
	vec := make([]int, len(c.key))
	copy(vec, c.key)
	return vec
}

func (c *Cipher) transform(text string, dir cipher.Direction) (string, error) {
	if text == "" {
		return "", cipher.ErrEmptyText
	}
	if !c.skipInvalid {
		work, err := c.alpha.Encode(text)
		if err != nil {
			return "", err
		}
		cipher.Shift(work, c.key, c.alpha.Len(), dir)
		return c.alpha.Decode(work)
	}
	return c.transformSkipping(text, dir)
}

func (c *Cipher) transformSkipping(text string, dir cipher.Direction) (string, error) {
	size := c.alpha.Len()
	result := make([]rune, 0, len(text))
	pos := 0
	for _, r := range text {
		idx, err := c.alpha.IndexOf(r)
		if err != nil {
			pos++
			continue
		}
		// shift a single rune with the key element for its input position
		work := []int{idx}
		cipher.Shift(work, []int{c.key[pos%len(c.key)]}, size, dir)
		ch, err := c.alpha.CharAt(work[0])
		if err != nil {
			return "", err
		}
		result = append(result, ch)
		pos++
	}
	return string(result), nil
}

// parseKey turns a string of decimal digits into a vector of shifts.
// Zero-valued keys such as "0" or "000" are rejected, leading zeros are not.
func parseKey(key string) ([]int, error) {
	if key == "" {
		return nil, cipher.ErrEmptyKey
	}
	vec := make([]int, 0, len(key))
	positive := false
	for _, r := range key {
		if r < '0' || r > '9' {
			return nil, cipher.ErrNonDigitKey
		}
		digit := int(r - '0')
		if digit > 0 {
			positive = true
		}
		vec = append(vec, digit)
	}
	if !positive {
		return nil, cipher.ErrNonPositiveKey
	}
	return vec, nil
}
