package cipher

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey         = errors.New("key cannot be empty")
	ErrEmptyText        = errors.New("text cannot be empty")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNonDigitKey      = errors.New("key must consist of digits only")
	ErrNonPositiveKey   = errors.New("key must be a positive integer")
)

type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// CharacterError reports a rune that does not belong to an alphabet.
// Position is the rune offset in the offending string.
type CharacterError struct {
	Char     rune
	Position int
}

func (e *CharacterError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid character %q", e.Char)
	}
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Position)
}

func (e *CharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// Kind returns a stable tag for errors of the cipher taxonomy,
// or an empty string for anything else.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyKey):
		return "empty_key"
	case errors.Is(err, ErrEmptyText):
		return "empty_text"
	case errors.Is(err, ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, ErrNonDigitKey):
		return "non_digit_key"
	case errors.Is(err, ErrNonPositiveKey):
		return "non_positive_key"
	default:
		return ""
	}
}
