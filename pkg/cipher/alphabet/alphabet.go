// Package alphabet maps the runes of a fixed ordered alphabet
// to their positions and back.
//
// Lookup tables are plain arrays indexed by rune, which covers ASCII
// and the Cyrillic block. An Alphabet is never modified after construction,
// so a single value may be shared by any number of goroutines.
package alphabet

import (
	"log"
	"unicode/utf8"

	"github.com/sergeii/classicrypt/pkg/cipher"
)

// runes at or above this value can not be part of an alphabet
const tableSize = 0x0500

const (
	cyrillic = "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"
	latin    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var (
	// Cyrillic is the 33-letter uppercase Russian alphabet, Ё included.
	Cyrillic = MustNew(cyrillic)
	// CyrillicLatin is Cyrillic followed by the 26 uppercase Latin letters.
	CyrillicLatin = MustNew(cyrillic + latin)
)

type Alphabet struct {
	encode []rune
	decode [tableSize]int16
}

// MustNew builds an alphabet from an ordered string of distinct runes.
//
// It panics if the string is empty, contains a repeated rune
// or a rune that does not fit into the lookup table.
func MustNew(s string) *Alphabet {
	if s == "" {
		log.Panic("alphabet must not be empty")
	}
	a := &Alphabet{
		encode: make([]rune, 0, utf8.RuneCountInString(s)),
	}
	for i := range a.decode {
		a.decode[i] = -1
	}
	for _, r := range s {
		if r < 0 || r >= tableSize {
			log.Panicf("alphabet rune %q is out of supported range", r)
		}
		if a.decode[r] != -1 {
			log.Panicf("alphabet rune %q is not unique", r)
		}
		a.decode[r] = int16(len(a.encode)) // nolint: gosec // bounded by tableSize
		a.encode = append(a.encode, r)
	}
	return a
}

func (a *Alphabet) Len() int {
	return len(a.encode)
}

func (a *Alphabet) String() string {
	return string(a.encode)
}

func (a *Alphabet) Contains(r rune) bool {
	return r >= 0 && r < tableSize && a.decode[r] != -1
}

func (a *Alphabet) IndexOf(r rune) (int, error) {
	if !a.Contains(r) {
		return -1, &cipher.CharacterError{Char: r, Position: -1}
	}
	return int(a.decode[r]), nil
}

func (a *Alphabet) CharAt(idx int) (rune, error) {
	if idx < 0 || idx >= len(a.encode) {
		return utf8.RuneError, &cipher.IndexError{Index: idx, Size: len(a.encode)}
	}
	return a.encode[idx], nil
}

// Encode converts every rune of s into its alphabet index.
// The whole string is checked, the first foreign rune fails the conversion.
func (a *Alphabet) Encode(s string) ([]int, error) {
	indices := make([]int, 0, utf8.RuneCountInString(s))
	pos := 0
	for _, r := range s {
		if !a.Contains(r) {
			return nil, &cipher.CharacterError{Char: r, Position: pos}
		}
		indices = append(indices, int(a.decode[r]))
		pos++
	}
	return indices, nil
}

func (a *Alphabet) Decode(indices []int) (string, error) {
	runes := make([]rune, len(indices))
	for i, idx := range indices {
		r, err := a.CharAt(idx)
		if err != nil {
			return "", err
		}
		runes[i] = r
	}
	return string(runes), nil
}
