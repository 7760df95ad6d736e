package variant

import (
	"errors"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown cipher variant")

type Variant int

const (
	Gronsfeld Variant = iota + 1
	Permutation
)

const Unknown = Variant(0)

func Members() []Variant {
	return []Variant{
		Gronsfeld,
		Permutation,
	}
}

func (v Variant) String() string {
	switch v {
	case Gronsfeld:
		return "gronsfeld"
	case Permutation:
		return "permutation"
	default:
		return "unknown"
	}
}

func Parse(value string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "gronsfeld":
		return Gronsfeld, nil
	case "permutation":
		return Permutation, nil
	default:
		return Unknown, ErrUnknownVariant
	}
}

func MustParse(value string) Variant {
	v, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return v
}
