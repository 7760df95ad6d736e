package model

import (
	"time"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
)

type NewKey struct {
	Name    string `binding:"required" json:"name"`
	Variant string `binding:"required" json:"variant" validate:"variant"`
	// Left optional, an empty key is reported with the cipher error kind.
	Key string `json:"key"`
}

type Key struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Variant   string    `json:"variant"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

func NewKeyFromDomain(key storedkey.StoredKey) Key {
	return Key{
		ID:        key.ID,
		Name:      key.Name,
		Variant:   key.Variant.String(),
		Key:       key.Key,
		CreatedAt: key.CreatedAt,
	}
}
