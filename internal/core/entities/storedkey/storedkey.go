package storedkey

import (
	"time"

	"github.com/sergeii/classicrypt/internal/core/entities/variant"
)

// MaxNameLength bounds the slug a key is stored under.
const MaxNameLength = 64

// StoredKey is a cipher key saved under a name,
// so that clients can refer to it instead of passing the key around.
type StoredKey struct {
	ID        string
	Name      string
	Variant   variant.Variant
	Key       string
	CreatedAt time.Time
}

var Blank StoredKey // nolint: gochecknoglobals

func New(id, name string, v variant.Variant, key string, createdAt time.Time) StoredKey {
	return StoredKey{
		ID:        id,
		Name:      name,
		Variant:   v,
		Key:       key,
		CreatedAt: createdAt,
	}
}
