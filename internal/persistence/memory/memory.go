package memory

import (
	"github.com/sergeii/classicrypt/internal/persistence"
	"github.com/sergeii/classicrypt/internal/persistence/memory/keys"
)

func New() persistence.Repositories {
	return persistence.Repositories{
		Keys: keys.New(),
	}
}
