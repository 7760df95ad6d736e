package persistence

import (
	"github.com/sergeii/classicrypt/internal/core/repositories"
)

type Repositories struct {
	Keys repositories.KeyRepository
}
