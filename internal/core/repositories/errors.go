package repositories

import (
	"errors"
)

var (
	ErrKeyNotFound = errors.New("the requested key was not found")
	ErrKeyExists   = errors.New("key already exists")
)
