package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/sergeii/classicrypt/internal/core/entities/storedkey"
)

// ValidateKeyName accepts names that are already in their slug form,
// e.g. "my-key" but not "My Key".
func ValidateKeyName(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if value == "" {
		return true
	}

	if len(value) > storedkey.MaxNameLength {
		return false
	}

	return slug.IsSlug(value)
}
