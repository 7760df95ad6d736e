package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/classicrypt/internal/core/entities/variant"
)

func ValidateVariant(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// don't validate empty value
	if value == "" {
		return true
	}

	_, err := variant.Parse(value)
	return err == nil
}
