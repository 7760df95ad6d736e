package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/classicrypt/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("variant", validators.ValidateVariant); err != nil {
		return nil, err
	}
	if err := validate.RegisterValidation("keyname", validators.ValidateKeyName); err != nil {
		return nil, err
	}
	return validate, nil
}
