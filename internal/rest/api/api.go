package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/cmd/classicrypt/container"
)

type API struct {
	container container.Container
	validate  *validator.Validate
	logger    *zerolog.Logger
}

func New(
	container container.Container,
	validate *validator.Validate,
	logger *zerolog.Logger,
) *API {
	return &API{
		container: container,
		validate:  validate,
		logger:    logger,
	}
}
