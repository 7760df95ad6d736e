package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/usecases/transformtext"
	"github.com/sergeii/classicrypt/internal/rest/model"
	"github.com/sergeii/classicrypt/pkg/cipher"
)

// Encrypt godoc
// @Summary      Encrypt text
// @Description  Encrypt text with either an inline key or a stored key referred to by name
// @Tags         ciphers
// @Accept       json
// @Produce      json
// @Param        request body      model.TransformRequest  true  "Cipher variant, key and text"
// @Success      200     {object}  model.TransformResult
// @Failure      400     {object}  model.Error
// @Failure      404     {object}  model.Error
// @Failure      413     {object}  model.Error
// @Failure      422     {object}  model.Error
// @Router       /api/encrypt [post]
func (a *API) Encrypt(c *gin.Context) {
	a.transform(c, transformtext.Encrypt)
}

// Decrypt godoc
// @Summary      Decrypt text
// @Description  Decrypt text with either an inline key or a stored key referred to by name
// @Tags         ciphers
// @Accept       json
// @Produce      json
// @Param        request body      model.TransformRequest  true  "Cipher variant, key and text"
// @Success      200     {object}  model.TransformResult
// @Failure      400     {object}  model.Error
// @Failure      404     {object}  model.Error
// @Failure      413     {object}  model.Error
// @Failure      422     {object}  model.Error
// @Router       /api/decrypt [post]
func (a *API) Decrypt(c *gin.Context) {
	a.transform(c, transformtext.Decrypt)
}

func (a *API) transform(c *gin.Context, op transformtext.Operation) {
	var body model.TransformRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: "Invalid request body"})
		return
	}
	if err := a.validate.Struct(body); err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: "Invalid request parameters"})
		return
	}

	req := transformtext.Request{
		Operation: op,
		Key:       body.Key,
		KeyName:   body.KeyName,
		Text:      body.Text,
	}
	if body.Variant != "" {
		req.Variant = variant.MustParse(body.Variant)
	}

	resp, err := a.container.TransformText.Execute(c, req)
	if err != nil {
		a.respondTransformError(c, op, err)
		return
	}

	c.JSON(http.StatusOK, model.TransformResult{
		Variant: resp.Variant.String(),
		Text:    resp.Text,
	})
}

func (a *API) respondTransformError(c *gin.Context, op transformtext.Operation, err error) {
	if kind := cipher.Kind(err); kind != "" {
		c.JSON(http.StatusUnprocessableEntity, model.Error{Error: err.Error(), Kind: kind})
		return
	}
	switch {
	case errors.Is(err, transformtext.ErrKeyNotFound):
		c.JSON(http.StatusNotFound, model.Error{Error: err.Error()})
	case errors.Is(err, transformtext.ErrTextTooLong):
		c.JSON(http.StatusRequestEntityTooLarge, model.Error{Error: err.Error()})
	case errors.Is(err, transformtext.ErrAmbiguousKey),
		errors.Is(err, transformtext.ErrVariantMismatch),
		errors.Is(err, variant.ErrUnknownVariant):
		c.JSON(http.StatusBadRequest, model.Error{Error: err.Error()})
	default:
		a.logger.Error().Err(err).Stringer("operation", op).Msg("Failed to transform text")
		c.Status(http.StatusInternalServerError)
	}
}
