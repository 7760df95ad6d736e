package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/core/usecases/addkey"
	"github.com/sergeii/classicrypt/internal/core/usecases/getkey"
	"github.com/sergeii/classicrypt/internal/core/usecases/removekey"
	"github.com/sergeii/classicrypt/internal/rest/model"
	"github.com/sergeii/classicrypt/pkg/cipher"
)

// ListKeys godoc
// @Summary      List keys
// @Description  List stored keys, oldest first
// @Tags         keys
// @Produce      json
// @Success      200 {array} model.Key
// @Router       /api/keys [get]
func (a *API) ListKeys(c *gin.Context) {
	keys, err := a.container.ListKeys.Execute(c)
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to obtain keys")
		c.Status(http.StatusInternalServerError)
		return
	}

	result := make([]model.Key, 0, len(keys))
	for _, key := range keys {
		result = append(result, model.NewKeyFromDomain(key))
	}
	c.JSON(http.StatusOK, result)
}

// AddKey godoc
// @Summary      Add key
// @Description  Store a key under a name, the name is turned into a slug
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        key body      model.NewKey  true  "Key name, cipher variant and key"
// @Success      201 {object}  model.Key
// @Failure      400 {object}  model.Error
// @Failure      409 {object}  model.Error
// @Failure      422 {object}  model.Error
// @Router       /api/keys [post]
func (a *API) AddKey(c *gin.Context) {
	var body model.NewKey
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: "Invalid request body"})
		return
	}
	if err := a.validate.Struct(body); err != nil {
		c.JSON(http.StatusBadRequest, model.Error{Error: "Invalid request parameters"})
		return
	}

	key, err := a.container.AddKey.Execute(c, addkey.Request{
		Name:    body.Name,
		Variant: variant.MustParse(body.Variant),
		Key:     body.Key,
	})
	if err != nil {
		if kind := cipher.Kind(err); kind != "" {
			c.JSON(http.StatusUnprocessableEntity, model.Error{Error: err.Error(), Kind: kind})
			return
		}
		switch {
		case errors.Is(err, addkey.ErrInvalidName):
			c.JSON(http.StatusBadRequest, model.Error{Error: err.Error()})
		case errors.Is(err, addkey.ErrKeyExists):
			c.JSON(http.StatusConflict, model.Error{Error: err.Error()})
		default:
			a.logger.Error().Err(err).Str("name", body.Name).Msg("Failed to add key")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, model.NewKeyFromDomain(key))
}

// ViewKey godoc
// @Summary      View key
// @Tags         keys
// @Produce      json
// @Param        name path     string  true  "Key name"
// @Success      200  {object} model.Key
// @Failure      404  {object} model.Error
// @Router       /api/keys/{name} [get]
func (a *API) ViewKey(c *gin.Context) {
	name := c.Param("name")
	if err := a.validate.Var(name, "keyname"); err != nil {
		c.JSON(http.StatusNotFound, model.Error{Error: getkey.ErrKeyNotFound.Error()})
		return
	}

	key, err := a.container.GetKey.Execute(c, name)
	if err != nil {
		switch {
		case errors.Is(err, getkey.ErrKeyNotFound):
			a.logger.Debug().Str("name", name).Msg("Requested key not found")
			c.JSON(http.StatusNotFound, model.Error{Error: err.Error()})
		default:
			a.logger.Error().Err(err).Str("name", name).Msg("Failed to obtain key")
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, model.NewKeyFromDomain(key))
}

// RemoveKey godoc
// @Summary      Remove key
// @Tags         keys
// @Param        name path  string  true  "Key name"
// @Success      204
// @Failure      404 {object} model.Error
// @Router       /api/keys/{name} [delete]
func (a *API) RemoveKey(c *gin.Context) {
	name := c.Param("name")
	if err := a.validate.Var(name, "keyname"); err != nil {
		c.JSON(http.StatusNotFound, model.Error{Error: removekey.ErrKeyNotFound.Error()})
		return
	}

	if err := a.container.RemoveKey.Execute(c, name); err != nil {
		switch {
		case errors.Is(err, removekey.ErrKeyNotFound):
			c.JSON(http.StatusNotFound, model.Error{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
