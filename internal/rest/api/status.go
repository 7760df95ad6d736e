package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/classicrypt/cmd/classicrypt/build"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
)

// Status godoc
// @Summary      Build information and supported ciphers
// @Tags         status
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /status [get]
func (a *API) Status(c *gin.Context) {
	members := variant.Members()
	ciphers := make([]string, 0, len(members))
	for _, v := range members {
		ciphers = append(ciphers, v.String())
	}
	c.JSON(http.StatusOK, map[string]string{
		"BuildTime":    build.Time,
		"BuildCommit":  build.Commit,
		"BuildVersion": build.Version,
		"Ciphers":      strings.Join(ciphers, ","),
	})
}
