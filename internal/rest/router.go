package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/classicrypt/api/docs" // nolint: revive
	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/rest/api"
)

func NewRouter(a *api.API, collector *metrics.Collector) *gin.Engine {
	router := gin.Default()
	router.Use(observeRequests(collector))
	router.GET("/status", a.Status)
	router.POST("/api/encrypt", a.Encrypt)
	router.POST("/api/decrypt", a.Decrypt)
	router.GET("/api/keys", a.ListKeys)
	router.POST("/api/keys", a.AddKey)
	router.GET("/api/keys/:name", a.ViewKey)
	router.DELETE("/api/keys/:name", a.RemoveKey)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
