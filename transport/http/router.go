package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRouter configures the HTTP routes over the given handlers.
func SetupRouter(h *Handlers, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	v1 := router.Group("/v1")
	{
		v1.POST("/codes", h.Generate)
		v1.POST("/resolve", h.Resolve)
		v1.POST("/status", h.Status)
	}

	return router
}
