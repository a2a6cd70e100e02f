package chat

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/path2prevention/server/internal/discovery"
)

// RegisterRoutes mounts the semantic search endpoint. Extra middleware
// (rate limiting) is passed in by the server wiring since every call fans
// out to the embedding and intent providers.
func RegisterRoutes(router *gin.RouterGroup, svc *discovery.Service, middleware ...gin.HandlerFunc) {
	chatGroup := router.Group("/chat")
	chatGroup.Use(middleware...)
	{
		chatGroup.POST("/search", SearchHandler(svc))
	}
}
