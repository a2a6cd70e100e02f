package programs

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/path2prevention/server/internal/discovery"
)

func RegisterRoutes(router *gin.RouterGroup, svc *discovery.Service) {
	programsGroup := router.Group("/programs")
	{
		programsGroup.GET("", SearchHandler(svc))
		programsGroup.GET("/search", SearchByNameHandler(svc))
		programsGroup.GET("/:id", GetHandler(svc))
	}
}
