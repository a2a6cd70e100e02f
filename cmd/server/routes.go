package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/path2prevention/server/api/rest/chat"
	"codeberg.org/path2prevention/server/api/rest/health"
	"codeberg.org/path2prevention/server/api/rest/programs"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		programs.RegisterRoutes(v1, server.services.Discovery)
		chat.RegisterRoutes(v1, server.services.Discovery, ChatRateLimiter())
	}
}
