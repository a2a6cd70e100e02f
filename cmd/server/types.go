package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/path2prevention/server/internal/config"
	"codeberg.org/path2prevention/server/internal/discovery"
	"codeberg.org/path2prevention/server/internal/llm"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	programRepo *programs.Repository
	services    *Services
	router      *gin.Engine
}

// holds the discovery engine and its external collaborators
type Services struct {
	LLM       llm.LLM
	Cache     *discovery.Cache
	Discovery *discovery.Service
}
