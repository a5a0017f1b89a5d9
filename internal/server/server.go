package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leftovers-tracker/backend/config"
	"github.com/leftovers-tracker/backend/internal/graph"
	"github.com/leftovers-tracker/backend/internal/middleware"
	"github.com/leftovers-tracker/backend/internal/service"
)

// Server represents the HTTP server hosting the GraphQL endpoint
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New creates a new server instance with the GraphQL endpoint mounted at
// the configured path
func New(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORS(cfg))

	leftoverService := service.NewLeftoverService(db)
	resolver := graph.NewResolver(leftoverService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to build schema: %w", err)
	}

	graphqlHandler := graph.NewHandler(&schema, !config.IsProduction())
	router.Any(cfg.GraphQLPath, gin.WrapH(graphqlHandler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{
		router: router,
		db:     db,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: router,
		},
	}, nil
}

// Start starts the HTTP listener and blocks until it stops
func (s *Server) Start() error {
	log.Printf("GraphQL endpoint: http://localhost%s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
