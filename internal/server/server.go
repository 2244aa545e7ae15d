// Package server exposes the GraphQL schema over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"github.com/moviegraph/moviegraph/internal/config"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

const shutdownTimeout = 5 * time.Second

// Server serves the GraphQL endpoint, the playground and a health check.
type Server struct {
	cfg    config.ServerConfig
	core   *recordcore.Core
	schema *graphql.Schema
	log    *zap.Logger
	router *gin.Engine
}

// New builds the router for the given schema. core backs the health check.
func New(cfg config.ServerConfig, core *recordcore.Core, schema *graphql.Schema, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:    cfg,
		core:   core,
		schema: schema,
		log:    logger,
		router: gin.New(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(requestLogger(s.log), gin.Recovery())

	s.router.POST(s.cfg.Path, gin.WrapH(&relay.Handler{Schema: s.schema}))
	s.router.GET(s.cfg.Path, s.handleGet)
	s.router.GET("/healthz", s.handleHealth)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	go func() {
		movies, actors := s.core.Counts()
		s.log.Info("server listening",
			zap.String("addr", addr),
			zap.String("path", s.cfg.Path),
			zap.Bool("playground", s.cfg.Playground),
			zap.Int("movies", movies),
			zap.Int("actors", actors),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		s.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.log.Info("server stopped")
	}

	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	movies, actors := s.core.Counts()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"movies": movies,
		"actors": actors,
	})
}

// handleGet executes a query passed in the URL, or serves the playground
// when there is none.
func (s *Server) handleGet(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		if !s.cfg.Playground {
			writeError(c, http.StatusBadRequest, "missing query parameter")
			return
		}
		playground.Handler("Movies GraphQL", s.cfg.Path).ServeHTTP(c.Writer, c.Request)
		return
	}

	params, err := paramsFromQuery(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if params.isMutation() {
		c.Header("Allow", http.MethodPost)
		writeError(c, http.StatusMethodNotAllowed, "mutations must be sent with POST")
		return
	}

	resp := s.schema.Exec(c.Request.Context(), params.Query, params.OperationName, params.Variables)
	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"errors": []gin.H{{"message": msg}},
	})
}
