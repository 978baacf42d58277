// Package server exposes the puzzle engine and player store over HTTP.
// Handlers receive their dependencies from the Server value; per-request
// state (request id, scoped logger) travels in the gin context, never in
// globals.
package server

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/bojanrajkovic/unquote/internal/engine"
	"github.com/bojanrajkovic/unquote/internal/gameid"
	"github.com/bojanrajkovic/unquote/internal/quotes"
	"github.com/bojanrajkovic/unquote/internal/store"
)

// Server holds the construction graph: every handler dependency, built
// once at startup.
type Server struct {
	cfg    *Config
	log    *log.Logger
	quotes *quotes.Source
	gen    *engine.Generator
	codec  *gameid.Codec
	store  *store.Store // nil when no database is configured
	tracer trace.Tracer
}

// New assembles a server. st may be nil.
func New(cfg *Config, logger *log.Logger, src *quotes.Source, gen *engine.Generator, codec *gameid.Codec, st *store.Store) *Server {
	return &Server{
		cfg:    cfg,
		log:    logger,
		quotes: src,
		gen:    gen,
		codec:  codec,
		store:  st,
		tracer: otel.Tracer("unquote/server"),
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.requestLogger(), s.requestSpan())

	r.GET("/health/live", s.handleLive)
	r.GET("/health/ready", s.handleReady)

	// "today" and "random" share the :id segment with dated and encoded
	// ids; gin's router cannot mix static and wildcard siblings here.
	r.GET("/game/:id", s.handleGetGame)
	r.POST("/game/:id/check", s.handleCheck)

	r.POST("/players", s.handleRegisterPlayer)
	r.GET("/players/:claim_code/stats", s.handleStats)

	return r
}
