package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bojanrajkovic/unquote/internal/api"
)

func (s *Server) handleLive(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReady(c *gin.Context) {
	h := s.store.CheckHealth(c.Request.Context())
	c.JSON(http.StatusOK, api.Health{
		Status: "ok",
		Database: api.DatabaseHealth{
			Status: h.Status,
			Error:  h.Err,
		},
	})
}
