package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bojanrajkovic/unquote/internal/api"
)

func (s *Server) handleRegisterPlayer(c *gin.Context) {
	if s.store == nil {
		respondError(c, http.StatusServiceUnavailable, codeUnavailable, "stats tracking is not configured")
		return
	}
	player, err := s.store.RegisterPlayer(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.RegisterResult{ClaimCode: player.ClaimCode})
}

func (s *Server) handleStats(c *gin.Context) {
	if s.store == nil {
		respondError(c, http.StatusServiceUnavailable, codeUnavailable, "stats tracking is not configured")
		return
	}
	ctx := c.Request.Context()

	player, err := s.store.FindPlayer(ctx, c.Param("claim_code"))
	if err != nil {
		s.fail(c, err)
		return
	}
	stats, err := s.store.Stats(ctx, player.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.PlayerStats{
		Solved:        stats.Solved,
		MedianSeconds: stats.MedianSeconds,
		CurrentStreak: stats.CurrentStreak,
		RecentTimes:   stats.RecentTimes,
	})
}
