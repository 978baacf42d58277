package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/engine"
	"github.com/bojanrajkovic/unquote/internal/gameid"
	"github.com/bojanrajkovic/unquote/internal/quotes"
	"github.com/bojanrajkovic/unquote/internal/store"
)

// Error codes carried in the JSON envelope alongside the message.
const (
	codeInvalidInput = "invalid_input"
	codeNotFound     = "not_found"
	codeUnavailable  = "unavailable"
	codeInternal     = "internal"
)

func respondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, api.ErrorBody{Error: msg, Code: code})
}

// fail maps an error from the engine, quote source, codec, or store onto
// the HTTP surface. Uncategorized faults become opaque 500s; the real
// error goes to the log, not the wire.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gameid.ErrNotFound), errors.Is(err, quotes.ErrNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, "no such game")
	case errors.Is(err, store.ErrPlayerNotFound):
		respondError(c, http.StatusNotFound, codeNotFound, "unknown claim code")
	case errors.Is(err, engine.ErrBadSubmission), errors.Is(err, engine.ErrBadKeyword):
		respondError(c, http.StatusBadRequest, codeInvalidInput, err.Error())
	case errors.Is(err, quotes.ErrEmpty), errors.Is(err, quotes.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, codeUnavailable, "quote corpus unavailable")
	default:
		s.log.Error("internal error",
			"error", err,
			"request_id", c.GetString(requestIDKey),
		)
		respondError(c, http.StatusInternalServerError, codeInternal, "internal error")
	}
}
