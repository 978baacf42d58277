package server

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/engine"
	"github.com/bojanrajkovic/unquote/internal/gameid"
	"github.com/bojanrajkovic/unquote/internal/rng"
)

const dateLayout = "2006-01-02"

// randomEpoch is the earliest date --random will serve. Before this the
// corpus and keyword list did not exist, so "historical" puzzles from
// then were never anyone's daily.
var randomEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var dateShapeRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// handleGetGame serves /game/:id where :id is "today", "random", a
// YYYY-MM-DD date, or an encoded game id.
func (s *Server) handleGetGame(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	var (
		puzzle *engine.Puzzle
		err    error
	)
	switch {
	case id == "today":
		puzzle, err = s.gen.Generate(ctx, time.Now().UTC())
	case id == "random":
		puzzle, err = s.gen.Generate(ctx, s.randomDate())
	case dateShapeRE.MatchString(id):
		var date time.Time
		date, err = time.Parse(dateLayout, id)
		if err != nil {
			respondError(c, http.StatusBadRequest, codeInvalidInput, "invalid date: "+id)
			return
		}
		if date.Year() < gameid.MinYear || date.Year() > gameid.MaxYear {
			respondError(c, http.StatusNotFound, codeNotFound, "date out of range")
			return
		}
		puzzle, err = s.gen.Generate(ctx, date)
	default:
		puzzle, err = s.gen.GenerateForID(ctx, id)
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toPayload(puzzle))
}

// randomDate picks a uniform day between the epoch and today, seeded from
// the wall clock. Random mode is the one deliberately nondeterministic
// path in the generator's inputs.
func (s *Server) randomDate() time.Time {
	now := time.Now().UTC()
	days := int(now.Sub(randomEpoch).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	r := rng.New(now.Format(time.RFC3339Nano))
	return randomEpoch.AddDate(0, 0, r.Intn(days))
}

func (s *Server) handleCheck(c *gin.Context) {
	var req api.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "malformed request body")
		return
	}
	if req.CompletionTime < 0 {
		respondError(c, http.StatusBadRequest, codeInvalidInput, "completion_time must be >= 0")
		return
	}

	ctx := c.Request.Context()
	puzzle, err := s.gen.GenerateForID(ctx, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	correct, err := engine.CheckSolution(puzzle, req.Solution)
	if err != nil {
		s.fail(c, err)
		return
	}

	result := api.CheckResult{Correct: correct}
	if correct && req.ClaimCode != "" && s.store != nil {
		player, err := s.store.FindPlayer(ctx, req.ClaimCode)
		if err != nil {
			// A stale or mistyped claim code should not turn a correct
			// solve into an error; the solve just goes unrecorded.
			s.log.Warn("check with unknown claim code", "request_id", c.GetString(requestIDKey))
		} else {
			already, err := s.store.RecordSession(ctx, player.ID, puzzle.ID, puzzle.Date, req.CompletionTime)
			if err != nil {
				s.fail(c, err)
				return
			}
			result.AlreadyRecorded = already
		}
	}
	c.JSON(http.StatusOK, result)
}

func toPayload(p *engine.Puzzle) api.Puzzle {
	hints := make([]api.Hint, 0, len(p.Hints))
	for _, h := range p.Hints {
		hints = append(hints, api.Hint{
			CipherLetter: string(h.Cipher),
			PlainLetter:  string(h.Plain),
		})
	}
	return api.Puzzle{
		ID:            p.ID,
		Date:          p.Date.Format(dateLayout),
		EncryptedText: p.Ciphertext,
		Author:        p.Author,
		Category:      p.Category,
		Difficulty:    p.Difficulty,
		Hints:         hints,
	}
}
