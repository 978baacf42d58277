package app

import (
	"time"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/config"
	"github.com/bojanrajkovic/unquote/internal/storage"
)

// Messages delivered by commands. Each is the completion of exactly one
// async operation; failures arrive as errMsg instead.

type puzzleFetchedMsg struct {
	puzzle *api.Puzzle
}

type solutionCheckedMsg struct {
	correct         bool
	alreadyRecorded bool
}

type sessionLoadedMsg struct {
	session *storage.GameSession
}

type sessionSavedMsg struct{}

type sessionRecordedMsg struct {
	gameID string
}

type sessionUploadMarkedMsg struct{}

// sessionRecordFailedMsg reports a best-effort record attempt that never
// reached the server. The session stays pending on disk; reconciliation
// retries it on a later run.
type sessionRecordFailedMsg struct{}

type reconciliationDoneMsg struct {
	uploaded int
}

type configLoadedMsg struct {
	config *config.Config
}

type configSavedMsg struct{}

type playerRegisteredMsg struct {
	claimCode string
}

type statsFetchedMsg struct {
	stats *api.PlayerStats
}

type clipboardCopiedMsg struct {
	err error
}

type shareCardSavedMsg struct {
	path string
	err  error
}

type tickMsg time.Time

type errMsg struct {
	err error
}
