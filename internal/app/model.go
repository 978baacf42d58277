// Package app is the bubbletea program driving the terminal client: a
// single Model moved through states by messages from keys, the mouse,
// and async commands.
package app

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/config"
	"github.com/bojanrajkovic/unquote/internal/puzzle"
)

// State is where the UI currently is.
type State int

const (
	StateLoading State = iota
	StateOnboarding
	StateClaimCodeDisplay
	StatePlaying
	StateChecking
	StateSolved
	StateError
	StateStats
)

// Minimum terminal size below which the client refuses to draw the grid.
const (
	minWidth  = 40
	minHeight = 10
)

// Options are the flags the binary was started with.
type Options struct {
	Random    bool // fetch a random historical puzzle instead of today's
	StatsMode bool // jump straight to the stats screen and exit from it
}

// Model is the complete client state. Bubbletea copies it by value on
// every update; everything mutable lives in slices and pointers the
// copies share deliberately (cells) or is reassigned wholesale.
type Model struct {
	client *api.Client
	opts   Options

	state  State
	width  int
	height int
	// sizeReady flips once the first WindowSizeMsg arrives; before that
	// the too-small guard must not fire.
	sizeReady bool

	cfg       *config.Config
	form      *huh.Form
	optIn     bool
	claimCode string

	puzzle    *api.Puzzle
	cells     []puzzle.Cell
	cursorPos int

	// Timer: elapsedAtPause accumulates across restores, startTime marks
	// the current run.
	startTime      time.Time
	elapsedAtPause time.Duration

	// Session writes are coalesced to at most one per second; a pending
	// save flushes on the next tick or when play pauses.
	lastSave    time.Time
	pendingSave bool

	stats     *api.PlayerStats
	statsOnly bool

	statusMsg string
	errorMsg  string
}

// NewModel builds the initial model in the Loading state.
func NewModel(client *api.Client, opts Options) Model {
	return Model{
		client: client,
		opts:   opts,
		state:  StateLoading,
	}
}

// Elapsed is the total time spent on the current puzzle.
func (m Model) Elapsed() time.Duration {
	if m.startTime.IsZero() {
		return m.elapsedAtPause
	}
	return m.elapsedAtPause + time.Since(m.startTime)
}

// IsTooSmall reports whether the terminal is below the minimum drawable
// size. False until the first size message arrives.
func (m Model) IsTooSmall() bool {
	return m.sizeReady && (m.width < minWidth || m.height < minHeight)
}
