package app

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	zone "github.com/lrstanley/bubblezone"

	"github.com/bojanrajkovic/unquote/internal/config"
	"github.com/bojanrajkovic/unquote/internal/puzzle"
	"github.com/bojanrajkovic/unquote/internal/ui"
)

// Init kicks off by loading the on-disk config; everything else chains
// from the configLoadedMsg.
func (m Model) Init() tea.Cmd {
	return loadConfigCmd()
}

// Update handles incoming messages.
//
//nolint:gocyclo // central message dispatcher; each message type needs its own case
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeReady = true
		return m, nil

	case puzzleFetchedMsg:
		return m.handlePuzzleFetched(msg)

	case solutionCheckedMsg:
		return m.handleSolutionChecked(msg)

	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg)

	case sessionRecordedMsg:
		return m, markSessionUploadedCmd(msg.gameID)

	case sessionSavedMsg, sessionUploadMarkedMsg, sessionRecordFailedMsg, reconciliationDoneMsg:
		return m, nil

	case configLoadedMsg:
		return m.handleConfigLoaded(msg)

	case configSavedMsg:
		return m.handleConfigSaved()

	case playerRegisteredMsg:
		return m.handlePlayerRegistered(msg)

	case statsFetchedMsg:
		m.stats = msg.stats
		m.statsOnly = m.opts.StatsMode
		m.state = StateStats
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.statusMsg = "Could not copy to clipboard."
		} else {
			m.statusMsg = "Claim code copied!"
		}
		return m, nil

	case shareCardSavedMsg:
		if msg.err != nil {
			m.statusMsg = "Could not write share card."
		} else {
			m.statusMsg = "Share card saved to " + msg.path
		}
		return m, nil

	case tickMsg:
		// Re-render for the timer; keeps ticking while playing and while
		// a check is in flight, so the chain survives a wrong answer.
		// The tick also flushes any save held back by the throttle.
		switch m.state {
		case StatePlaying:
			if m.pendingSave && time.Since(m.lastSave) >= time.Second {
				var cmd tea.Cmd
				m, cmd = m.throttledSave()
				return m, tea.Batch(cmd, tickCmd())
			}
			return m, tickCmd()
		case StateChecking:
			return m, tickCmd()
		}
		return m, nil

	case errMsg:
		m.state = StateError
		m.errorMsg = formatErrorMessage(msg.err)
		return m, nil
	}

	// During onboarding, huh's internal messages (focus, blink) must
	// reach the form.
	if m.state == StateOnboarding && m.form != nil {
		formModel, cmd := m.form.Update(msg)
		if f, ok := formModel.(*huh.Form); ok {
			m.form = f
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The stats screen owns Esc/b before the global quit handler runs.
	if m.state == StateStats {
		switch msg.String() {
		case "esc", "b", "q":
			if m.statsOnly {
				return m, tea.Quit
			}
			m.state = StateSolved
			return m, nil
		}
		return m, nil
	}

	if msg.String() == "esc" {
		// Flush a held-back save so at most one second of input can be
		// lost on exit.
		if m.state == StatePlaying && m.pendingSave {
			return m, tea.Sequence(
				saveSessionCmd(m.puzzle.ID, m.cells, m.Elapsed()),
				tea.Quit,
			)
		}
		return m, tea.Quit
	}

	if m.IsTooSmall() {
		return m, nil
	}

	switch m.state {
	case StateLoading, StateChecking:
		return m, nil

	case StateError:
		if msg.String() == "r" {
			m.state = StateLoading
			m.errorMsg = ""
			return m, m.fetchCmd()
		}
		return m, nil

	case StatePlaying:
		return m.handlePlayingKeyMsg(msg)

	case StateSolved:
		return m.handleSolvedKeyMsg(msg)

	case StateOnboarding:
		return m.handleOnboardingKeyMsg(msg)

	case StateClaimCodeDisplay:
		if msg.String() == "c" {
			return m, copyClaimCodeCmd(m.claimCode)
		}
		// Any other key proceeds to the puzzle.
		m.state = StateLoading
		m.form = nil
		m.statusMsg = ""
		return m, m.fetchCmd()
	}

	return m, nil
}

// fetchCmd picks the puzzle fetch matching the startup flags.
func (m Model) fetchCmd() tea.Cmd {
	if m.opts.Random {
		return fetchRandomPuzzleCmd(m.client)
	}
	return fetchPuzzleCmd(m.client)
}

func (m Model) handleConfigLoaded(msg configLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.config != nil {
		// Returning player; no onboarding.
		m.cfg = msg.config
		m.claimCode = msg.config.ClaimCode
		m.state = StateLoading

		if m.opts.StatsMode {
			if m.claimCode == "" {
				m.state = StateError
				m.errorMsg = "No claim code found. Opt into stats tracking first."
				return m, nil
			}
			return m, fetchStatsCmd(m.client, m.claimCode)
		}

		cmds := []tea.Cmd{m.fetchCmd()}
		if m.claimCode != "" {
			cmds = append(cmds, reconcileSessionsCmd(m.client, m.claimCode))
		}
		return m, tea.Batch(cmds...)
	}

	// First run: ask about stats tracking.
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Track Your Stats?").
				Description("Unquote can track your solve times and streaks.\n\n"+
					"What we store:\n"+
					"  - Which puzzles you solved\n"+
					"  - How long each took\n\n"+
					"What we don't store:\n"+
					"  - No personal information\n"+
					"  - No email, no password\n\n"+
					"You'll get a random claim code (like TIGER-MAPLE-7492)\n"+
					"that identifies your stats. Save it to access your\n"+
					"stats from another device."),
			huh.NewConfirm().
				Title("Track my stats?").
				Affirmative("Yes, track my stats").
				Negative("No thanks").
				Value(&m.optIn),
		),
	).WithShowHelp(false).WithShowErrors(false)
	m.state = StateOnboarding
	return m, m.form.Init()
}

func (m Model) handleOnboardingKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	formModel, cmd := m.form.Update(msg)
	if f, ok := formModel.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if m.optIn {
			cfg := &config.Config{StatsEnabled: true}
			m.cfg = cfg
			return m, tea.Batch(saveConfigCmd(cfg), registerPlayerCmd(m.client))
		}
		cfg := &config.Config{StatsEnabled: false}
		m.cfg = cfg
		return m, saveConfigCmd(cfg)
	}

	return m, cmd
}

func (m Model) handlePlayerRegistered(msg playerRegisteredMsg) (tea.Model, tea.Cmd) {
	m.claimCode = msg.claimCode
	m.state = StateClaimCodeDisplay
	return m, tea.Batch(
		saveConfigCmd(&config.Config{ClaimCode: msg.claimCode, StatsEnabled: true}),
		reconcileSessionsCmd(m.client, msg.claimCode),
	)
}

func (m Model) handleConfigSaved() (tea.Model, tea.Cmd) {
	// Opt-out lands here while still in onboarding; opt-in waits on the
	// claim code screen for a keypress instead.
	if m.state == StateOnboarding {
		m.state = StateLoading
		return m, m.fetchCmd()
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state != StatePlaying || m.IsTooSmall() {
		return m, nil
	}

	for _, cell := range m.cells {
		if cell.Kind != puzzle.CellLetter {
			continue
		}
		if zone.Get(fmt.Sprintf("cell-%d", cell.Index)).InBounds(msg) {
			m.cursorPos = cell.Index
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handlePlayingKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		puzzle.ClearAllInput(m.cells)
		m.cursorPos = puzzle.FirstLetterCell(m.cells)
		m.statusMsg = ""
		return m.throttledSave()

	case "enter":
		return m.handleSubmit()

	case "left":
		if prev := puzzle.PrevLetterCell(m.cells, m.cursorPos); prev >= 0 {
			m.cursorPos = prev
		}
		return m, nil

	case "right":
		if next := puzzle.NextLetterCell(m.cells, m.cursorPos); next >= 0 {
			m.cursorPos = next
		}
		return m, nil

	case "home":
		if first := puzzle.FirstLetterCell(m.cells); first >= 0 {
			m.cursorPos = first
		}
		return m, nil

	case "end":
		if last := puzzle.LastLetterCell(m.cells); last >= 0 {
			m.cursorPos = last
		}
		return m, nil

	case "tab":
		if next := puzzle.NextUnfilledLetterCell(m.cells, m.cursorPos); next >= 0 {
			m.cursorPos = next
		}
		return m, nil

	case "backspace":
		if m.cursorPos >= 0 && m.cursorPos < len(m.cells) {
			puzzle.ClearInput(m.cells, m.cursorPos)
			if prev := puzzle.PrevLetterCell(m.cells, m.cursorPos); prev >= 0 {
				m.cursorPos = prev
			}
		}
		m.statusMsg = ""
		return m.throttledSave()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			if r := msg.Runes[0]; unicode.IsLetter(r) {
				return m.handleLetterInput(unicode.ToUpper(r))
			}
		}
	}

	return m, nil
}

func (m Model) handleLetterInput(letter rune) (tea.Model, tea.Cmd) {
	if m.cursorPos < 0 || m.cursorPos >= len(m.cells) {
		return m, nil
	}

	if puzzle.SetInput(m.cells, m.cursorPos, letter) {
		if next := puzzle.NextUnfilledLetterCell(m.cells, m.cursorPos); next >= 0 {
			m.cursorPos = next
		}
	}
	m.statusMsg = ""
	return m.throttledSave()
}

// throttledSave persists the grid at most once per second; skipped
// writes are flagged pending and flushed by the tick or on pause.
func (m Model) throttledSave() (Model, tea.Cmd) {
	if time.Since(m.lastSave) >= time.Second {
		m.lastSave = time.Now()
		m.pendingSave = false
		return m, saveSessionCmd(m.puzzle.ID, m.cells, m.Elapsed())
	}
	m.pendingSave = true
	return m, nil
}

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if !puzzle.IsComplete(m.cells) {
		m.statusMsg = "Fill in all letters first!"
		return m, nil
	}

	solution := puzzle.AssembleSolution(m.cells)
	m.state = StateChecking
	m.statusMsg = ""
	m.pendingSave = false

	return m, tea.Batch(
		saveSessionCmd(m.puzzle.ID, m.cells, m.Elapsed()),
		checkSolutionCmd(m.client, m.puzzle.ID, solution),
	)
}

func (m Model) handleSolvedKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		if m.claimCode != "" {
			m.state = StateLoading
			return m, fetchStatsCmd(m.client, m.claimCode)
		}
	case "p":
		return m, saveShareCardCmd(m.puzzle, m.elapsedAtPause)
	}
	return m, nil
}

func (m Model) handleSolutionChecked(msg solutionCheckedMsg) (tea.Model, tea.Cmd) {
	if !msg.correct {
		// No new tick here: the chain that ran through Checking is still
		// alive, and a second one would double the tick rate.
		m.state = StatePlaying
		m.statusMsg = "Not quite right. Keep trying!"
		return m, nil
	}

	m.state = StateSolved
	m.statusMsg = ""
	m.elapsedAtPause += time.Since(m.startTime)
	m.startTime = time.Time{}

	cmds := []tea.Cmd{saveSolvedSessionCmd(m.puzzle.ID, m.cells, m.elapsedAtPause)}
	if m.claimCode != "" && !msg.alreadyRecorded {
		cmds = append(cmds, recordSessionCmd(
			m.client, m.claimCode, m.puzzle.ID,
			puzzle.AssembleSolution(m.cells), m.elapsedAtPause,
		))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handlePuzzleFetched(msg puzzleFetchedMsg) (tea.Model, tea.Cmd) {
	// Server text goes straight to the terminal, so strip anything that
	// could smuggle escape sequences.
	msg.puzzle.Author = ui.SanitizeString(msg.puzzle.Author)
	msg.puzzle.Category = ui.SanitizeString(msg.puzzle.Category)
	msg.puzzle.EncryptedText = ui.SanitizeString(msg.puzzle.EncryptedText)
	for i := range msg.puzzle.Hints {
		msg.puzzle.Hints[i].CipherLetter = ui.SanitizeString(msg.puzzle.Hints[i].CipherLetter)
		msg.puzzle.Hints[i].PlainLetter = ui.SanitizeString(msg.puzzle.Hints[i].PlainLetter)
	}

	m.puzzle = msg.puzzle
	m.cells = puzzle.BuildCells(msg.puzzle.EncryptedText, hintMap(msg.puzzle.Hints))
	m.cursorPos = puzzle.FirstLetterCell(m.cells)
	m.state = StatePlaying
	m.startTime = time.Now()
	m.elapsedAtPause = 0
	return m, loadSessionCmd(msg.puzzle.ID)
}

func (m Model) handleSessionLoaded(msg sessionLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.session == nil {
		return m, tickCmd()
	}

	// Inputs come back for solved and in-progress sessions alike; a
	// solved grid shown empty looks like data loss.
	for i := range m.cells {
		if m.cells[i].Kind != puzzle.CellLetter {
			continue
		}
		if input, ok := msg.session.Inputs[string(m.cells[i].Char)]; ok && input != "" {
			puzzle.SetInput(m.cells, i, rune(input[0]))
		}
	}

	if msg.session.Solved {
		m.state = StateSolved
		m.elapsedAtPause = msg.session.CompletionTime
		m.startTime = time.Time{}
		m.statusMsg = ""
		return m, nil
	}

	m.elapsedAtPause = msg.session.ElapsedTime
	m.startTime = time.Now()
	return m, tickCmd()
}

// formatErrorMessage turns transport errors into something a player can
// act on.
func formatErrorMessage(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") {
		return "Cannot connect to server. Check that the API is running."
	}
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Request timed out. Press 'r' to retry."
	}
	if strings.Contains(errStr, "server returned") {
		return errStr + " Press 'r' to retry."
	}
	return errStr
}
