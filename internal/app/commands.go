package app

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bojanrajkovic/unquote/internal/api"
	"github.com/bojanrajkovic/unquote/internal/config"
	"github.com/bojanrajkovic/unquote/internal/puzzle"
	"github.com/bojanrajkovic/unquote/internal/storage"
)

// Commands run off the update loop and report back as messages. Each
// gets its own deadline; the UI is never blocked on I/O.

const cmdTimeout = api.DefaultTimeout

func fetchPuzzleCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		p, err := client.TodayPuzzle(ctx)
		if err != nil {
			return errMsg{err}
		}
		return puzzleFetchedMsg{puzzle: p}
	}
}

func fetchRandomPuzzleCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		p, err := client.RandomPuzzle(ctx)
		if err != nil {
			return errMsg{err}
		}
		return puzzleFetchedMsg{puzzle: p}
	}
}

func checkSolutionCmd(client *api.Client, gameID, solution string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		res, err := client.CheckSolution(ctx, gameID, api.CheckRequest{Solution: solution})
		if err != nil {
			return errMsg{err}
		}
		return solutionCheckedMsg{correct: res.Correct, alreadyRecorded: res.AlreadyRecorded}
	}
}

func registerPlayerCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		code, err := client.RegisterPlayer(ctx)
		if err != nil {
			return errMsg{err}
		}
		return playerRegisteredMsg{claimCode: code}
	}
}

func fetchStatsCmd(client *api.Client, claimCode string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		stats, err := client.Stats(ctx, claimCode)
		if err != nil {
			return errMsg{err}
		}
		return statsFetchedMsg{stats: stats}
	}
}

func loadConfigCmd() tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			return errMsg{err}
		}
		return configLoadedMsg{config: cfg}
	}
}

func saveConfigCmd(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			return errMsg{err}
		}
		return configSavedMsg{}
	}
}

func loadSessionCmd(gameID string) tea.Cmd {
	return func() tea.Msg {
		session, err := storage.Load(gameID)
		if err != nil {
			// A broken local session should not stop the game; play fresh.
			return sessionLoadedMsg{session: nil}
		}
		return sessionLoadedMsg{session: session}
	}
}

// saveSessionCmd snapshots in-progress state. The cipher->guess pairs
// are captured synchronously, before bubbletea can deliver another key.
func saveSessionCmd(gameID string, cells []puzzle.Cell, elapsed time.Duration) tea.Cmd {
	inputs := collectInputs(cells)
	return func() tea.Msg {
		session := &storage.GameSession{
			GameID:      gameID,
			Inputs:      inputs,
			ElapsedTime: elapsed,
		}
		if err := storage.Save(session); err != nil {
			return errMsg{err}
		}
		return sessionSavedMsg{}
	}
}

func saveSolvedSessionCmd(gameID string, cells []puzzle.Cell, completionTime time.Duration) tea.Cmd {
	inputs := collectInputs(cells)
	return func() tea.Msg {
		session := &storage.GameSession{
			GameID:         gameID,
			Inputs:         inputs,
			ElapsedTime:    completionTime,
			Solved:         true,
			CompletionTime: completionTime,
		}
		if err := storage.Save(session); err != nil {
			return errMsg{err}
		}
		return sessionSavedMsg{}
	}
}

// recordSessionCmd re-submits the winning solution with the claim code
// attached so the server writes the session row. Best effort: the solve
// already happened locally, and reconciliation retries later if this
// fails.
func recordSessionCmd(client *api.Client, claimCode, gameID, solution string, completionTime time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
		defer cancel()
		res, err := client.CheckSolution(ctx, gameID, api.CheckRequest{
			Solution:       solution,
			ClaimCode:      claimCode,
			CompletionTime: int(completionTime / time.Second),
		})
		if err != nil || !res.Correct {
			return sessionRecordFailedMsg{}
		}
		return sessionRecordedMsg{gameID: gameID}
	}
}

func markSessionUploadedCmd(gameID string) tea.Cmd {
	return func() tea.Msg {
		_ = storage.MarkUploaded(gameID)
		return sessionUploadMarkedMsg{}
	}
}

// reconcileSessionsCmd uploads solved sessions that never reached the
// server. Failures leave the session pending for the next run.
func reconcileSessionsCmd(client *api.Client, claimCode string) tea.Cmd {
	return func() tea.Msg {
		pending, err := storage.PendingUploads()
		if err != nil {
			return reconciliationDoneMsg{}
		}

		var uploaded int
		for _, s := range pending {
			solution, err := reassembleSolution(client, s)
			if err != nil {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
			res, err := client.CheckSolution(ctx, s.GameID, api.CheckRequest{
				Solution:       solution,
				ClaimCode:      claimCode,
				CompletionTime: int(s.CompletionTime / time.Second),
			})
			cancel()
			if err != nil || !res.Correct {
				continue
			}
			if storage.MarkUploaded(s.GameID) == nil {
				uploaded++
			}
		}
		return reconciliationDoneMsg{uploaded: uploaded}
	}
}

// reassembleSolution rebuilds the plaintext for a saved session. Only
// the cipher->guess map is stored locally, so the ciphertext comes back
// from the server first.
func reassembleSolution(client *api.Client, s *storage.GameSession) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	p, err := client.PuzzleFor(ctx, s.GameID)
	if err != nil {
		return "", err
	}

	hints := hintMap(p.Hints)
	cells := puzzle.BuildCells(p.EncryptedText, hints)
	for i := range cells {
		if cells[i].Kind != puzzle.CellLetter {
			continue
		}
		if guess, ok := s.Inputs[string(cells[i].Char)]; ok && guess != "" {
			puzzle.SetInput(cells, i, rune(guess[0]))
		}
	}
	return puzzle.AssembleSolution(cells), nil
}

// hintMap converts wire hints to the cipher->plain rune map BuildCells
// wants.
func hintMap(hints []api.Hint) map[rune]rune {
	if len(hints) == 0 {
		return nil
	}
	m := make(map[rune]rune, len(hints))
	for _, h := range hints {
		if h.CipherLetter != "" && h.PlainLetter != "" {
			m[rune(h.CipherLetter[0])] = rune(h.PlainLetter[0])
		}
	}
	return m
}

func copyClaimCodeCmd(code string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(code)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func collectInputs(cells []puzzle.Cell) map[string]string {
	inputs := make(map[string]string)
	for _, c := range cells {
		if c.Kind == puzzle.CellLetter && c.Input != 0 {
			inputs[string(c.Char)] = string(c.Input)
		}
	}
	return inputs
}
