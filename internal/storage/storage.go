// Package storage persists per-puzzle game sessions to the XDG data
// directory, one JSON file per game id. Sessions survive restarts so a
// half-finished puzzle picks up where it left off, and solved sessions
// that never reached the server are kept for later upload.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

const sessionsRelDir = "unquote/sessions"

// wireVersion guards the on-disk schema. Files with a different
// version are discarded rather than misread.
const wireVersion = 1

// GameSession is the in-memory view of one puzzle's saved state.
// Inputs maps cipher letters to the player's guesses; keys and values
// are single-letter strings so the JSON stays human-readable.
type GameSession struct {
	GameID         string
	Inputs         map[string]string
	ElapsedTime    time.Duration
	Solved         bool
	CompletionTime time.Duration
	Uploaded       bool
	SavedAt        time.Time
}

// sessionWire is the on-disk form. Durations become integer seconds:
// sub-second solve-time precision is noise, and plain integers keep the
// files greppable.
type sessionWire struct {
	Version           int               `json:"version"`
	GameID            string            `json:"game_id"`
	Inputs            map[string]string `json:"inputs,omitempty"`
	ElapsedSeconds    int64             `json:"elapsed_seconds"`
	Solved            bool              `json:"solved"`
	CompletionSeconds int64             `json:"completion_seconds,omitempty"`
	Uploaded          bool              `json:"uploaded,omitempty"`
	SavedAt           time.Time         `json:"saved_at"`
}

func (s *GameSession) toWire() sessionWire {
	return sessionWire{
		Version:           wireVersion,
		GameID:            s.GameID,
		Inputs:            s.Inputs,
		ElapsedSeconds:    int64(s.ElapsedTime / time.Second),
		Solved:            s.Solved,
		CompletionSeconds: int64(s.CompletionTime / time.Second),
		Uploaded:          s.Uploaded,
		SavedAt:           s.SavedAt,
	}
}

func (w sessionWire) toSession() *GameSession {
	return &GameSession{
		GameID:         w.GameID,
		Inputs:         w.Inputs,
		ElapsedTime:    time.Duration(w.ElapsedSeconds) * time.Second,
		Solved:         w.Solved,
		CompletionTime: time.Duration(w.CompletionSeconds) * time.Second,
		Uploaded:       w.Uploaded,
		SavedAt:        w.SavedAt,
	}
}

func sessionPath(gameID string) (string, error) {
	if gameID == "" || strings.ContainsAny(gameID, "/\\.") {
		return "", fmt.Errorf("storage: invalid game id %q", gameID)
	}
	return xdg.DataFile(filepath.Join(sessionsRelDir, gameID+".json"))
}

// Load reads the saved session for gameID. A missing file returns
// (nil, nil). A corrupt or wrong-version file is deleted and also
// returns (nil, nil): stale state should never block a fresh game.
func Load(gameID string) (*GameSession, error) {
	path, err := sessionPath(gameID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: reading session: %w", err)
	}

	var w sessionWire
	if err := json.Unmarshal(data, &w); err != nil || w.Version != wireVersion {
		os.Remove(path)
		return nil, nil
	}
	return w.toSession(), nil
}

// Save writes the session, stamping SavedAt.
func Save(s *GameSession) error {
	path, err := sessionPath(s.GameID)
	if err != nil {
		return err
	}
	s.SavedAt = time.Now().UTC()

	data, err := json.MarshalIndent(s.toWire(), "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encoding session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".session-*.json")
	if err != nil {
		return fmt.Errorf("storage: creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: replacing session: %w", err)
	}
	return nil
}

// MarkUploaded flags a solved session as recorded server-side. A
// session that no longer exists on disk is not an error.
func MarkUploaded(gameID string) error {
	s, err := Load(gameID)
	if err != nil {
		return err
	}
	if s == nil {
		return nil
	}
	s.Uploaded = true
	return Save(s)
}

// PendingUploads returns solved sessions that were never recorded
// server-side, oldest first. Used to reconcile offline solves once a
// claim code exists.
func PendingUploads() ([]*GameSession, error) {
	dir := filepath.Join(xdg.DataHome, sessionsRelDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: listing sessions: %w", err)
	}

	var pending []*GameSession
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		s, err := Load(strings.TrimSuffix(name, ".json"))
		if err != nil || s == nil {
			continue
		}
		if s.Solved && !s.Uploaded {
			pending = append(pending, s)
		}
	}

	for i := 1; i < len(pending); i++ {
		for j := i; j > 0 && pending[j].SavedAt.Before(pending[j-1].SavedAt); j-- {
			pending[j], pending[j-1] = pending[j-1], pending[j]
		}
	}
	return pending, nil
}
