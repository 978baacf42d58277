package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func isolateData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadMissingReturnsNil(t *testing.T) {
	isolateData(t)

	s, err := Load("AbC123xy")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s != nil {
		t.Errorf("Load() with no file = %+v, want nil", s)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	isolateData(t)

	want := &GameSession{
		GameID:      "AbC123xy",
		Inputs:      map[string]string{"X": "Y", "M": "O"},
		ElapsedTime: 95 * time.Second,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load("AbC123xy")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil after Save()")
	}
	if got.GameID != want.GameID {
		t.Errorf("GameID = %q, want %q", got.GameID, want.GameID)
	}
	if got.ElapsedTime != 95*time.Second {
		t.Errorf("ElapsedTime = %v, want 95s", got.ElapsedTime)
	}
	if got.Inputs["X"] != "Y" || got.Inputs["M"] != "O" {
		t.Errorf("Inputs = %v", got.Inputs)
	}
	if got.SavedAt.IsZero() {
		t.Error("SavedAt not stamped")
	}
}

func TestLoadDeletesCorruptFile(t *testing.T) {
	dir := isolateData(t)

	path := filepath.Join(dir, "unquote", "sessions", "AbC123xy.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("AbC123xy")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s != nil {
		t.Errorf("Load() on corrupt file = %+v, want nil", s)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt session file was not deleted")
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	dir := isolateData(t)

	path := filepath.Join(dir, "unquote", "sessions", "AbC123xy.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"version":99,"game_id":"AbC123xy"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("AbC123xy")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s != nil {
		t.Errorf("Load() on future version = %+v, want nil", s)
	}
}

func TestSessionPathRejectsTraversal(t *testing.T) {
	isolateData(t)

	for _, id := range []string{"", "../etc/passwd", "a/b", `a\b`, "a.b"} {
		if _, err := Load(id); err == nil {
			t.Errorf("Load(%q) accepted an unsafe game id", id)
		}
	}
}

func TestMarkUploaded(t *testing.T) {
	isolateData(t)

	s := &GameSession{GameID: "AbC123xy", Solved: true, CompletionTime: time.Minute}
	if err := Save(s); err != nil {
		t.Fatal(err)
	}

	if err := MarkUploaded("AbC123xy"); err != nil {
		t.Fatalf("MarkUploaded() error: %v", err)
	}

	got, err := Load("AbC123xy")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Uploaded {
		t.Error("session not marked uploaded")
	}

	// Missing session is a no-op, not an error.
	if err := MarkUploaded("ZzZzZzZz"); err != nil {
		t.Errorf("MarkUploaded() on missing session: %v", err)
	}
}

func TestPendingUploads(t *testing.T) {
	isolateData(t)

	sessions := []*GameSession{
		{GameID: "solved01", Solved: true, CompletionTime: time.Minute},
		{GameID: "solved02", Solved: true, Uploaded: true},
		{GameID: "progress", Solved: false},
	}
	for _, s := range sessions {
		if err := Save(s); err != nil {
			t.Fatal(err)
		}
	}

	pending, err := PendingUploads()
	if err != nil {
		t.Fatalf("PendingUploads() error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending sessions, want 1", len(pending))
	}
	if pending[0].GameID != "solved01" {
		t.Errorf("pending session = %q, want solved01", pending[0].GameID)
	}
}

func TestPendingUploadsEmptyDir(t *testing.T) {
	isolateData(t)

	pending, err := PendingUploads()
	if err != nil {
		t.Fatalf("PendingUploads() error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("got %d pending sessions from empty dir", len(pending))
	}
}
