package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadMissingReturnsNil(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() with no file = %+v, want nil", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	isolateConfig(t)

	want := &Config{ClaimCode: "TIGER-MAPLE-7492", StatsEnabled: true}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil after Save()")
	}
	if got.ClaimCode != want.ClaimCode || got.StatsEnabled != want.StatsEnabled {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadCorruptReturnsNil(t *testing.T) {
	dir := isolateConfig(t)

	path := filepath.Join(dir, "unquote", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() with corrupt file = %+v, want nil", cfg)
	}
}

func TestSaveOverwrites(t *testing.T) {
	isolateConfig(t)

	if err := Save(&Config{StatsEnabled: false}); err != nil {
		t.Fatal(err)
	}
	if err := Save(&Config{ClaimCode: "OTTER-BIRCH-0001", StatsEnabled: true}); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.ClaimCode != "OTTER-BIRCH-0001" {
		t.Errorf("ClaimCode = %q after overwrite", got.ClaimCode)
	}
}
