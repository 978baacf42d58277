package puzzle

import (
	"strings"
	"testing"
)

func lineText(line []Cell) string {
	var b strings.Builder
	for _, c := range line {
		b.WriteRune(c.Char)
	}
	return b.String()
}

func TestWrapCellsKeepsWordsIntact(t *testing.T) {
	cells := BuildCells("HELLO CRUEL WORLD", nil)

	lines := WrapCells(cells, 11, 1)
	want := []string{"HELLO CRUEL", "WORLD"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, w := range want {
		if got := lineText(lines[i]); got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestWrapCellsStripsLeadingSpace(t *testing.T) {
	cells := BuildCells("AA BB CC", nil)

	for _, line := range WrapCells(cells, 5, 1) {
		if text := lineText(line); strings.HasPrefix(text, " ") {
			t.Errorf("line %q starts with a space", text)
		}
	}
}

func TestWrapCellsSplitsOversizeWord(t *testing.T) {
	cells := BuildCells("ABCDEFGHIJ", nil)

	lines := WrapCells(cells, 4, 1)
	var total int
	for _, line := range lines {
		if len(line) > 4 {
			t.Errorf("line %q exceeds width", lineText(line))
		}
		total += len(line)
	}
	if total != len(cells) {
		t.Errorf("wrapped %d cells, want %d", total, len(cells))
	}
}

func TestWrapCellsHonorsCellWidth(t *testing.T) {
	cells := BuildCells("AB CD", nil)

	// Each cell takes 3 columns; a 9-column terminal fits 3 cells.
	lines := WrapCells(cells, 9, 3)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if got := lineText(lines[0]); got != "AB" {
		t.Errorf("line 0 = %q, want %q", got, "AB")
	}
	if got := lineText(lines[1]); got != "CD" {
		t.Errorf("line 1 = %q, want %q", got, "CD")
	}
}

func TestWrapCellsNarrowTerminal(t *testing.T) {
	cells := BuildCells("AB", nil)

	// Width below one cell still yields one cell per line, never zero.
	lines := WrapCells(cells, 1, 3)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}
