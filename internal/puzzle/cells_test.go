package puzzle

import "testing"

func TestBuildCellsKinds(t *testing.T) {
	cells := BuildCells("AB, C!", map[rune]rune{'C': 'E'})

	wantKinds := []CellKind{CellLetter, CellLetter, CellPunctuation, CellPunctuation, CellHint, CellPunctuation}
	if len(cells) != len(wantKinds) {
		t.Fatalf("got %d cells, want %d", len(cells), len(wantKinds))
	}
	for i, k := range wantKinds {
		if cells[i].Kind != k {
			t.Errorf("cell %d: kind = %v, want %v", i, cells[i].Kind, k)
		}
		if cells[i].Index != i {
			t.Errorf("cell %d: index = %d", i, cells[i].Index)
		}
	}
	if cells[4].Input != 'E' {
		t.Errorf("hint cell input = %q, want 'E'", cells[4].Input)
	}
}

func TestSetInputPropagates(t *testing.T) {
	// Typing into one H must fill both H cells.
	cells := BuildCells("BLHHK", nil)

	if !SetInput(cells, 2, 'L') {
		t.Fatal("SetInput returned false for a letter cell")
	}
	if cells[2].Input != 'L' || cells[3].Input != 'L' {
		t.Errorf("linked cells = %q, %q, want both 'L'", cells[2].Input, cells[3].Input)
	}
	if cells[0].Input != 0 || cells[1].Input != 0 || cells[4].Input != 0 {
		t.Error("unrelated cells were filled")
	}
}

func TestSetInputRejectsHintAndPunctuation(t *testing.T) {
	cells := BuildCells("ABA B", map[rune]rune{'A': 'X'})

	if SetInput(cells, 0, 'Q') {
		t.Error("SetInput accepted a hint cell")
	}
	if cells[0].Input != 'X' || cells[2].Input != 'X' {
		t.Error("hint cells were overwritten")
	}
	if SetInput(cells, 3, 'Q') {
		t.Error("SetInput accepted a punctuation cell")
	}
	if SetInput(cells, -1, 'Q') || SetInput(cells, 99, 'Q') {
		t.Error("SetInput accepted an out-of-range index")
	}
}

func TestClearInputPropagates(t *testing.T) {
	cells := BuildCells("BLHHK", nil)
	SetInput(cells, 2, 'L')

	if !ClearInput(cells, 3) {
		t.Fatal("ClearInput returned false")
	}
	if cells[2].Input != 0 || cells[3].Input != 0 {
		t.Error("linked cells were not both cleared")
	}
}

func TestClearAllInputKeepsHints(t *testing.T) {
	cells := BuildCells("ABA", map[rune]rune{'A': 'X'})
	SetInput(cells, 1, 'Q')

	ClearAllInput(cells)

	if cells[1].Input != 0 {
		t.Error("letter cell not cleared")
	}
	if cells[0].Input != 'X' || cells[2].Input != 'X' {
		t.Error("hint cells lost their letters")
	}
}

func TestIsComplete(t *testing.T) {
	cells := BuildCells("AB C", map[rune]rune{'C': 'E'})
	if IsComplete(cells) {
		t.Error("empty grid reported complete")
	}

	SetInput(cells, 0, 'H')
	if IsComplete(cells) {
		t.Error("partial grid reported complete")
	}

	SetInput(cells, 1, 'I')
	if !IsComplete(cells) {
		t.Error("full grid reported incomplete")
	}
}

func TestAssembleSolution(t *testing.T) {
	cells := BuildCells("AB, C!", map[rune]rune{'C': 'E'})
	SetInput(cells, 0, 'H')

	if got := AssembleSolution(cells); got != "H_, E!" {
		t.Errorf("partial assembly = %q, want %q", got, "H_, E!")
	}

	SetInput(cells, 1, 'I')
	if got := AssembleSolution(cells); got != "HI, E!" {
		t.Errorf("full assembly = %q, want %q", got, "HI, E!")
	}
}

func TestConflicts(t *testing.T) {
	cells := BuildCells("AB", nil)
	SetInput(cells, 0, 'Q')
	SetInput(cells, 1, 'Q')

	got := Conflicts(cells)
	if !got[0] || !got[1] {
		t.Errorf("conflicts = %v, want cells 0 and 1 flagged", got)
	}

	SetInput(cells, 1, 'R')
	if got := Conflicts(cells); len(got) != 0 {
		t.Errorf("conflicts after fix = %v, want none", got)
	}
}

func TestConflictsAgainstHint(t *testing.T) {
	// Guessing the same plaintext a hint already claims is a conflict,
	// but only the guessed cell is flagged; hints are immutable.
	cells := BuildCells("AB", map[rune]rune{'A': 'X'})
	SetInput(cells, 1, 'X')

	got := Conflicts(cells)
	if got[0] {
		t.Error("hint cell flagged as conflict")
	}
	if !got[1] {
		t.Error("duplicate guess against hint not flagged")
	}
}
