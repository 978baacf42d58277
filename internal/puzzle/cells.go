// Package puzzle models the in-terminal puzzle grid: one cell per rune
// of ciphertext, with the linked-substitution rule that typing a letter
// fills every cell sharing that cipher letter.
package puzzle

import "strings"

// CellKind classifies what a grid cell holds.
type CellKind int

const (
	// CellPunctuation passes through unchanged and takes no input.
	CellPunctuation CellKind = iota
	// CellLetter is an enciphered letter awaiting a guess.
	CellLetter
	// CellHint is a pre-revealed letter. Its input is fixed.
	CellHint
)

// Cell is a single position in the puzzle grid.
type Cell struct {
	Index int
	Char  rune // the ciphertext rune at this position
	Input rune // the player's guess, 0 when empty
	Kind  CellKind
}

// BuildCells turns ciphertext into a grid. hints maps cipher letters to
// their revealed plaintext; every occurrence of a hinted cipher letter
// becomes a CellHint with the plain letter pre-filled.
func BuildCells(ciphertext string, hints map[rune]rune) []Cell {
	cells := make([]Cell, 0, len(ciphertext))
	for i, r := range []rune(ciphertext) {
		cell := Cell{Index: i, Char: r, Kind: CellPunctuation}
		if r >= 'A' && r <= 'Z' {
			if plain, ok := hints[r]; ok {
				cell.Kind = CellHint
				cell.Input = plain
			} else {
				cell.Kind = CellLetter
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// SetInput records a guess at pos and propagates it to every letter cell
// with the same cipher character. Hint and punctuation cells reject
// input. Returns whether anything changed.
func SetInput(cells []Cell, pos int, letter rune) bool {
	if pos < 0 || pos >= len(cells) || cells[pos].Kind != CellLetter {
		return false
	}
	target := cells[pos].Char
	for i := range cells {
		if cells[i].Kind == CellLetter && cells[i].Char == target {
			cells[i].Input = letter
		}
	}
	return true
}

// ClearInput erases the guess at pos and at every linked cell.
func ClearInput(cells []Cell, pos int) bool {
	if pos < 0 || pos >= len(cells) || cells[pos].Kind != CellLetter {
		return false
	}
	target := cells[pos].Char
	for i := range cells {
		if cells[i].Kind == CellLetter && cells[i].Char == target {
			cells[i].Input = 0
		}
	}
	return true
}

// ClearAllInput erases every guess. Hints stay.
func ClearAllInput(cells []Cell) {
	for i := range cells {
		if cells[i].Kind == CellLetter {
			cells[i].Input = 0
		}
	}
}

// IsComplete reports whether every letter cell has a guess.
func IsComplete(cells []Cell) bool {
	for _, c := range cells {
		if c.Kind == CellLetter && c.Input == 0 {
			return false
		}
	}
	return true
}

// AssembleSolution flattens the grid into a candidate plaintext.
// Unfilled letter cells render as '_' so a premature assembly is
// visibly incomplete rather than silently wrong.
func AssembleSolution(cells []Cell) string {
	var b strings.Builder
	b.Grow(len(cells))
	for _, c := range cells {
		switch c.Kind {
		case CellPunctuation:
			b.WriteRune(c.Char)
		case CellHint:
			b.WriteRune(c.Input)
		case CellLetter:
			if c.Input == 0 {
				b.WriteRune('_')
			} else {
				b.WriteRune(c.Input)
			}
		}
	}
	return b.String()
}

// Conflicts reports cell indexes where two different cipher letters have
// been given the same plaintext guess. The mapping is a bijection, so a
// duplicate guess is always wrong somewhere.
func Conflicts(cells []Cell) map[int]bool {
	byInput := make(map[rune]map[rune]bool) // guess -> set of cipher letters
	for _, c := range cells {
		if c.Input == 0 {
			continue
		}
		if c.Kind == CellLetter || c.Kind == CellHint {
			set := byInput[c.Input]
			if set == nil {
				set = make(map[rune]bool)
				byInput[c.Input] = set
			}
			set[c.Char] = true
		}
	}

	conflicts := make(map[int]bool)
	for _, c := range cells {
		if c.Kind != CellLetter || c.Input == 0 {
			continue
		}
		if len(byInput[c.Input]) > 1 {
			conflicts[c.Index] = true
		}
	}
	return conflicts
}
