package puzzle

// Cursor movement only ever lands on CellLetter cells: hints and
// punctuation are skipped. All functions return -1 when there is no
// such cell in the requested direction.

// FirstLetterCell returns the index of the first letter cell.
func FirstLetterCell(cells []Cell) int {
	for i := range cells {
		if cells[i].Kind == CellLetter {
			return i
		}
	}
	return -1
}

// LastLetterCell returns the index of the last letter cell.
func LastLetterCell(cells []Cell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].Kind == CellLetter {
			return i
		}
	}
	return -1
}

// NextLetterCell returns the first letter cell strictly after pos.
func NextLetterCell(cells []Cell, pos int) int {
	for i := pos + 1; i < len(cells); i++ {
		if cells[i].Kind == CellLetter {
			return i
		}
	}
	return -1
}

// PrevLetterCell returns the last letter cell strictly before pos.
func PrevLetterCell(cells []Cell, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if cells[i].Kind == CellLetter {
			return i
		}
	}
	return -1
}

// NextUnfilledLetterCell finds the next empty letter cell after pos,
// wrapping to the start of the grid before giving up. With the grid
// full it returns -1 and the cursor stays put.
func NextUnfilledLetterCell(cells []Cell, pos int) int {
	for i := pos + 1; i < len(cells); i++ {
		if cells[i].Kind == CellLetter && cells[i].Input == 0 {
			return i
		}
	}
	for i := 0; i <= pos && i < len(cells); i++ {
		if cells[i].Kind == CellLetter && cells[i].Input == 0 {
			return i
		}
	}
	return -1
}
