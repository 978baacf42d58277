package puzzle

// WrapCells splits the grid into lines of at most width columns without
// breaking words, where each cell renders cellWidth columns wide. A
// word longer than the line is split hard rather than dropped. Leading
// spaces on a wrapped line are discarded so continuation lines stay
// flush left.
func WrapCells(cells []Cell, width, cellWidth int) [][]Cell {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	perLine := width / cellWidth
	if perLine < 1 {
		perLine = 1
	}

	var (
		lines [][]Cell
		line  []Cell
	)
	flush := func() {
		for len(line) > 0 && line[len(line)-1].Char == ' ' {
			line = line[:len(line)-1]
		}
		if len(line) > 0 {
			lines = append(lines, line)
		}
		line = nil
	}

	for _, word := range splitWords(cells) {
		if len(line)+len(word) > perLine && len(line) > 0 {
			flush()
		}
		// Drop the space a line would otherwise start with.
		if len(line) == 0 && len(word) == 1 && word[0].Char == ' ' {
			continue
		}
		for len(word) > perLine {
			flush()
			lines = append(lines, word[:perLine])
			word = word[perLine:]
		}
		line = append(line, word...)
	}
	flush()
	return lines
}

// splitWords chunks cells into runs: each run is either a single space
// or a maximal stretch of non-space cells.
func splitWords(cells []Cell) [][]Cell {
	var (
		words []([]Cell)
		word  []Cell
	)
	for _, c := range cells {
		if c.Char == ' ' {
			if len(word) > 0 {
				words = append(words, word)
				word = nil
			}
			words = append(words, []Cell{c})
			continue
		}
		word = append(word, c)
	}
	if len(word) > 0 {
		words = append(words, word)
	}
	return words
}
