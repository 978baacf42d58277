package app

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	zone "github.com/lrstanley/bubblezone"

	"github.com/bojanrajkovic/unquote/internal/puzzle"
	"github.com/bojanrajkovic/unquote/internal/ui"
)

// cellColumns is the rendered width of one grid cell: a glyph plus a
// separating space.
const cellColumns = 2

// View renders the current state. Output always passes through
// zone.Scan so click zones line up with what was actually drawn.
func (m Model) View() string {
	if m.IsTooSmall() {
		return zone.Scan(fmt.Sprintf(
			"Terminal too small.\nNeed at least %dx%d, have %dx%d.\nPress Esc to quit.",
			minWidth, minHeight, m.width, m.height,
		))
	}

	var view string
	switch m.state {
	case StateLoading:
		view = m.viewLoading()
	case StateOnboarding:
		view = m.viewOnboarding()
	case StateClaimCodeDisplay:
		view = m.viewClaimCode()
	case StatePlaying, StateChecking:
		view = m.viewPuzzle(false)
	case StateSolved:
		view = m.viewPuzzle(true)
	case StateError:
		view = m.viewError()
	case StateStats:
		view = m.viewStats()
	}
	return zone.Scan(view)
}

func (m Model) viewLoading() string {
	return ui.TitleStyle.Render("Unquote") + "\n\n" +
		ui.SubtleStyle.Render("Loading puzzle...")
}

func (m Model) viewOnboarding() string {
	if m.form == nil {
		return ""
	}
	return ui.TitleStyle.Render("Unquote") + "\n\n" + m.form.View()
}

func (m Model) viewClaimCode() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Your Claim Code") + "\n\n")
	b.WriteString(ui.ClaimCodeStyle.Render(m.claimCode) + "\n\n")
	b.WriteString("Save this code! It's the only way to access your\nstats from another device.\n\n")
	if m.statusMsg != "" {
		b.WriteString(ui.StatusStyle.Render(m.statusMsg) + "\n\n")
	}
	b.WriteString(ui.HelpStyle.Render("c: copy to clipboard • any other key: start playing"))
	return b.String()
}

func (m Model) viewError() string {
	return ui.ErrorStyle.Render("Something went wrong") + "\n\n" +
		m.errorMsg + "\n\n" +
		ui.HelpStyle.Render("r: retry • esc: quit")
}

func (m Model) viewPuzzle(solved bool) string {
	if m.puzzle == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Unquote") + "  " +
		ui.SubtleStyle.Render(m.puzzle.Date+" • difficulty "+fmt.Sprint(m.puzzle.Difficulty)) + "\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	if m.puzzle.Author != "" {
		b.WriteString(ui.SubtleStyle.Render("— "+m.puzzle.Author) + "\n")
	}
	b.WriteString("\n")

	switch {
	case solved:
		b.WriteString(ui.SolvedStyle.Render("Solved in "+formatDuration(m.elapsedAtPause)+"!") + "\n\n")
		if m.statusMsg != "" {
			b.WriteString(ui.StatusStyle.Render(m.statusMsg) + "\n\n")
		}
		help := "p: share card • esc: quit"
		if m.claimCode != "" {
			help = "s: stats • " + help
		}
		b.WriteString(ui.HelpStyle.Render(help))

	case m.state == StateChecking:
		b.WriteString(ui.SubtleStyle.Render("Time: "+formatDuration(m.Elapsed())) + "\n")
		b.WriteString(ui.SubtleStyle.Render("Checking..."))

	default:
		b.WriteString(ui.SubtleStyle.Render("Time: "+formatDuration(m.Elapsed())) + "\n")
		if m.statusMsg != "" {
			b.WriteString(ui.StatusStyle.Render(m.statusMsg) + "\n")
		}
		b.WriteString("\n" + ui.HelpStyle.Render(
			"type to guess • arrows: move • backspace: clear • enter: submit • ctrl+c: clear all • esc: quit"))
	}

	return b.String()
}

// renderGrid draws the puzzle as paired rows: the player's guesses
// above, the ciphertext below. Letter cells are click targets.
func (m Model) renderGrid() string {
	width := m.width
	if width <= 0 {
		width = minWidth
	}
	conflicts := puzzle.Conflicts(m.cells)

	var b strings.Builder
	for _, line := range puzzle.WrapCells(m.cells, width, cellColumns) {
		var inputRow, cipherRow strings.Builder
		for _, cell := range line {
			inputRow.WriteString(m.renderInputCell(cell, conflicts))
			cipherRow.WriteString(m.renderCipherCell(cell))
		}
		b.WriteString(inputRow.String() + "\n")
		b.WriteString(cipherRow.String() + "\n\n")
	}
	return b.String()
}

func (m Model) renderInputCell(cell puzzle.Cell, conflicts map[int]bool) string {
	glyph := " "
	style := ui.InputStyle

	switch cell.Kind {
	case puzzle.CellPunctuation:
		glyph = string(cell.Char)
		style = ui.SubtleStyle
	case puzzle.CellHint:
		glyph = string(cell.Input)
		style = ui.HintStyle
	case puzzle.CellLetter:
		if cell.Input != 0 {
			glyph = string(cell.Input)
		} else {
			glyph = "_"
		}
		if conflicts[cell.Index] {
			style = ui.ConflictStyle
		}
	}

	if cell.Index == m.cursorPos && m.state == StatePlaying {
		style = ui.CursorStyle
	}

	rendered := style.Render(glyph) + " "
	if cell.Kind == puzzle.CellLetter {
		return zone.Mark(fmt.Sprintf("cell-%d", cell.Index), rendered)
	}
	return rendered
}

func (m Model) renderCipherCell(cell puzzle.Cell) string {
	if cell.Kind == puzzle.CellPunctuation {
		return "  "
	}
	return ui.CipherStyle.Render(string(cell.Char)) + " "
}

func (m Model) viewStats() string {
	if m.stats == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Your Stats") + "\n\n")
	b.WriteString(fmt.Sprintf("Puzzles solved:  %d\n", m.stats.Solved))
	b.WriteString(fmt.Sprintf("Median time:     %s\n", formatSeconds(m.stats.MedianSeconds)))
	b.WriteString(fmt.Sprintf("Current streak:  %d day(s)\n", m.stats.CurrentStreak))

	if len(m.stats.RecentTimes) > 1 {
		data := make([]float64, len(m.stats.RecentTimes))
		for i, secs := range m.stats.RecentTimes {
			data[i] = float64(secs)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Caption("recent solve times (seconds)"),
		)
		b.WriteString("\n" + graph + "\n")
	}

	b.WriteString("\n")
	if m.statsOnly {
		b.WriteString(ui.HelpStyle.Render("esc: quit"))
	} else {
		b.WriteString(ui.HelpStyle.Render("b/esc: back"))
	}
	return b.String()
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
