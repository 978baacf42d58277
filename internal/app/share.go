package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/bojanrajkovic/unquote/internal/api"
)

const (
	cardWidth  = 640
	cardHeight = 360
)

// saveShareCardCmd renders a PNG the player can post: game date,
// difficulty, and solve time, no spoilers.
func saveShareCardCmd(p *api.Puzzle, solveTime time.Duration) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("unquote-%s.png", p.ID)
		if err := renderShareCard(path, p, solveTime); err != nil {
			return shareCardSavedMsg{err: err}
		}
		return shareCardSavedMsg{path: path}
	}
}

func renderShareCard(path string, p *api.Puzzle, solveTime time.Duration) error {
	dc := gg.NewContext(cardWidth, cardHeight)

	dc.SetHexColor("#1a1b26")
	dc.Clear()

	dc.SetHexColor("#7aa2f7")
	dc.DrawRoundedRectangle(16, 16, cardWidth-32, cardHeight-32, 12)
	dc.SetLineWidth(3)
	dc.Stroke()

	// basicfont scales poorly, so headline text is drawn at 1x and the
	// layout leans on spacing instead of type size.
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetHexColor("#c0caf5")
	dc.DrawStringAnchored("UNQUOTE", cardWidth/2, 80, 0.5, 0.5)

	dc.SetHexColor("#7aa2f7")
	dc.DrawStringAnchored("Daily Cryptoquip "+p.Date, cardWidth/2, 130, 0.5, 0.5)

	dc.SetHexColor("#9ece6a")
	dc.DrawStringAnchored("Solved!", cardWidth/2, 180, 0.5, 0.5)

	dc.SetHexColor("#c0caf5")
	dc.DrawStringAnchored(fmt.Sprintf("Time: %s", formatDuration(solveTime)), cardWidth/2, 220, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("Difficulty: %d/100", p.Difficulty), cardWidth/2, 250, 0.5, 0.5)

	dc.SetHexColor("#565f89")
	dc.DrawStringAnchored("Game "+p.ID, cardWidth/2, cardHeight-60, 0.5, 0.5)

	return dc.SavePNG(path)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
