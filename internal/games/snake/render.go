package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

const (
	hudHeight = 2 // score line and status line
	tileWidth = 2 // terminal cells are roughly twice as tall as wide
)

// RequiredSize returns the smallest screen that fits the HUD and the
// bordered board for grid g.
func RequiredSize(g Grid) (w, h int) {
	return g.Width*tileWidth + 2, g.Height + 2 + hudHeight
}

// Render draws snap into dst. It only reads the snapshot.
func Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	reqW, reqH := RequiredSize(snap.Grid)
	if dst.Width() < reqW || dst.Height() < reqH {
		renderTooSmall(dst, reqW, reqH)
		return
	}

	board := core.NewRect((dst.Width()-reqW)/2, hudHeight, reqW, snap.Grid.Height+2)
	renderHUD(snap, dst, board)

	frame := core.ColorGray
	if snap.Ghost {
		frame = core.ColorLightBlue
	}
	dst.DrawBox(board, frame)

	origin := core.Point{X: board.X + 1, Y: board.Y + 1}
	tile := func(p Position, glyph string, c core.Color) {
		if !snap.Grid.InBounds(p) {
			return
		}
		dst.DrawText(origin.X+p.X*tileWidth, origin.Y+p.Y, glyph, c)
	}

	for _, o := range snap.Obstacles {
		tile(o, "▓▓", core.ColorDarkGray)
	}
	if snap.Food != nil {
		glyph, c := foodGlyph(snap.Food.Kind)
		tile(snap.Food.Pos, glyph, c)
	}
	// Tail first so the head stays visible after a self collision.
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph, c := segmentGlyph(i == 0, snap.Ghost)
		tile(snap.Snake[i], glyph, c)
	}

	switch snap.Overlay {
	case OverlayReady:
		renderOverlay(dst, board, core.ColorBrightGreen, "SNAKE", "Press Enter to start")
	case OverlayPaused:
		renderOverlay(dst, board, core.ColorYellow, "Paused", "Press P to resume")
	case OverlayGameOver:
		renderOverlay(dst, board, core.ColorRed, "Game Over",
			fmt.Sprintf("Final Score: %d", snap.Score), "Press Enter to restart")
	}
}

func renderHUD(snap Snapshot, dst *core.Screen, board core.Rect) {
	left := fmt.Sprintf("Score: %d", snap.Score)
	right := fmt.Sprintf("High: %d", snap.HighScore)
	dst.DrawText(board.X, 0, left, core.ColorDefault)
	dst.DrawText(board.Right()-len(right), 0, right, core.ColorYellow)

	if snap.Status != "" {
		c := core.ColorCyan
		if snap.Ghost {
			c = core.ColorLightBlue
		}
		dst.DrawTextCentered(core.NewRect(board.X, 1, board.W, 1), 1, snap.Status, c)
	}
}

func renderOverlay(dst *core.Screen, board core.Rect, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := board.Centered(width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box, box.Y+1+i, l, color)
	}
}

func renderTooSmall(dst *core.Screen, reqW, reqH int) {
	bounds := dst.Bounds()
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(bounds, y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(bounds, y+1, fmt.Sprintf("Need %dx%d, have %dx%d", reqW, reqH, dst.Width(), dst.Height()), core.ColorDefault)
}

func foodGlyph(k FoodKind) (string, core.Color) {
	switch k {
	case FoodBonus:
		return "$$", core.ColorYellow
	case FoodGhost:
		return "??", core.ColorLightBlue
	case FoodSlow:
		return "~~", core.ColorMagenta
	default:
		return "()", core.ColorRed
	}
}

func segmentGlyph(head, ghost bool) (string, core.Color) {
	switch {
	case head && ghost:
		return "██", core.ColorBrightCyan
	case head:
		return "██", core.ColorBrightGreen
	case ghost:
		return "▒▒", core.ColorCyan
	default:
		return "▒▒", core.ColorGreen
	}
}
