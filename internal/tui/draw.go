package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

// cellCols is how many terminal columns one maze cell takes; terminal
// glyphs are roughly twice as tall as they are wide.
const cellCols = 2

var (
	pathStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	wallStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	playerStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0xff, 0x33, 0x33)).Bold(true)
	goalStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(0x00, 0xcc, 0x44)).Bold(true)
	statusStyle = tcell.StyleDefault
	bannerStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
)

const (
	playerGlyph = '@'
	goalGlyph   = '*'
)

// Draw renders v at the top-left of screen with a status line underneath.
// It does not call Show.
func Draw(screen tcell.Screen, v game.View) {
	screen.Clear()
	n := v.Grid.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			st := pathStyle
			if v.Grid.CellKind(row, col) == game.Wall {
				st = wallStyle
			}
			for i := 0; i < cellCols; i++ {
				screen.SetContent(col*cellCols+i, row, ' ', nil, st)
			}
		}
	}

	gr, gc := v.Grid.WorldToCell(v.Goal.X, v.Goal.Y)
	putGlyph(screen, gr, gc, goalGlyph, goalStyle)
	pr, pc := v.Grid.WorldToCell(v.Player.X, v.Player.Y)
	putGlyph(screen, pr, pc, playerGlyph, playerStyle)

	status := "arrows/WASD move  q quit"
	if v.Attempts > 0 {
		status = fmt.Sprintf("Attempts: %d  %s", v.Attempts, status)
	}
	putString(screen, 0, n, status, statusStyle)

	if v.Won {
		width := n * cellCols
		putCentered(screen, width, n/2-1, " You Won! ", bannerStyle)
		putCentered(screen, width, n/2, " Opening your letter... ", bannerStyle)
	}
}

func putGlyph(screen tcell.Screen, row, col int, r rune, st tcell.Style) {
	screen.SetContent(col*cellCols, row, r, nil, st)
}

func putString(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func putCentered(screen tcell.Screen, width, y int, s string, st tcell.Style) {
	x := (width - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	putString(screen, x, y, s, st)
}
