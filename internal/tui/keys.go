package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

var arrowNames = map[tcell.Key]string{
	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyRight: "ArrowRight",
}

// KeyDirection maps an arrow or WASD key event to a direction.
func KeyDirection(ev *tcell.EventKey) (game.Direction, bool) {
	if name, ok := arrowNames[ev.Key()]; ok {
		return game.DirectionForKey(name)
	}
	if ev.Key() == tcell.KeyRune {
		return game.DirectionForKey(string(ev.Rune()))
	}
	return 0, false
}

// IsQuit reports whether ev asks to leave the game.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
