package game

import "strings"

// Direction is one of the four movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	directionCount // sentinel
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "?"
	}
}

// KeySet is the set of directions currently held, one bit per Direction.
type KeySet uint8

// Keys builds a KeySet from the given directions.
func Keys(dirs ...Direction) KeySet {
	var k KeySet
	for _, d := range dirs {
		k = k.With(d)
	}
	return k
}

// With returns k with d held.
func (k KeySet) With(d Direction) KeySet {
	if d >= directionCount {
		return k
	}
	return k | 1<<d
}

// Held reports whether d is held.
func (k KeySet) Held(d Direction) bool { return k&(1<<d) != 0 }

// keyBindings maps lower-cased key names to directions. WASD and the arrow
// keys are synonyms.
var keyBindings = map[string]Direction{
	"arrowup":    DirUp,
	"w":          DirUp,
	"arrowdown":  DirDown,
	"s":          DirDown,
	"arrowleft":  DirLeft,
	"a":          DirLeft,
	"arrowright": DirRight,
	"d":          DirRight,
}

// DirectionForKey resolves a key name (case-insensitive). Unrecognised keys
// return ok=false and must be ignored by the caller.
func DirectionForKey(name string) (Direction, bool) {
	d, ok := keyBindings[strings.ToLower(name)]
	return d, ok
}

// Intent is the movement requested for one frame.
type Intent struct {
	DX, DY float64
}

// IsZero reports whether the intent requests no movement.
func (in Intent) IsZero() bool { return in.DX == 0 && in.DY == 0 }

// SampleIntent converts held keys to a movement vector. Each axis is one of
// -speed, 0 or +speed. Opposite keys cancel. Diagonals are not normalised,
// so a diagonal move covers speed·√2.
func SampleIntent(keys KeySet, speed float64) Intent {
	var in Intent
	if keys.Held(DirUp) {
		in.DY -= speed
	}
	if keys.Held(DirDown) {
		in.DY += speed
	}
	if keys.Held(DirLeft) {
		in.DX -= speed
	}
	if keys.Held(DirRight) {
		in.DX += speed
	}
	return in
}
