package game

import "math"

// Entity is a circle in world space. Speed is only used for the player.
type Entity struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// DistanceTo returns the Euclidean distance between the two centres.
func (e Entity) DistanceTo(o Entity) float64 {
	return math.Hypot(e.X-o.X, e.Y-o.Y)
}

// Overlaps reports whether the two circles are strictly closer than the sum
// of their radii.
func (e Entity) Overlaps(o Entity) bool {
	return e.DistanceTo(o) < e.Radius+o.Radius
}

// Sizing floors keep entities visible on very small grids.
const (
	playerRadiusFloor   = 6
	playerSpeedFloor    = 3
	goalRadiusFloor     = 8 // before a slot is found
	goalSlotRadiusFloor = 6 // once placed on a slot
)

// NewPlayer builds the player centred on (row, col).
func NewPlayer(g *Grid, row, col int) Entity {
	cs := g.CellSize()
	x, y := g.CellCenter(row, col)
	return Entity{
		X:      x,
		Y:      y,
		Radius: math.Max(playerRadiusFloor, math.Floor(cs*0.18)),
		Speed:  math.Max(playerSpeedFloor, math.Floor(cs/18)),
	}
}

func goalRadius(cs, floor float64) float64 {
	return math.Max(floor, math.Floor(cs*0.22))
}
