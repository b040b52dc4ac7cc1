package game

import "math"

// Autopilot steers the player along a route of cell centres by choosing
// which keys to hold each frame. It drives headless runs.
type Autopilot struct {
	waypoints [][2]float64
	next      int
}

// NewAutopilot plans a route from the player's cell to the goal's cell.
// Returns nil when the goal cannot be reached.
func NewAutopilot(g *Grid, player, goal Entity) *Autopilot {
	pr, pc := g.WorldToCell(player.X, player.Y)
	gr, gc := g.WorldToCell(goal.X, goal.Y)
	route := g.FindRoute(Cell{pr, pc}, Cell{gr, gc})
	if route == nil {
		return nil
	}
	ap := &Autopilot{waypoints: make([][2]float64, len(route))}
	for i, c := range route {
		x, y := g.CellCenter(c.Row, c.Col)
		ap.waypoints[i] = [2]float64{x, y}
	}
	// The goal may sit off-centre when it came from the fallback coordinate.
	ap.waypoints[len(ap.waypoints)-1] = [2]float64{goal.X, goal.Y}
	return ap
}

// Remaining returns how many waypoints are left.
func (ap *Autopilot) Remaining() int { return len(ap.waypoints) - ap.next }

// Keys returns the keys to hold this frame. An axis is pressed while the
// waypoint is more than half a step away on it, which keeps the player
// within speed/2 of each corridor centre line.
func (ap *Autopilot) Keys(p Entity) KeySet {
	tol := p.Speed / 2
	for ap.next < len(ap.waypoints) {
		w := ap.waypoints[ap.next]
		dx, dy := w[0]-p.X, w[1]-p.Y
		if math.Abs(dx) <= tol && math.Abs(dy) <= tol {
			ap.next++
			continue
		}
		var k KeySet
		switch {
		case dx > tol:
			k = k.With(DirRight)
		case dx < -tol:
			k = k.With(DirLeft)
		}
		switch {
		case dy > tol:
			k = k.With(DirDown)
		case dy < -tol:
			k = k.With(DirUp)
		}
		return k
	}
	return 0
}
