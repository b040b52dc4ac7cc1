package game

import "math"

// IsWalkable reports whether a circle of radius r centred at (x, y) fits
// without overlapping any wall cell or leaving the grid.
//
// Every cell touched by the circle's bounding box is visited. An
// out-of-bounds index blocks immediately. A wall cell blocks when the squared
// distance from the centre to the closest point of the cell square is less
// than r². Touching exactly at distance r is walkable.
func (g *Grid) IsWalkable(x, y, r float64) bool {
	cs := g.cellSize
	half := cs / 2
	left := int(math.Floor((x - r) / cs))
	right := int(math.Floor((x + r) / cs))
	top := int(math.Floor((y - r) / cs))
	bottom := int(math.Floor((y + r) / cs))

	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			switch g.CellKind(row, col) {
			case OutOfBounds:
				return false
			case Wall:
				cx := float64(col)*cs + half
				cy := float64(row)*cs + half
				dx := math.Max(math.Abs(x-cx)-half, 0)
				dy := math.Max(math.Abs(y-cy)-half, 0)
				if dx*dx+dy*dy < r*r {
					return false
				}
			}
		}
	}
	return true
}
