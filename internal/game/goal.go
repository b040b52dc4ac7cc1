package game

// GoalPlacement configures where the goal is put.
type GoalPlacement struct {
	PreferredRow, PreferredCol int
	// FallbackX and FallbackY are in cells; the default 13.5 puts the goal
	// near the bottom-right corner of a 16x16 maze.
	FallbackX, FallbackY float64
}

// DefaultGoalPlacement matches the reference maze.
func DefaultGoalPlacement() GoalPlacement {
	return GoalPlacement{PreferredRow: 13, PreferredCol: 14, FallbackX: 13.5, FallbackY: 13.5}
}

// IsSlot reports whether (row, col) is a path cell with walls directly above
// and below it.
func (g *Grid) IsSlot(row, col int) bool {
	return g.CellKind(row, col) == Path &&
		g.CellKind(row-1, col) == Wall &&
		g.CellKind(row+1, col) == Wall
}

// FindSlot returns the preferred cell if it is a slot, otherwise the first
// slot found scanning rows bottom-up and columns right-to-left. The scan
// order biases the goal toward the lower-right of the maze.
func (g *Grid) FindSlot(preferredRow, preferredCol int) (row, col int, ok bool) {
	if g.IsSlot(preferredRow, preferredCol) {
		return preferredRow, preferredCol, true
	}
	for r := g.n - 1; r >= 0; r-- {
		for c := g.n - 1; c >= 0; c-- {
			if g.IsSlot(r, c) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// PlaceGoal computes the goal entity once for the grid. When no slot exists
// the fallback coordinate is used even if it is not a path cell.
func PlaceGoal(g *Grid, p GoalPlacement) Entity {
	cs := g.CellSize()
	if row, col, ok := g.FindSlot(p.PreferredRow, p.PreferredCol); ok {
		x, y := g.CellCenter(row, col)
		return Entity{X: x, Y: y, Radius: goalRadius(cs, goalSlotRadiusFloor)}
	}
	return Entity{
		X:      p.FallbackX * cs,
		Y:      p.FallbackY * cs,
		Radius: goalRadius(cs, goalRadiusFloor),
	}
}
