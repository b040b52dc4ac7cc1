package game

import "testing"

// twoSlotRooms has slots at (1,1), (1,4), (3,1) and (3,2).
var twoSlotRooms = []string{
	"111111",
	"101101",
	"111111",
	"100011",
	"111011",
	"111111",
}

func TestPlaceGoal_ReferenceLayout(t *testing.T) {
	for _, width := range []float64{512, 480, 640} {
		g := MustReferenceGrid(width)
		cs := g.CellSize()
		goal := PlaceGoal(g, DefaultGoalPlacement())
		if goal.X != 14.5*cs || goal.Y != 13.5*cs {
			t.Fatalf("width %v: goal=(%v,%v), want (%v,%v)", width, goal.X, goal.Y, 14.5*cs, 13.5*cs)
		}
	}
}

func TestFindSlot_ReferenceScanAgreesWithPreferred(t *testing.T) {
	g := MustReferenceGrid(512)
	// (1,1) is not a slot, so the scan runs and still lands on (13,14).
	row, col, ok := g.FindSlot(1, 1)
	if !ok || row != 13 || col != 14 {
		t.Fatalf("FindSlot=(%d,%d,%v), want (13,14,true)", row, col, ok)
	}
}

func TestFindSlot_PreferredWins(t *testing.T) {
	g, err := NewGrid(twoSlotRooms, 60)
	if err != nil {
		t.Fatal(err)
	}
	row, col, ok := g.FindSlot(1, 1)
	if !ok || row != 1 || col != 1 {
		t.Fatalf("FindSlot=(%d,%d,%v), want preferred (1,1)", row, col, ok)
	}
}

func TestFindSlot_ScanIsBottomUpRightToLeft(t *testing.T) {
	g, err := NewGrid(twoSlotRooms, 60)
	if err != nil {
		t.Fatal(err)
	}
	// (0,0) is a wall, so the scan decides. Row 3 is scanned before row 1,
	// and column 2 before column 1; (3,3) is not a slot because (4,3) is path.
	row, col, ok := g.FindSlot(0, 0)
	if !ok || row != 3 || col != 2 {
		t.Fatalf("FindSlot=(%d,%d,%v), want (3,2,true)", row, col, ok)
	}
	// Out-of-range preferences fall through to the scan as well.
	row, col, ok = g.FindSlot(40, 40)
	if !ok || row != 3 || col != 2 {
		t.Fatalf("FindSlot out of range=(%d,%d,%v), want (3,2,true)", row, col, ok)
	}
}

func TestPlaceGoal_FallbackWhenNoSlot(t *testing.T) {
	g, err := NewGrid([]string{"1111", "1001", "1001", "1111"}, 64)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := g.FindSlot(1, 1); ok {
		t.Fatal("layout should have no slot")
	}
	goal := PlaceGoal(g, DefaultGoalPlacement())
	// 16px cells: fallback is 13.5 cells even though that is outside this grid.
	if goal.X != 216 || goal.Y != 216 {
		t.Fatalf("fallback goal=(%v,%v), want (216,216)", goal.X, goal.Y)
	}
	if goal.Radius != goalRadiusFloor {
		t.Fatalf("fallback radius=%v, want floor %v", goal.Radius, goalRadiusFloor)
	}
}

func TestPlaceGoal_RadiusFloorOnSmallGrid(t *testing.T) {
	g, err := NewGrid(twoSlotRooms, 60) // 10px cells
	if err != nil {
		t.Fatal(err)
	}
	goal := PlaceGoal(g, GoalPlacement{PreferredRow: 1, PreferredCol: 4})
	if goal.Radius != goalSlotRadiusFloor {
		t.Fatalf("radius=%v, want floor %v", goal.Radius, goalSlotRadiusFloor)
	}
	if goal.X != 45 || goal.Y != 15 {
		t.Fatalf("goal=(%v,%v), want (45,15)", goal.X, goal.Y)
	}
}

func TestPlaceGoal_RadiusScalesWithCellSize(t *testing.T) {
	g := MustReferenceGrid(1152) // 72px cells
	goal := PlaceGoal(g, DefaultGoalPlacement())
	if goal.Radius != 15 { // floor(72*0.22)
		t.Fatalf("radius=%v, want 15", goal.Radius)
	}
}
