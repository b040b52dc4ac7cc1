package game

// State is everything the simulation mutates. It is owned by a single
// goroutine; renderers only read it.
type State struct {
	Grid   *Grid
	Player Entity
	Goal   Entity
	Won    bool

	Frame    int // number of Step calls
	WonFrame int // frame on which Won latched; 0 while playing
	Rejected int // moves discarded by collision
}

// NewState places the player on (startRow, startCol) and the goal per p.
func NewState(g *Grid, startRow, startCol int, p GoalPlacement) *State {
	return &State{
		Grid:   g,
		Player: NewPlayer(g, startRow, startCol),
		Goal:   PlaceGoal(g, p),
	}
}

// Step advances the simulation by one frame. The whole proposed move is
// discarded when the destination is blocked; there is no sliding along
// walls. Once Won is set Step only advances the frame counter.
func Step(s *State, in Intent) []Command {
	s.Frame++
	if s.Won {
		return nil
	}

	if !in.IsZero() {
		nx := s.Player.X + in.DX
		ny := s.Player.Y + in.DY
		if s.Grid.IsWalkable(nx, ny, s.Player.Radius) {
			s.Player.X = nx
			s.Player.Y = ny
		} else {
			s.Rejected++
		}
	}

	if s.Player.Overlaps(s.Goal) {
		s.Won = true
		s.WonFrame = s.Frame
		return []Command{WinCommand{Frame: s.Frame}}
	}
	return nil
}
