package game

import (
	"fmt"
	"strings"
)

// DebugReport renders a plain-text snapshot of the session for bug reports.
// lastFrames limits the event log excerpt; <= 0 means 120.
func (s *Session) DebugReport(lastFrames int) string {
	if lastFrames <= 0 {
		lastFrames = 120
	}
	st := s.state
	toFrame := st.Frame
	fromFrame := toFrame - lastFrames + 1
	if fromFrame < 0 {
		fromFrame = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- Letter Maze debug report ---\n")
	fmt.Fprintf(&b, "session=%s frame=%d won=%v won_frame=%d\n", s.ID, st.Frame, st.Won, st.WonFrame)
	fmt.Fprintf(&b, "grid=%dx%d cell=%.2f\n", st.Grid.Size(), st.Grid.Size(), st.Grid.CellSize())

	pr, pc := st.Grid.WorldToCell(st.Player.X, st.Player.Y)
	gr, gc := st.Grid.WorldToCell(st.Goal.X, st.Goal.Y)
	fmt.Fprintf(&b, "player=(%.1f,%.1f) cell=(%d,%d) r=%.0f speed=%.0f\n",
		st.Player.X, st.Player.Y, pr, pc, st.Player.Radius, st.Player.Speed)
	fmt.Fprintf(&b, "goal=(%.1f,%.1f) cell=(%d,%d) r=%.0f dist=%.1f\n",
		st.Goal.X, st.Goal.Y, gr, gc, st.Goal.Radius, st.Player.DistanceTo(st.Goal))
	fmt.Fprintf(&b, "rejected_moves=%d attempts=%d redirect_pending=%v redirected=%v\n\n",
		st.Rejected, s.attempts, s.RedirectPending(), s.Redirected())

	fmt.Fprintf(&b, "== events [F=%d..%d] ==\n", fromFrame, toFrame)
	events := s.simLog.FormatRange(fromFrame, toFrame)
	if events == "" {
		b.WriteString("(no events recorded)\n")
	} else {
		b.WriteString(events)
	}
	b.WriteByte('\n')
	b.WriteString(st.Grid.Sketch(Cell{pr, pc}, Cell{gr, gc}))
	return b.String()
}

// Sketch draws the grid as text: '#' wall, '.' path, 'P' player cell,
// 'G' goal cell.
func (g *Grid) Sketch(player, goal Cell) string {
	var b strings.Builder
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			switch {
			case r == player.Row && c == player.Col:
				b.WriteByte('P')
			case r == goal.Row && c == goal.Col:
				b.WriteByte('G')
			case g.CellKind(r, c) == Wall:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
