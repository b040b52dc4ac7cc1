package game

// Command is a side effect requested by Step. Step never performs side
// effects itself; the Session executes them.
type Command interface {
	command()
}

// WinCommand is emitted exactly once, on the frame the player reaches the goal.
type WinCommand struct {
	Frame int
}

func (WinCommand) command() {}
