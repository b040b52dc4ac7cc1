package tui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

var t0 = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

func TestHoldTracker_Window(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	assert.Equal(t, game.KeySet(0), h.Held(t0))

	h.Press(game.DirRight, t0)
	assert.True(t, h.Held(t0.Add(149*time.Millisecond)).Held(game.DirRight))
	assert.False(t, h.Held(t0.Add(150*time.Millisecond)).Held(game.DirRight), "window is half-open")

	h.Press(game.DirDown, t0.Add(100*time.Millisecond))
	ks := h.Held(t0.Add(120 * time.Millisecond))
	assert.Equal(t, game.Keys(game.DirRight, game.DirDown), ks)

	h.Reset()
	assert.Equal(t, game.KeySet(0), h.Held(t0.Add(120*time.Millisecond)))
}

func TestHoldTracker_RepeatExtends(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	h.Press(game.DirUp, t0)
	h.Press(game.DirUp, t0.Add(100*time.Millisecond))
	assert.True(t, h.Held(t0.Add(200*time.Millisecond)).Held(game.DirUp))
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want game.Direction
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.DirUp, true},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.DirDown, true},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.DirLeft, true},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.DirRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), game.DirUp, true},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), game.DirDown, true},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.DirLeft, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), game.DirRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		d, ok := KeyDirection(tt.ev)
		assert.Equal(t, tt.ok, ok, tt.ev.Name())
		if ok {
			assert.Equal(t, tt.want, d, tt.ev.Name())
		}
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, IsQuit(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newFrontend(t *testing.T, screen tcell.Screen, now *time.Time) *Frontend {
	t.Helper()
	quiet := log.New()
	quiet.SetOutput(io.Discard)
	f := NewFrontend(screen, game.MustReferenceGrid(512), game.DefaultSessionConfig(),
		150*time.Millisecond, quiet, game.WithClock(func() time.Time { return *now }))
	f.clock = func() time.Time { return *now }
	return f
}

func TestDraw_MazeAndEntities(t *testing.T) {
	screen := newScreen(t)
	now := t0
	f := newFrontend(t, screen, &now)

	f.Render()

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, ' ', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.ColorBlack, bg, "border is wall")

	mainc, _, _, _ = screen.GetContent(1*cellCols, 1)
	assert.Equal(t, playerGlyph, mainc, "player starts in cell (1,1)")

	mainc, _, _, _ = screen.GetContent(14*cellCols, 13)
	assert.Equal(t, goalGlyph, mainc, "goal sits in its slot at (13,14)")

	mainc, _, _, _ = screen.GetContent(0, 16)
	assert.Equal(t, 'a', mainc, "status line under the maze")
}

func TestFrontend_KeyHoldMovesPlayer(t *testing.T) {
	screen := newScreen(t)
	now := t0
	f := newFrontend(t, screen, &now)
	x0 := f.Session().State().Player.X

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	for i := 0; i < 3; i++ {
		now = now.Add(game.DefaultFramePeriod)
		require.True(t, f.Step())
	}
	speed := f.Session().State().Player.Speed
	assert.Equal(t, x0+3*speed, f.Session().State().Player.X)

	// No repeat arrives: the key lapses once the hold window has passed.
	now = now.Add(200 * time.Millisecond)
	x1 := f.Session().State().Player.X
	f.Step()
	assert.Equal(t, x1, f.Session().State().Player.X)
}

func TestFrontend_QuitStopsStep(t *testing.T) {
	screen := newScreen(t)
	now := t0
	f := newFrontend(t, screen, &now)

	f.events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.False(t, f.Step())
}

func TestFrontend_RunEndsAfterFrames(t *testing.T) {
	screen := newScreen(t)
	now := t0
	f := newFrontend(t, screen, &now)

	res, err := f.Run(context.Background(), game.FrameScheduler{Frames: 5})

	require.NoError(t, err)
	assert.False(t, res.Won)
	assert.Empty(t, res.Dest)
	assert.Equal(t, 5, f.Session().State().Frame)
}

func TestFrontend_WinNavigatesAndEnds(t *testing.T) {
	screen := newScreen(t)
	now := t0
	f := newFrontend(t, screen, &now)
	st := f.Session().State()
	ap := game.NewAutopilot(st.Grid, st.Player, st.Goal)
	require.NotNil(t, ap)

	more := true
	for i := 0; i < 5000 && more; i++ {
		now = now.Add(game.DefaultFramePeriod)
		f.hold.Reset()
		if !st.Won {
			pressAll(f.hold, ap.Keys(st.Player), now)
		}
		more = f.Step()
	}

	assert.False(t, more)
	assert.True(t, st.Won)
	assert.Equal(t, "letters.txt", f.dest)

	f.Render()
	mainc, _, _, _ := screen.GetContent(12, 7)
	assert.Equal(t, 'Y', mainc, "win banner is drawn")
}

// pressAll presses every direction in ks, as a terminal would report
// several keys repeating at once.
func pressAll(h *HoldTracker, ks game.KeySet, now time.Time) {
	for _, d := range []game.Direction{game.DirUp, game.DirDown, game.DirLeft, game.DirRight} {
		if ks.Held(d) {
			h.Press(d, now)
		}
	}
}
