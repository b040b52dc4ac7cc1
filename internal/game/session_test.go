package game

import (
	"strings"
	"testing"
	"time"
)

func placeNextToGoal(ts *TestSim) {
	st := ts.State()
	st.Player.X = st.Goal.X - 1
	st.Player.Y = st.Goal.Y
}

func TestSession_WinIncrementsAttempts(t *testing.T) {
	ts := NewTestSim(WithAttemptsText("4"))
	if ts.Session.View().Attempts != 4 {
		t.Fatalf("initial attempts=%d, want 4", ts.Session.View().Attempts)
	}
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	if !ts.State().Won {
		t.Fatal("expected win")
	}
	if ts.Attempts.Text != "5" {
		t.Fatalf("stored attempts=%q, want \"5\"", ts.Attempts.Text)
	}
	if ts.Session.View().Attempts != 5 {
		t.Fatalf("view attempts=%d, want 5", ts.Session.View().Attempts)
	}
	if ts.SimLog.CountCategory("attempts", "increment") != 1 {
		t.Fatalf("expected one attempts entry:\n%s", ts.SimLog.Format())
	}
}

func TestSession_MalformedAttemptsDefaultToZero(t *testing.T) {
	ts := NewTestSim(WithAttemptsText("not a number"))
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	if ts.Attempts.Text != "1" {
		t.Fatalf("stored attempts=%q, want \"1\"", ts.Attempts.Text)
	}
}

func TestSession_RedirectFiresOnceAfterDelay(t *testing.T) {
	ts := NewTestSim(WithRedirectDelay(1200 * time.Millisecond))
	ts.FramePeriod = 100 * time.Millisecond
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	if !ts.Session.RedirectPending() {
		t.Fatal("redirect should be pending right after the win")
	}

	// 11 more frames = 1.1s after the win.
	ts.Hold(Keys(DirRight), 11)
	if len(ts.Navigated) != 0 {
		t.Fatalf("navigated early: %v", ts.Navigated)
	}
	ts.Hold(0, 1)
	if len(ts.Navigated) != 1 || ts.Navigated[0] != "letters.txt" {
		t.Fatalf("navigated=%v, want [letters.txt]", ts.Navigated)
	}

	ts.Hold(0, 50)
	if len(ts.Navigated) != 1 {
		t.Fatalf("redirect fired %d times, want 1", len(ts.Navigated))
	}
	if !ts.Session.Redirected() || ts.Session.RedirectPending() {
		t.Fatal("redirect should be reported as fired")
	}
}

func TestSession_CancelRedirect(t *testing.T) {
	ts := NewTestSim()
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	ts.Session.CancelRedirect()
	ts.Clock.Advance(time.Minute)
	ts.Hold(0, 1)
	if len(ts.Navigated) != 0 {
		t.Fatalf("cancelled redirect fired: %v", ts.Navigated)
	}
}

func TestSession_InputIgnoredAfterWin(t *testing.T) {
	ts := NewTestSim()
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	p := ts.Player()
	ts.Hold(Keys(DirLeft), 30)
	if ts.Player() != p {
		t.Fatalf("player moved after win: %+v -> %+v", p, ts.Player())
	}
	if ts.SimLog.CountCategory("win", "reached") != 1 {
		t.Fatalf("win logged %d times", ts.SimLog.CountCategory("win", "reached"))
	}
}

func TestSession_ViewSinceWin(t *testing.T) {
	ts := NewTestSim()
	if ts.Session.View().SinceWin != 0 {
		t.Fatal("SinceWin should be zero while playing")
	}
	placeNextToGoal(ts)
	ts.Hold(0, 1)
	ts.Clock.Advance(300 * time.Millisecond)
	if got := ts.Session.View().SinceWin; got != 300*time.Millisecond {
		t.Fatalf("SinceWin=%v, want 300ms", got)
	}
}

func TestSession_VerboseLogsRejectedMoves(t *testing.T) {
	ts := NewTestSim(WithVerbose(true))
	// Three steps up bring the player's top edge to y=33; the wall row ends at 32.
	ts.Hold(Keys(DirUp), 8)
	if n := ts.SimLog.CountCategory("move", "rejected"); n != 5 {
		t.Fatalf("rejected entries=%d, want 5\n%s", n, ts.SimLog.Format())
	}
	if ts.State().Rejected != 5 {
		t.Fatalf("state rejected=%d, want 5", ts.State().Rejected)
	}
}

func TestSession_AutopilotWinsReferenceMaze(t *testing.T) {
	ts := NewTestSim()
	frame := ts.RunAutopilot(5000)
	if frame < 0 {
		t.Fatalf("autopilot did not reach the goal\n%s", ts.Session.DebugReport(0))
	}
	if ts.State().WonFrame != frame {
		t.Fatalf("won frame=%d, want %d", ts.State().WonFrame, frame)
	}
	if ts.State().Rejected != 0 {
		t.Fatalf("autopilot hit walls %d times", ts.State().Rejected)
	}
}

func TestSession_DebugReport(t *testing.T) {
	ts := NewTestSim()
	ts.Hold(Keys(DirRight), 3)
	r := ts.Session.DebugReport(0)
	for _, want := range []string{"session=" + ts.Session.ID, "frame=3", "grid=16x16", "P", "G"} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}
