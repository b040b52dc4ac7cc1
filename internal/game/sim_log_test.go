package game

import (
	"strings"
	"testing"
)

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "move", "position", "(48.0,48.0)", 0)
	quiet.Add(2, "win", "reached", "1.00s", 2)
	if n := len(quiet.Entries()); n != 1 {
		t.Fatalf("quiet log recorded %d entries, want 1", n)
	}

	loud := NewSimLog(true)
	loud.AddVerbose(1, "move", "position", "(48.0,48.0)", 0)
	if n := len(loud.Entries()); n != 1 {
		t.Fatalf("verbose log recorded %d entries, want 1", n)
	}
}

func TestSimLog_Queries(t *testing.T) {
	sl := NewSimLog(true)
	sl.Add(3, "move", "rejected", "(64.0,48.0)", 0)
	sl.Add(5, "move", "rejected", "(67.0,48.0)", 0)
	sl.Add(9, "win", "reached", "0.14s", 9)
	sl.Add(84, "nav", "redirect", "letters.txt", 0)

	if n := sl.CountCategory("move", "rejected"); n != 2 {
		t.Fatalf("rejected count = %d, want 2", n)
	}
	if n := len(sl.Filter("", "")); n != 4 {
		t.Fatalf("unfiltered = %d entries, want 4", n)
	}
	last, ok := sl.LastOf("move", "rejected")
	if !ok || last.Frame != 5 {
		t.Fatalf("LastOf = %+v ok=%v, want frame 5", last, ok)
	}
	if _, ok := sl.LastOf("audio", "failed"); ok {
		t.Fatal("LastOf found an entry that was never added")
	}
	if n := len(sl.FilterFrameRange(5, 9)); n != 2 {
		t.Fatalf("frames 5..9 = %d entries, want 2", n)
	}

	out := sl.FormatRange(80, 90)
	want := "[F=0084] nav       redirect         letters.txt\n"
	if out != want {
		t.Fatalf("FormatRange = %q, want %q", out, want)
	}
	if lines := strings.Count(sl.Format(), "\n"); lines != 4 {
		t.Fatalf("Format has %d lines, want 4", lines)
	}
}

func TestGrid_Sketch(t *testing.T) {
	g, err := NewGrid([]string{
		"1111",
		"1001",
		"1001",
		"1111",
	}, 64)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	got := g.Sketch(Cell{1, 1}, Cell{2, 2})
	want := "####\n#P.#\n#.G#\n####\n"
	if got != want {
		t.Fatalf("Sketch =\n%s\nwant\n%s", got, want)
	}
}
