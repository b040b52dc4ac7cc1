package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Letter-Maze/internal/config"
	"github.com/Garsondee/Letter-Maze/internal/game"
)

type runStats struct {
	runIndex    int
	canvasWidth int

	cellSize     float64
	playerRadius float64
	playerSpeed  float64
	goalRadius   float64
	goalCell     [2]int

	winFrame      int
	redirectFrame int
	rejected      int
	routeCells    int
	finalDist     float64
}

func main() {
	var runs int
	var frames int
	var widthBase int
	var widthStep int
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&frames, "frames", 6000, "frame budget per run")
	flag.IntVar(&widthBase, "width-base", 512, "canvas width for run 1")
	flag.IntVar(&widthStep, "width-step", 64, "canvas width increment between runs")
	flag.StringVar(&configPath, "config", "", "optional YAML config (maze, start, goal)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if widthBase <= 0 || widthBase+(runs-1)*widthStep <= 0 {
		fmt.Println("error: every run needs a positive canvas width")
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Maze Report ===\n")
	fmt.Printf("runs=%d frames=%d width_base=%d width_step=%d grid=%d\n\n",
		runs, frames, widthBase, widthStep, len(cfg.Maze.Layout))

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats := runAutopilot(i+1, widthBase+i*widthStep, frames, cfg)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runAutopilot(runIndex, width, frames int, cfg *config.Config) runStats {
	sc := cfg.Session()
	ts := game.NewTestSim(
		game.WithLayout(cfg.Maze.Layout...),
		game.WithCanvasWidth(float64(width)),
		game.WithStart(sc.StartRow, sc.StartCol),
		game.WithGoalPlacement(sc.Goal),
		game.WithRedirectDelay(sc.RedirectDelay),
	)

	st := ts.State()
	rs := runStats{
		runIndex:      runIndex,
		canvasWidth:   width,
		cellSize:      ts.Grid.CellSize(),
		playerRadius:  st.Player.Radius,
		playerSpeed:   st.Player.Speed,
		goalRadius:    st.Goal.Radius,
		winFrame:      -1,
		redirectFrame: -1,
	}
	rs.goalCell[0], rs.goalCell[1] = ts.Grid.WorldToCell(st.Goal.X, st.Goal.Y)
	if ap := game.NewAutopilot(ts.Grid, st.Player, st.Goal); ap != nil {
		rs.routeCells = ap.Remaining()
	}

	rs.winFrame = ts.RunAutopilot(frames)
	if rs.winFrame >= 0 {
		rs.redirectFrame = ts.RunUntil(
			func(*game.TestSim) game.KeySet { return 0 },
			func(ts *game.TestSim) bool { return ts.Session.Redirected() },
			frames-rs.winFrame,
		)
	}
	rs.rejected = ts.State().Rejected
	rs.finalDist = ts.Player().DistanceTo(ts.State().Goal)
	return rs
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (width=%d) ---\n", rs.runIndex, rs.canvasWidth)
	fmt.Printf("geometry: cell=%.2f player_r=%.0f speed=%.0f goal_r=%.0f goal_cell=(%d,%d) route_cells=%d\n",
		rs.cellSize, rs.playerRadius, rs.playerSpeed, rs.goalRadius, rs.goalCell[0], rs.goalCell[1], rs.routeCells)
	fmt.Printf("outcome: win_frame=%s redirect_frame=%s rejected_moves=%d final_dist=%.1f\n",
		frameString(rs.winFrame), frameString(rs.redirectFrame), rs.rejected, rs.finalDist)
	if stuck, reason := detectStuck(rs); stuck {
		fmt.Printf("STUCK: %s\n", reason)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	var winFrames []int
	totalRejected := 0
	stuck := map[string]struct{}{}
	for _, rs := range all {
		totalRejected += rs.rejected
		if rs.winFrame >= 0 {
			winFrames = append(winFrames, rs.winFrame)
		}
		if s, _ := detectStuck(rs); s {
			stuck[fmt.Sprintf("run%d", rs.runIndex)] = struct{}{}
		}
	}

	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d wins=%d\n", len(all), len(winFrames))
	fmt.Printf("win_frame: avg=%s min=%s max=%s\n", avgFrameString(winFrames), minFrameString(winFrames), maxFrameString(winFrames))
	fmt.Printf("avg_rejected_moves_per_run=%.1f\n", avg(totalRejected, len(all)))
	fmt.Printf("stuck_runs=%d [%s]\n", len(stuck), joinSet(stuck))
}

// detectStuck flags runs that never won. Frequent rejected moves point at a
// collision or corridor-width problem rather than a short frame budget.
func detectStuck(rs runStats) (bool, string) {
	if rs.winFrame >= 0 {
		return false, ""
	}
	if rs.routeCells == 0 {
		return true, "no_route_to_goal"
	}
	reasons := []string{"frame_budget_exhausted"}
	if rs.rejected > 0 {
		reasons = append(reasons, fmt.Sprintf("rejected_moves=%d", rs.rejected))
	}
	return true, strings.Join(reasons, ",")
}

func frameString(f int) string {
	if f < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", f)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func minFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = min(m, v)
	}
	return fmt.Sprintf("%d", m)
}

func maxFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	m := vals[0]
	for _, v := range vals[1:] {
		m = max(m, v)
	}
	return fmt.Sprintf("%d", m)
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
