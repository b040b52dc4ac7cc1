package game

import (
	"container/heap"
	"math"
)

// Cell addresses one grid square.
type Cell struct {
	Row, Col int
}

type routeNode struct {
	cell   Cell
	g, h   float64
	parent *routeNode
	index  int // heap index
}

type openList []*routeNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int)      { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x interface{}) {
	n := x.(*routeNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// Only orthogonal steps: the player cannot cut corners between cells.
var routeDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// FindRoute returns the cells of a shortest orthogonal route from `from` to
// `to`, both inclusive. Returns nil if either end is blocked or no route
// exists.
func (g *Grid) FindRoute(from, to Cell) []Cell {
	if g.CellKind(from.Row, from.Col).Blocks() || g.CellKind(to.Row, to.Col).Blocks() {
		return nil
	}
	key := func(c Cell) int { return c.Row*g.n + c.Col }
	heuristic := func(a Cell) float64 {
		return math.Abs(float64(a.Row-to.Row)) + math.Abs(float64(a.Col-to.Col))
	}

	start := &routeNode{cell: from, h: heuristic(from)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := map[int]*routeNode{key(from): start}

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*routeNode)
		if cur.cell == to {
			return buildRoute(cur)
		}
		k := key(cur.cell)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range routeDirs {
			next := Cell{Row: cur.cell.Row + d[0], Col: cur.cell.Col + d[1]}
			if g.CellKind(next.Row, next.Col).Blocks() {
				continue
			}
			nk := key(next)
			if closed[nk] {
				continue
			}
			cost := cur.g + 1
			if prev, ok := best[nk]; ok && cost >= prev.g {
				continue
			}
			node := &routeNode{cell: next, g: cost, h: heuristic(next), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

func buildRoute(end *routeNode) []Cell {
	var cells []Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
