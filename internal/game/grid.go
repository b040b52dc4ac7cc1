package game

import (
	"errors"
	"fmt"
	"math"
)

// CellKind identifies what occupies a grid cell.
type CellKind uint8

const (
	Path        CellKind = iota // walkable floor
	Wall                        // impassable block
	OutOfBounds                 // any index outside [0, N); always blocking
)

func (k CellKind) String() string {
	switch k {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case OutOfBounds:
		return "out-of-bounds"
	default:
		return fmt.Sprintf("CellKind(%d)", k)
	}
}

// Blocks reports whether the kind stops movement.
func (k CellKind) Blocks() bool { return k != Path }

var (
	ErrEmptyGrid  = errors.New("grid has no rows")
	ErrNotSquare  = errors.New("grid is not square")
	ErrBorderOpen = errors.New("grid border must be entirely wall")
	ErrBadGlyph   = errors.New("unknown cell glyph")
	ErrBadCanvas  = errors.New("canvas width must be positive")
)

// referenceLayout is the shipped 16x16 maze (1 = wall, 0 = path).
var referenceLayout = []string{
	"1111111111111111",
	"1000100010001001",
	"1010101010111011",
	"1010001000000001",
	"1011111110111101",
	"1000000000001001",
	"1110111111101101",
	"1000100000000001",
	"1011101111101111",
	"1000000010000001",
	"1110111010111101",
	"1000000010000001",
	"1011111111101111",
	"1000000000000001",
	"1110111111111011",
	"1111111111111111",
}

// ReferenceLayout returns a copy of the built-in maze rows.
func ReferenceLayout() []string {
	out := make([]string, len(referenceLayout))
	copy(out, referenceLayout)
	return out
}

// Grid is the immutable maze layout plus the world-space size of one cell.
type Grid struct {
	n        int
	cells    []CellKind // row-major, n*n
	cellSize float64
}

// NewGrid parses rows of '1'/'#' (wall) and '0'/'.'/' ' (path) glyphs into a
// square grid whose cells are canvasWidth/N world units wide.
func NewGrid(rows []string, canvasWidth float64) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	if canvasWidth <= 0 {
		return nil, ErrBadCanvas
	}
	g := &Grid{
		n:        n,
		cells:    make([]CellKind, n*n),
		cellSize: canvasWidth / float64(n),
	}
	for r, line := range rows {
		glyphs := []rune(line)
		if len(glyphs) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(glyphs), n, ErrNotSquare)
		}
		for c, ch := range glyphs {
			switch ch {
			case '1', '#':
				g.cells[r*n+c] = Wall
			case '0', '.', ' ':
				g.cells[r*n+c] = Path
			default:
				return nil, fmt.Errorf("row %d col %d %q: %w", r, c, ch, ErrBadGlyph)
			}
		}
	}
	for i := 0; i < n; i++ {
		if g.cells[i] != Wall || g.cells[(n-1)*n+i] != Wall ||
			g.cells[i*n] != Wall || g.cells[i*n+n-1] != Wall {
			return nil, ErrBorderOpen
		}
	}
	return g, nil
}

// MustReferenceGrid builds the reference maze for the given canvas width.
// It panics only if canvasWidth is not positive.
func MustReferenceGrid(canvasWidth float64) *Grid {
	g, err := NewGrid(referenceLayout, canvasWidth)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int { return g.n }

// CellSize returns the world-space width of one cell.
func (g *Grid) CellSize() float64 { return g.cellSize }

// CellKind returns the content of (row, col), or OutOfBounds.
func (g *Grid) CellKind(row, col int) CellKind {
	if row < 0 || col < 0 || row >= g.n || col >= g.n {
		return OutOfBounds
	}
	return g.cells[row*g.n+col]
}

// WorldToCell converts world coordinates to (row, col) by floor division.
// Negative coordinates yield negative indices.
func (g *Grid) WorldToCell(x, y float64) (int, int) {
	return int(math.Floor(y / g.cellSize)), int(math.Floor(x / g.cellSize))
}

// CellCenter returns the world-space centre of (row, col).
func (g *Grid) CellCenter(row, col int) (float64, float64) {
	return (float64(col) + 0.5) * g.cellSize, (float64(row) + 0.5) * g.cellSize
}
