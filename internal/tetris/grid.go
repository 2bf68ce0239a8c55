package tetris

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a cell outside the field is addressed.
var ErrOutOfBounds = errors.New("tetris: cell out of bounds")

// Cell is the occupancy of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Filled
)

// Grid is the fixed-size occupancy matrix of the playfield.
// Row 0 is the top; cells are stored row-major.
type Grid struct {
	height int
	width  int
	cells  []Cell
}

// NewGrid allocates an empty height x width grid.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("tetris: invalid grid size %dx%d", height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds reports whether (row, col) addresses a cell of the field.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return g.cells[row*g.width+col], nil
}

// Set stores c at (row, col).
func (g *Grid) Set(row, col int, c Cell) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	g.cells[row*g.width+col] = c
	return nil
}

// filled is the unchecked read used by call sites that validated bounds.
func (g *Grid) filled(row, col int) bool {
	return g.cells[row*g.width+col] == Filled
}

// RowFull reports whether every cell of row is filled.
// Rows outside the field are never full.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}
	for _, c := range g.row(row) {
		if c != Filled {
			return false
		}
	}
	return true
}

// CompactFrom removes row by shifting every row above it down by one.
// Row 0 is cleared afterwards.
func (g *Grid) CompactFrom(row int) {
	if row < 0 || row >= g.height {
		return
	}
	for r := row; r > 0; r-- {
		copy(g.row(r), g.row(r-1))
	}
	clear(g.row(0))
}

// Rows returns the grid as 0/1 markers, one freshly allocated slice per row.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		out[r] = make([]int, g.width)
		for c, cell := range g.row(r) {
			if cell == Filled {
				out[r][c] = 1
			}
		}
	}
	return out
}

func (g *Grid) row(r int) []Cell {
	return g.cells[r*g.width : (r+1)*g.width]
}

// fill is the unchecked write used by call sites that validated bounds.
func (g *Grid) fill(row, col int) {
	g.cells[row*g.width+col] = Filled
}
