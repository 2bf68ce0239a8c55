package tetris

import (
	"math/rand"
	"strings"
)

// MaxPieceSize is the largest mask edge; masks are stored in a fixed 4x4 array.
const MaxPieceSize = 4

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindL
	KindJ
	KindO
	KindZ
	KindT
	KindS
)

// Kinds lists every piece kind in generator order.
var Kinds = [...]Kind{KindI, KindL, KindJ, KindO, KindZ, KindT, KindS}

// shape is the base layout of a kind: mask size and the four filled cells.
type shape struct {
	size   int
	coords [4][2]int
}

var shapes = [...]shape{
	KindI: {4, [4][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	KindL: {3, [4][2]int{{1, 0}, {0, 0}, {0, 1}, {0, 2}}},
	KindJ: {3, [4][2]int{{1, 2}, {0, 0}, {0, 1}, {0, 2}}},
	KindO: {2, [4][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	KindZ: {3, [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	KindT: {3, [4][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
	KindS: {3, [4][2]int{{1, 0}, {1, 1}, {0, 1}, {0, 2}}},
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindO:
		return "O"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	case KindS:
		return "S"
	default:
		return "?"
	}
}

// Size returns the mask edge length for the kind.
func (k Kind) Size() int {
	return shapes[k].size
}

// Mask is a square boolean shape of Size() x Size() cells.
// Cell (i, j) set means a block at grid (anchorRow-i, anchorCol+j).
type Mask struct {
	size  int
	cells [MaxPieceSize][MaxPieceSize]bool
}

// BaseMask returns the unrotated mask of kind k.
func BaseMask(k Kind) Mask {
	s := shapes[k]
	m := Mask{size: s.size}
	for _, c := range s.coords {
		m.cells[c[0]][c[1]] = true
	}
	return m
}

// Size returns the mask edge length.
func (m Mask) Size() int {
	return m.size
}

// At reports whether cell (i, j) is filled. Cells outside the mask are empty.
func (m Mask) At(i, j int) bool {
	if i < 0 || i >= m.size || j < 0 || j >= m.size {
		return false
	}
	return m.cells[i][j]
}

// Count returns the number of filled cells.
func (m Mask) Count() int {
	n := 0
	m.each(func(int, int) { n++ })
	return n
}

// each calls fn for every filled cell.
func (m Mask) each(fn func(i, j int)) {
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if m.cells[i][j] {
				fn(i, j)
			}
		}
	}
}

// Rotate returns the mask turned 90 degrees clockwise.
// The 4-wide bar only toggles between a horizontal bar in row 0 and a
// vertical bar in column 1.
func (m Mask) Rotate() Mask {
	out := Mask{size: m.size}

	if m.size == 4 {
		if m.cells[0][0] {
			for i := 0; i < 4; i++ {
				out.cells[i][1] = true
			}
		} else {
			for j := 0; j < 4; j++ {
				out.cells[0][j] = true
			}
		}
		return out
	}

	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			out.cells[j][m.size-1-i] = m.cells[i][j]
		}
	}
	return out
}

// String draws the mask with '#' and '.', one line per mask row.
func (m Mask) String() string {
	var b strings.Builder
	for i := 0; i < m.size; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < m.size; j++ {
			if m.cells[i][j] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Piece is a mask placed on the grid at an anchor.
type Piece struct {
	Mask Mask
	Row  int // Anchor row; mask row i lands on Row-i
	Col  int // Anchor column; mask column j lands on Col+j
}

// Generator produces randomly shaped, randomly oriented pieces.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a deterministic seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next picks a kind uniformly and applies 0-3 random rotations.
func (g *Generator) Next() Mask {
	k := Kinds[g.rng.Intn(len(Kinds))]
	m := BaseMask(k)
	for i := g.rng.Intn(4); i > 0; i-- {
		m = m.Rotate()
	}
	return m
}
