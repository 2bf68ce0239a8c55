package tetris

// Check selects which placement WouldCollide tests.
type Check int

const (
	// CheckWall tests the placement as given; lateral moves pass the shifted column.
	CheckWall Check = iota
	// CheckAttach tests the placement one row below; true means the piece is attached.
	CheckAttach
	// CheckRotate tests a rotated candidate mask at the current anchor.
	CheckRotate
)

// String returns the check name for logs.
func (c Check) String() string {
	switch c {
	case CheckWall:
		return "wall"
	case CheckAttach:
		return "attach"
	case CheckRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// WouldCollide reports whether mask m anchored at (row, col) leaves the field
// sideways, drops below the floor, or overlaps a filled cell.
// Cells above the top edge never collide.
func WouldCollide(g *Grid, m Mask, row, col int, check Check) bool {
	if check == CheckAttach {
		row++
	}

	hit := false
	m.each(func(i, j int) {
		if hit {
			return
		}
		r, c := row-i, col+j
		switch {
		case c < 0 || c >= g.width:
			hit = true
		case r >= g.height:
			hit = true
		case r >= 0 && g.filled(r, c):
			hit = true
		}
	})
	return hit
}

// attached reports whether p cannot move one row down.
func attached(g *Grid, p Piece) bool {
	return WouldCollide(g, p.Mask, p.Row, p.Col, CheckAttach)
}
