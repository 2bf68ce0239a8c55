package tetris

// PreviewSize is the edge of the next-piece preview matrix.
const PreviewSize = 4

// Snapshot is a read-only copy of the state a front end renders.
type Snapshot struct {
	Field     [][]int // Height x Width, 1 for settled blocks and the falling piece
	Next      [PreviewSize][PreviewSize]int
	Score     int
	HighScore int
	Level     int
	Speed     int // Gravity interval in milliseconds
	Pause     PauseStatus
	Phase     Phase
}

// Snapshot copies the current state. The falling piece is overlaid on the
// field; cells above the top edge are not shown.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Field:     e.grid.Rows(),
		Score:     e.score,
		HighScore: e.HighScore(),
		Level:     e.level,
		Speed:     int(e.speed.Milliseconds()),
		Pause:     PauseStatusOf(e.Phase()),
		Phase:     e.Phase(),
	}

	e.piece.Mask.each(func(i, j int) {
		r, c := e.piece.Row-i, e.piece.Col+j
		if e.grid.InBounds(r, c) {
			s.Field[r][c] = 1
		}
	})

	off := (PreviewSize - e.next.Size()) / 2
	e.next.each(func(i, j int) {
		s.Next[i+off][j+off] = 1
	})
	return s
}
