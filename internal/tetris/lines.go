package tetris

import (
	"time"

	"github.com/vovakirdan/brickgame/internal/config"
)

// ClearLines removes every full row, scanning bottom to top.
// After a removal the same row index is examined again because the rows
// above moved down, so non-contiguous full rows are all counted.
func ClearLines(g *Grid) int {
	cleared := 0
	for row := g.height - 1; row >= 0; {
		if g.RowFull(row) {
			g.CompactFrom(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// LineScore returns the points for clearing lines rows in one bake.
// Counts past the end of the table earn its last entry.
func LineScore(lines int, table []int) int {
	if lines <= 0 || len(table) == 0 {
		return 0
	}
	if lines > len(table) {
		lines = len(table)
	}
	return table[lines-1]
}

// LevelFor returns the level reached with score, clipped to the max level.
func LevelFor(score int, sc config.ScoringConfig) int {
	level := score/sc.LevelThreshold + 1
	if level > sc.MaxLevel {
		level = sc.MaxLevel
	}
	return level
}

// SpeedFor returns the gravity interval at level.
func SpeedFor(level int, cfg config.TetrisConfig) time.Duration {
	return cfg.InitialSpeed() - time.Duration(level-1)*cfg.SpeedStep()
}
