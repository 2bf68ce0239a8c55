package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default brick engine configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Field: FieldConfig{
			Height: 20,
			Width:  10,
		},
		Timing: TimingConfig{
			InitialSpeedMs: 500,
			SpeedStepMs:    30,
		},
		Scoring: ScoringConfig{
			LinePoints:     []int{100, 300, 700, 1500},
			LevelThreshold: 600,
			MaxLevel:       10,
		},
		Store: StoreConfig{
			ScoreID: 1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
