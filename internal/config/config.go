// Package config provides YAML-based engine configuration loading and
// difficulty presets for brickgame.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains all configuration for the brick engine.
type TetrisConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Store   StoreConfig   `yaml:"store"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// TimingConfig defines the gravity interval and how it shrinks per level.
type TimingConfig struct {
	InitialSpeedMs int `yaml:"initial_speed_ms"`
	SpeedStepMs    int `yaml:"speed_step_ms"`
}

// ScoringConfig defines line rewards and level progression.
type ScoringConfig struct {
	LinePoints     []int `yaml:"line_points"`     // Points for 1, 2, 3, 4 lines cleared in one bake
	LevelThreshold int   `yaml:"level_threshold"` // Score needed per level
	MaxLevel       int   `yaml:"max_level"`       // Level (and speed) stop rising here
}

// StoreConfig selects the high score record.
type StoreConfig struct {
	ScoreID uint32 `yaml:"score_id"`
}

// InitialSpeed returns the gravity interval at level 1.
func (c TetrisConfig) InitialSpeed() time.Duration {
	return time.Duration(c.Timing.InitialSpeedMs) * time.Millisecond
}

// SpeedStep returns how much the gravity interval shrinks per level.
func (c TetrisConfig) SpeedStep() time.Duration {
	return time.Duration(c.Timing.SpeedStepMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable engine.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Field.Width < 4:
		return fmt.Errorf("%w: field width %d, need at least 4", ErrInvalid, c.Field.Width)
	case c.Field.Height < 4:
		return fmt.Errorf("%w: field height %d, need at least 4", ErrInvalid, c.Field.Height)
	case c.Timing.InitialSpeedMs <= 0:
		return fmt.Errorf("%w: initial_speed_ms must be positive", ErrInvalid)
	case c.Timing.SpeedStepMs < 0:
		return fmt.Errorf("%w: speed_step_ms must not be negative", ErrInvalid)
	case len(c.Scoring.LinePoints) == 0:
		return fmt.Errorf("%w: line_points is empty", ErrInvalid)
	case c.Scoring.LevelThreshold <= 0:
		return fmt.Errorf("%w: level_threshold must be positive", ErrInvalid)
	case c.Scoring.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be at least 1", ErrInvalid)
	}

	// Gravity must stay positive at the fastest level.
	fastest := c.Timing.InitialSpeedMs - (c.Scoring.MaxLevel-1)*c.Timing.SpeedStepMs
	if fastest <= 0 {
		return fmt.Errorf("%w: speed reaches %dms at level %d", ErrInvalid, fastest, c.Scoring.MaxLevel)
	}
	return nil
}
