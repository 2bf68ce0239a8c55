package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the engine configuration as YAML after applying --config and
--difficulty. The output can be saved as ~/.brickgame/configs/tetris.yaml
and edited.

Examples:
  brickgame config
  brickgame config --difficulty hard > ~/.brickgame/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

// loadConfig resolves the engine configuration and difficulty from flags.
func loadConfig() (config.TetrisConfig, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}

	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return config.TetrisConfig{}, "", err
	}

	config.ApplyTetrisPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.TetrisConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, preset, nil
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
