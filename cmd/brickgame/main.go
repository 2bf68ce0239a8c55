// brickgame is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	brickgame                 - Play (same as 'brickgame play')
//	brickgame play            - Play a game
//	brickgame scores          - Show best score and history
//	brickgame config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible piece order
//	--db <path>           - Set database path (default: ~/.brickgame/scores.db)
//	--config <path>       - Custom engine config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination ("-" for stderr)
//
// BRICKGAME_DB, BRICKGAME_CONFIG and BRICKGAME_LOG_LEVEL set flag defaults
// and may be placed in a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "Brickgame - falling blocks in your terminal",
	Long: `Brickgame is a terminal falling-block puzzle: steer and rotate pieces,
fill rows to clear them, and survive as gravity speeds up.

Available commands:
  play     - Play a game (default)
  scores   - View best score and game history
  config   - Print the effective configuration

Examples:
  brickgame
  brickgame play --difficulty hard
  brickgame --seed 42
  brickgame scores
  brickgame config --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", envOr("BRICKGAME_DB", "~/.brickgame/scores.db"), "Path to scores database")
	pf.StringVar(&flagConfig, "config", envOr("BRICKGAME_CONFIG", ""), "Path to custom engine config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", envOr("BRICKGAME_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.brickgame/brickgame.log", `Log file ("-" for stderr)`)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
