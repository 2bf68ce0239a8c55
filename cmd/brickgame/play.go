package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/storage"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  Enter          - Start / play again after game over
  Left/Right h/l - Move
  Down/j         - Drop
  Space/x        - Rotate
  P/Esc          - Pause
  Q/Ctrl+C       - Quit
  Ctrl+S         - Screenshot to ~/.brickgame/screenshots

Difficulty options:
  easy   - Slow start, speeds up every level
  normal - Config timing, speeds up every level
  hard   - Fast start, speeds up every level
  fixed  - Config start speed, never speeds up

Examples:
  brickgame play
  brickgame play --difficulty easy
  brickgame play --seed 1234
  brickgame play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: brickgame needs an interactive terminal")
		os.Exit(1)
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	needW, needH := tui.BoardSize(cfg.Field.Height, cfg.Field.Width)
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < needW || h < needH+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH+1)
	}

	// Without the database the high score lives in memory for this run.
	var (
		scores  tetris.ScoreStore
		history tui.ScoreRecorder
	)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable, using memory", "path", flagDBPath, "error", err)
		scores = storage.NewMemoryStore()
	} else {
		scores = store
		history = store
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, err := tetris.New(tetris.Options{
		Config: cfg,
		Seed:   seed,
		Store:  scores,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "difficulty", preset, "seed", seed)

	runErr := tui.Run(engine, tui.Options{
		History: history,
		Mode:    string(preset),
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
