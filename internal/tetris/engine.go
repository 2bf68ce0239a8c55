// Package tetris implements the falling-block engine: a bounded grid,
// seven rotatable pieces, gravity timing, line clearing, scoring and a
// persisted high score. The engine is pure state; a driver feeds it
// actions and reads snapshots.
package tetris

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
)

// NoDeadline is returned by TimeRemaining when nothing is scheduled.
const NoDeadline time.Duration = -1

// Options configures a new Engine.
type Options struct {
	Config config.TetrisConfig
	Seed   int64
	Clock  core.Clock  // Defaults to core.SystemClock
	Store  ScoreStore  // Optional; nil means high score 0 and nothing saved
	Logger *log.Logger // Defaults to a discarding logger
}

// Engine holds one game session. It is not safe for concurrent use;
// a single driver goroutine owns it.
type Engine struct {
	cfg    config.TetrisConfig
	clock  core.Clock
	store  ScoreStore
	logger *log.Logger
	gen    *Generator
	phases *fsm.FSM

	grid  *Grid
	piece Piece
	next  Mask
	score int
	level int
	speed time.Duration

	// Gravity timer, valid while moving
	startTime time.Time
	timeLeft  time.Duration

	resumeTo   Phase
	pauseStart time.Time
	terminated bool
}

// New validates opts.Config and creates an engine in the initial phase.
func New(opts Options) (*Engine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    opts.Config,
		clock:  opts.Clock,
		store:  opts.Store,
		logger: opts.Logger,
		gen:    NewGenerator(opts.Seed),
	}
	if e.clock == nil {
		e.clock = core.SystemClock{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.phases = newPhaseMachine(e.logger)

	if err := e.resetState(); err != nil {
		return nil, err
	}
	return e, nil
}

// resetState clears the board and counters and prepares a fresh preview.
// The current piece starts as a copy of the preview, parked above the field.
func (e *Engine) resetState() error {
	grid, err := NewGrid(e.cfg.Field.Height, e.cfg.Field.Width)
	if err != nil {
		return fmt.Errorf("reset board: %w", err)
	}

	e.grid = grid
	e.score = 0
	e.level = 1
	e.speed = e.cfg.InitialSpeed()
	e.timeLeft = e.speed
	e.startTime = time.Time{}
	e.next = e.gen.Next()
	e.piece = e.spawnPiece(e.next)
	return nil
}

func (e *Engine) spawnPiece(m Mask) Piece {
	return Piece{Mask: m, Row: -1, Col: (e.grid.width - m.Size()) / 2}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return Phase(e.phases.Current())
}

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Speed returns the current gravity interval.
func (e *Engine) Speed() time.Duration { return e.speed }

// Terminated reports whether a Terminate action has been handled.
func (e *Engine) Terminated() bool { return e.terminated }

// Submit applies one action. Actions not valid in the current phase are ignored.
func (e *Engine) Submit(a core.Action) {
	moving := e.Phase() == PhaseMoving

	switch a {
	case core.ActionNone:
		e.tick()
	case core.ActionStart:
		e.start()
	case core.ActionPause:
		e.togglePause()
	case core.ActionTerminate:
		e.terminate()
	case core.ActionLeft:
		if moving {
			e.shiftSideways(-1)
		}
	case core.ActionRight:
		if moving {
			e.shiftSideways(1)
		}
	case core.ActionDown:
		if moving {
			e.hardDrop()
		}
	case core.ActionRotate:
		if moving {
			e.rotate()
		}
	case core.ActionUp:
		// No soft action bound to up.
	}
}

// TimeRemaining returns how long until the engine needs a tick.
// Zero means a tick is due now; NoDeadline means the engine is idle.
func (e *Engine) TimeRemaining() time.Duration {
	switch e.Phase() {
	case PhaseMoving:
		left := e.timeLeft - e.clock.Now().Sub(e.startTime)
		if left < 0 {
			return 0
		}
		return left
	case PhaseSpawn, PhaseShifting, PhaseAttaching:
		return 0
	default:
		return NoDeadline
	}
}

// TickIfDue submits a tick when one is due and reports whether it did.
func (e *Engine) TickIfDue() bool {
	if e.TimeRemaining() != 0 {
		return false
	}
	e.Submit(core.ActionNone)
	return true
}

func (e *Engine) tick() {
	switch e.Phase() {
	case PhaseSpawn:
		e.spawn()
	case PhaseMoving:
		e.fire(evFall)
	case PhaseShifting:
		e.fall()
	case PhaseAttaching:
		e.bake()
	}
}

func (e *Engine) fire(event string) {
	if err := e.phases.Event(context.Background(), event); err != nil {
		e.logger.Debug("transition rejected", "event", event, "phase", e.Phase(), "error", err)
	}
}

func (e *Engine) restartTimer() {
	e.startTime = e.clock.Now()
	e.timeLeft = e.speed
}

func (e *Engine) start() {
	switch e.Phase() {
	case PhaseInitial:
		e.terminated = false
		e.fire(evStart)
	case PhaseGameOver:
		e.flushHighScore()
		if err := e.resetState(); err != nil {
			e.logger.Error("restart failed", "error", err)
			return
		}
		e.fire(evRestart)
	}
}

func (e *Engine) terminate() {
	e.flushHighScore()
	if err := e.resetState(); err != nil {
		e.logger.Error("reset on terminate failed", "error", err)
	}
	e.phases.SetState(string(PhaseInitial))
	e.terminated = true
	e.logger.Info("session terminated")
}

func (e *Engine) togglePause() {
	now := e.clock.Now()

	switch p := e.Phase(); p {
	case PhaseMoving, PhaseShifting:
		e.resumeTo = p
		e.pauseStart = now
		e.fire(evPause)
	case PhasePaused:
		// The gravity timer does not run while paused.
		e.startTime = e.startTime.Add(now.Sub(e.pauseStart))
		e.phases.SetState(string(e.resumeTo))
		e.logger.Debug("phase", "event", "resume", "from", PhasePaused, "to", e.resumeTo)
	}
}

func (e *Engine) spawn() {
	e.piece = e.spawnPiece(e.next)
	e.next = e.gen.Next()
	e.restartTimer()
	e.fire(evSpawned)
}

func (e *Engine) settleIfAttached() {
	if attached(e.grid, e.piece) {
		e.fire(evSettle)
	}
}

func (e *Engine) shiftSideways(dc int) {
	if WouldCollide(e.grid, e.piece.Mask, e.piece.Row, e.piece.Col+dc, CheckWall) {
		return
	}
	e.piece.Col += dc
	e.settleIfAttached()
}

func (e *Engine) rotate() {
	cand := e.piece.Mask.Rotate()
	if !WouldCollide(e.grid, cand, e.piece.Row, e.piece.Col, CheckRotate) {
		e.piece.Mask = cand
	}
	e.settleIfAttached()
}

func (e *Engine) hardDrop() {
	for !attached(e.grid, e.piece) {
		e.piece.Row++
	}
	e.fire(evSettle)
}

// fall moves the piece one row on a gravity tick, or settles it.
func (e *Engine) fall() {
	if attached(e.grid, e.piece) {
		e.fire(evSettle)
		return
	}
	e.piece.Row++
	e.restartTimer()
	e.fire(evShifted)
}

// bake writes the piece into the grid. A piece still poking above the
// field ends the game.
func (e *Engine) bake() {
	over := false
	e.piece.Mask.each(func(i, j int) {
		r, c := e.piece.Row-i, e.piece.Col+j
		if r < 0 {
			over = true
			return
		}
		if e.grid.InBounds(r, c) {
			e.grid.fill(r, c)
		}
	})

	if over {
		e.flushHighScore()
		e.fire(evLose)
		e.logger.Info("game over", "score", e.score, "level", e.level)
		return
	}

	if lines := ClearLines(e.grid); lines > 0 {
		gained := LineScore(lines, e.cfg.Scoring.LinePoints)
		e.score += gained
		e.updateLevel()
		e.logger.Debug("lines cleared", "lines", lines, "points", gained, "score", e.score)
	}
	e.flushHighScore()
	e.fire(evBaked)
}

// updateLevel raises the level and gravity speed; neither ever goes back.
func (e *Engine) updateLevel() {
	lvl := LevelFor(e.score, e.cfg.Scoring)
	if lvl <= e.level {
		return
	}
	e.level = lvl
	e.speed = SpeedFor(lvl, e.cfg)
	e.logger.Info("level up", "level", lvl, "speed", e.speed)
}
