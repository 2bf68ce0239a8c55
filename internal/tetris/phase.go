package tetris

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// Phase is the current state of the piece lifecycle.
type Phase string

const (
	PhaseInitial   Phase = "initial"
	PhaseSpawn     Phase = "spawn"
	PhaseMoving    Phase = "moving"
	PhaseShifting  Phase = "shifting"
	PhaseAttaching Phase = "attaching"
	PhasePaused    Phase = "paused"
	PhaseGameOver  Phase = "gameover"
)

// Lifecycle events. Resuming from pause restores the remembered phase
// directly, so it has no event of its own.
const (
	evStart   = "start"
	evSpawned = "spawned"
	evFall    = "fall"
	evShifted = "shifted"
	evSettle  = "settle"
	evPause   = "pause"
	evBaked   = "baked"
	evLose    = "lose"
	evRestart = "restart"
)

func phaseTransitions() fsm.Events {
	return fsm.Events{
		{Name: evStart, Src: []string{string(PhaseInitial)}, Dst: string(PhaseSpawn)},
		{Name: evSpawned, Src: []string{string(PhaseSpawn)}, Dst: string(PhaseMoving)},

		// Gravity
		{Name: evFall, Src: []string{string(PhaseMoving)}, Dst: string(PhaseShifting)},
		{Name: evShifted, Src: []string{string(PhaseShifting)}, Dst: string(PhaseMoving)},
		{Name: evSettle, Src: []string{string(PhaseMoving), string(PhaseShifting)}, Dst: string(PhaseAttaching)},

		{Name: evPause, Src: []string{string(PhaseMoving), string(PhaseShifting)}, Dst: string(PhasePaused)},

		// Bake outcome
		{Name: evBaked, Src: []string{string(PhaseAttaching)}, Dst: string(PhaseSpawn)},
		{Name: evLose, Src: []string{string(PhaseAttaching)}, Dst: string(PhaseGameOver)},

		{Name: evRestart, Src: []string{string(PhaseGameOver)}, Dst: string(PhaseInitial)},
	}
}

func newPhaseMachine(logger *log.Logger) *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseInitial),
		phaseTransitions(),
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("phase", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// PauseStatus is the externally reported pause indicator.
type PauseStatus int

const (
	PauseNone PauseStatus = iota
	PausePaused
	PauseGameOver
)

// String returns the status text shown by front ends.
func (s PauseStatus) String() string {
	switch s {
	case PausePaused:
		return "paused"
	case PauseGameOver:
		return "game over"
	default:
		return "none"
	}
}

// PauseStatusOf maps a lifecycle phase to the reported pause status.
func PauseStatusOf(p Phase) PauseStatus {
	switch p {
	case PhasePaused:
		return PausePaused
	case PhaseGameOver:
		return PauseGameOver
	default:
		return PauseNone
	}
}
