package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/storage"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

type fakeHistory struct {
	entries []storage.ScoreEntry
}

func (h *fakeHistory) SaveScore(mode string, score, level int) (int64, error) {
	h.entries = append(h.entries, storage.ScoreEntry{Mode: mode, Score: score, Level: level})
	return int64(len(h.entries)), nil
}

func newTestModel(t *testing.T) (Model, *tetris.Engine, *core.ManualClock, *fakeHistory) {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	engine, err := tetris.New(tetris.Options{
		Config: config.DefaultTetrisConfig(),
		Seed:   1,
		Clock:  clock,
		Store:  storage.NewMemoryStore(),
	})
	require.NoError(t, err)

	history := &fakeHistory{}
	return NewModel(engine, Options{History: history, Mode: "normal"}), engine, clock, history
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestStartSpawnsImmediately(t *testing.T) {
	m, engine, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, tetris.PhaseMoving, engine.Phase())
}

func TestTickAppliesGravity(t *testing.T) {
	m, engine, clock, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	before := engine.Snapshot()

	// Three rows down every mask has a cell inside the field.
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		clock.Advance(engine.Speed())
		m, cmd = update(t, m, TickMsg(clock.Now()))
		require.NotNil(t, cmd, "tick chain must continue")
	}

	assert.Equal(t, tetris.PhaseMoving, engine.Phase())
	assert.Equal(t, engine.Speed(), engine.TimeRemaining())
	assert.NotEqual(t, before.Field, engine.Snapshot().Field)
}

func TestPauseKeyStopsTimer(t *testing.T) {
	m, engine, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey('p'))
	assert.Equal(t, tetris.PhasePaused, engine.Phase())
	assert.Equal(t, tetris.NoDeadline, engine.TimeRemaining())

	m, _ = update(t, m, runeKey('p'))
	assert.Equal(t, tetris.PhaseMoving, engine.Phase())
}

func TestQuitTerminatesEngine(t *testing.T) {
	m, engine, _, history := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, engine.Terminated())
	assert.Empty(t, history.entries, "zero scores are not recorded")
	assert.Empty(t, m.View())
}

func TestGameOverWithoutPointsNotRecorded(t *testing.T) {
	m, engine, _, history := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Drop pieces until the stack reaches the top.
	for i := 0; i < 200 && engine.Phase() != tetris.PhaseGameOver; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	require.Equal(t, tetris.PhaseGameOver, engine.Phase())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(time.Now()))

	// Hard drops in the centre never clear lines, so the score is zero and nothing is recorded.
	assert.Empty(t, history.entries)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, tetris.PhaseInitial, engine.Phase())
}

func TestViewShowsBoard(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	out := m.View()

	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "PRESS ENTER")
	assert.True(t, strings.Contains(out, "start"), "help footer lists the start key")
}

func TestKeyAfterDeadlineIsNotDropped(t *testing.T) {
	m, engine, clock, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 2; i++ {
		clock.Advance(engine.Speed())
		m, _ = update(t, m, TickMsg(clock.Now()))
	}

	// Same seed driven by hand: three gravity steps, then Left.
	ref, err := tetris.New(tetris.Options{
		Config: config.DefaultTetrisConfig(),
		Seed:   1,
		Clock:  clock,
	})
	require.NoError(t, err)
	ref.Submit(core.ActionStart)
	ref.Submit(core.ActionNone)
	for i := 0; i < 3; i++ {
		ref.Submit(core.ActionNone)
		ref.Submit(core.ActionNone)
	}
	require.Equal(t, tetris.PhaseMoving, ref.Phase())
	fallen := ref.Snapshot().Field
	ref.Submit(core.ActionLeft)

	// The key arrives before the TickMsg for the passed deadline.
	clock.Advance(engine.Speed())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	assert.Equal(t, tetris.PhaseMoving, engine.Phase())
	assert.NotEqual(t, fallen, engine.Snapshot().Field, "left must not be swallowed by the pending fall")
	assert.Equal(t, ref.Snapshot().Field, engine.Snapshot().Field)
}
