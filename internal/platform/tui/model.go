package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/tetris"
)

// ScoreRecorder appends finished sessions to the score history.
type ScoreRecorder interface {
	SaveScore(mode string, score, level int) (int64, error)
}

// Options configures a game session model.
type Options struct {
	History ScoreRecorder // Optional
	Mode    string        // Recorded with each history entry
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving one engine.
type Model struct {
	engine     *tetris.Engine
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	history    ScoreRecorder
	mode       string
	logger     *log.Logger
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether the current game's final score has been recorded
}

// NewModel creates a Bubble Tea model for engine.
func NewModel(engine *tetris.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	snap := engine.Snapshot()
	fieldW := 0
	if len(snap.Field) > 0 {
		fieldW = len(snap.Field[0])
	}
	w, h := BoardSize(len(snap.Field), fieldW)

	return Model{
		engine:  engine,
		screen:  core.NewScreen(w, h),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		history: opts.History,
		mode:    opts.Mode,
		logger:  logger,
	}
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, ok := m.keys.Action(msg)
	if !ok {
		return m, nil
	}

	// A key may arrive after the deadline but before the tick message.
	// Finish the overdue fall so the key lands on a moving piece.
	drain(m.engine)

	if action == core.ActionTerminate {
		if m.engine.Score() > 0 {
			m.recordScore()
		}
		m.engine.Submit(action)
		m.quitting = true
		return m, tea.Quit
	}

	before := m.engine.Phase()
	m.engine.Submit(action)
	if before == tetris.PhaseGameOver && m.engine.Phase() == tetris.PhaseInitial {
		m.scoreSaved = false
	}

	drain(m.engine)
	m.recordIfOver()
	return m, nil
}

// handleTick advances gravity and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	drain(m.engine)
	m.recordIfOver()
	return m, tickCmd(m.engine)
}

func (m *Model) recordIfOver() {
	if m.engine.Phase() == tetris.PhaseGameOver && m.engine.Score() > 0 {
		m.recordScore()
	}
}

// recordScore saves the current score to history once per game.
func (m *Model) recordScore() {
	if m.scoreSaved || m.history == nil {
		return
	}
	m.scoreSaved = true

	if _, err := m.history.SaveScore(m.mode, m.engine.Score(), m.engine.Level()); err != nil {
		m.logger.Warn("could not record score", "score", m.engine.Score(), "error", err)
		return
	}
	m.logger.Info("score recorded", "mode", m.mode, "score", m.engine.Score(), "level", m.engine.Level())
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".brickgame", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("brickgame_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) draw() {
	m.screen.Clear()
	DrawBoard(m.screen, m.engine.Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	out := RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// Run starts the Bubble Tea program for engine and blocks until the player quits.
func Run(engine *tetris.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
