package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickgame/internal/storage"
)

type fakeSource struct {
	byMode map[string][]storage.ScoreEntry
	asked  []string
}

func (f *fakeSource) TopScores(mode string, limit int) ([]storage.ScoreEntry, error) {
	f.asked = append(f.asked, mode)
	if mode == "" {
		var all []storage.ScoreEntry
		for _, e := range f.byMode {
			all = append(all, e...)
		}
		return all, nil
	}
	return f.byMode[mode], nil
}

func TestScoreboardCyclesModes(t *testing.T) {
	src := &fakeSource{byMode: map[string][]storage.ScoreEntry{
		"hard": {{Mode: "hard", Score: 900, Level: 2}},
	}}
	m := NewScoreboardModel(src, 80, 24)
	assert.Equal(t, "", m.Mode())
	assert.Len(t, m.scores, 1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "easy", m.Mode())
	assert.Empty(t, m.scores)
	assert.Contains(t, m.View(), "No scores recorded yet")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "fixed", m.Mode())
	assert.Equal(t, []string{"", "easy", "", "fixed"}, src.asked)
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}
