package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickgame/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q", runeKey('q'), core.ActionTerminate},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionTerminate},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"x", runeKey('x'), core.ActionRotate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Action(tt.msg)
			if !ok {
				t.Fatalf("Key %q not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapUnmapped(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{runeKey('z'), runeKey('?'), {Type: tea.KeyCtrlS}} {
		if a, ok := km.Action(msg); ok {
			t.Errorf("Key %q should not map to an action, got %s", msg.String(), a)
		}
	}
}
