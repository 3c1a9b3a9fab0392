package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avorobev/breakout-tui/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		want     core.Action
		wantQuit bool
	}{
		{"left", core.ActionLeft, false},
		{"a", core.ActionLeft, false},
		{"right", core.ActionRight, false},
		{"d", core.ActionRight, false},
		{"enter", core.ActionConfirm, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, isQuit := km.MapKey(keyMsg(tt.key))
			if action != tt.want {
				t.Errorf("action = %v, want %v", action, tt.want)
			}
			if isQuit != tt.wantQuit {
				t.Errorf("isQuit = %v, want %v", isQuit, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("a"), &frame); quit {
		t.Error("a reported as quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame missing ActionLeft")
	}

	// Unknown keys leave the frame untouched
	km.MapKeyToFrame(keyMsg("x"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone recorded in frame")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("q not reported as quit")
	}
}
