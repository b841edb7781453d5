package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	if err := registry.RegisterPack(fallPack); err != nil {
		t.Fatalf("RegisterPack: %v", err)
	}
	t.Cleanup(func() { registry.Unregister(fallPack.ID) })

	return NewSessionModel(SessionOptions{
		Runtime:  core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 20, Seed: 1},
		Jumper:   config.DefaultJumperConfig(),
		Username: "tester",
		Online:   func() int { return 3 },
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm, cmd
}

// selectPack moves the menu cursor onto the fall pack and plays it.
func selectPack(t *testing.T, m SessionModel) (SessionModel, tea.Cmd) {
	t.Helper()
	for i, item := range m.menu.items {
		if item.PackID == fallPack.ID {
			m.menu.cursor = i
			return sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		}
	}
	t.Fatal("fall pack missing from the menu")
	return m, nil
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	if !strings.Contains(m.View(), "3 online") {
		t.Error("menu should show the online count")
	}

	m, cmd := selectPack(t, m)
	if m.screen != screenGame || m.game == nil {
		t.Fatal("selecting a pack should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule the first tick")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Error("esc should return to the menu")
	}
	if m.quitting {
		t.Error("leaving a game must not end the session")
	}
}

func TestSessionDropsTicksOfFinishedGame(t *testing.T) {
	m := newTestSession(t)
	m, _ = selectPack(t, m)
	old := TickMsg{Owner: m.game.owner, Gen: m.game.gen}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = selectPack(t, m)

	if _, cmd := sessionUpdate(t, m, old); cmd != nil {
		t.Error("a tick from the previous game should not keep a chain alive")
	}
}

func TestSessionRecordsScreen(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenRecords {
		t.Fatal("tab should open the records screen")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("records screen without a store should be empty")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc on records should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	m, _ = selectPack(t, m)

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in a game should end the session")
	}
	if m.View() != "" {
		t.Error("a quitting session should render nothing")
	}
}
