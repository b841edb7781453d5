package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

// fallPack is cleared by standing still: the player drops onto the coin.
var fallPack = registry.Pack{
	ID:    "fall",
	Title: "Fall",
	Levels: []registry.Level{
		{Name: "Drop", Plan: []string{
			"x@x",
			"x x",
			"xox",
			"xxx",
		}},
	},
}

func newTestModel(t *testing.T, store *storage.Store, opts ModelOptions) Model {
	t.Helper()
	game, err := jumper.NewGame(fallPack, config.DefaultJumperConfig(), jumper.Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 20}
	return NewModel(game, store, cfg, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// playUntilDone feeds 50ms ticks until the tick chain ends.
func playUntilDone(t *testing.T, m Model, limit int) Model {
	t.Helper()
	now := time.Unix(1000, 0)
	for i := 0; i < limit; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg{Owner: m.owner, Gen: m.gen, Time: now})
		if cmd == nil {
			return m
		}
		now = now.Add(50 * time.Millisecond)
	}
	t.Fatalf("tick chain still running after %d ticks", limit)
	return m
}

func TestModelDropsForeignTicks(t *testing.T) {
	m := newTestModel(t, nil, ModelOptions{})
	now := time.Unix(1000, 0)

	tests := []struct {
		name string
		msg  TickMsg
	}{
		{"other owner", TickMsg{Owner: m.owner + 1, Gen: m.gen, Time: now}},
		{"old generation", TickMsg{Owner: m.owner, Gen: m.gen + 1, Time: now}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, cmd := update(t, m, tt.msg); cmd != nil {
				t.Error("foreign tick should not schedule another tick")
			}
		})
	}

	if _, cmd := update(t, m, TickMsg{Owner: m.owner, Gen: m.gen, Time: now}); cmd == nil {
		t.Error("own tick should schedule the next tick")
	}
}

func TestModelOwnersAreUnique(t *testing.T) {
	a := newTestModel(t, nil, ModelOptions{})
	b := newTestModel(t, nil, ModelOptions{})
	if a.owner == b.owner {
		t.Errorf("two models share owner %d", a.owner)
	}
}

func TestModelCompletesAndSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store, ModelOptions{Player: "tester"})
	m = playUntilDone(t, m, 400)

	if !m.Stats().Complete {
		t.Fatal("pack should be complete when the tick chain ends")
	}

	runs, err := store.TopRuns("fall", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if !runs[0].Completed || runs[0].Player != "tester" || runs[0].LevelsCleared != 1 {
		t.Errorf("run = %+v", runs[0])
	}

	// Leaving afterwards must not store the run twice.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.BackToMenu() {
		t.Error("enter on a complete pack should go back to the menu")
	}
	runs, _ = store.TopRuns("fall", 10)
	if len(runs) != 1 {
		t.Errorf("got %d runs after leaving, want 1", len(runs))
	}
}

func TestModelQuitWithoutProgressSavesNothing(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store, ModelOptions{})
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}

	runs, _ := store.TopRuns("fall", 10)
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestModelBack(t *testing.T) {
	t.Run("inside a session", func(t *testing.T) {
		m := newTestModel(t, nil, ModelOptions{})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() {
			t.Error("esc should request the menu")
		}
		if cmd != nil {
			t.Error("esc inside a session should not quit the program")
		}
		if m.game.Driver().Running() {
			t.Error("leaving should stop the driver")
		}
	})

	t.Run("standalone", func(t *testing.T) {
		m := newTestModel(t, nil, ModelOptions{ExitOnBack: true})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || cmd == nil {
			t.Error("esc should end a standalone program")
		}
	})
}

func TestModelPauseToggles(t *testing.T) {
	m := newTestModel(t, nil, ModelOptions{})
	m, _ = update(t, m, runeKey('p'))
	if !m.game.State().Paused {
		t.Fatal("p should pause")
	}
	m, _ = update(t, m, runeKey('p'))
	if m.game.State().Paused {
		t.Error("second p should resume")
	}
}

func TestModelResizeKeepsHelpLine(t *testing.T) {
	m := newTestModel(t, nil, ModelOptions{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19", m.screen.Width(), m.screen.Height())
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, want 20", len(lines))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{75 * time.Second, "1:15.0"},
		{-time.Second, "0:00.0"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorCoin)
	s.DrawText(2, 0, "cd")
	s.DrawTextColor(0, 1, "ef", core.Color(200)) // unknown slot falls back

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen %q is missing %q", out, want)
		}
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("rendered screen has %d newlines, want 1", n)
	}
}
