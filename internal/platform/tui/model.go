package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

// ModelOptions configures a Model beyond the game itself.
type ModelOptions struct {
	Player string        // Name stored with finished runs
	Hold   time.Duration // How long a key press counts as held
	Logger *log.Logger   // Nil discards log output

	// ExitOnBack ends the program when the player leaves the game,
	// for front ends without an enclosing menu model.
	ExitOnBack bool
}

// Model is the Bubble Tea model that plays one campaign.
type Model struct {
	game       *jumper.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	held       *HeldKeys
	help       help.Model
	player     string
	exitOnBack bool

	owner      uint64
	gen        uint64
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a model for game and starts its driver. The first tick
// is scheduled by Init.
func NewModel(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "player"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(opts.Hold),
		help:       h,
		player:     player,
		exitOnBack: opts.ExitOnBack,
		owner:      nextOwner(),
		gen:        game.Start(),
	}
}

// gameHeight leaves the last terminal row for the help line.
func gameHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return 1
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.owner, m.gen, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.leave()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsMovement():
		m.held.Press(action, time.Now())

	case action == core.ActionPause:
		m.game.TogglePause()
		m.held.Release()

	case action == core.ActionRestart:
		if m.game.Restart() {
			m.held.Release()
			m.logger.Debug("level restarted", "pack", m.game.ID(), "level", m.game.Sequence().Index()+1)
		}

	case action == core.ActionBack:
		return m.goBack()

	case action == core.ActionConfirm:
		if m.game.Stats().Complete {
			return m.goBack()
		}
	}

	return m, nil
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	m.leave()
	m.backToMenu = true
	if m.exitOnBack {
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The level keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game. Ticks scheduled by another model or an
// earlier driver generation are dropped without scheduling a successor.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Owner != m.owner || msg.Gen != m.gen || m.quitting || m.backToMenu {
		return m, nil
	}

	res := m.game.Frame(msg.Gen, msg.Time, m.held.Sample(msg.Time))
	if res.Event != jumper.EventNone {
		m.logEvent(res.Event)
	}
	if res.Event == jumper.EventComplete {
		m.saveRun()
	}

	if m.game.Driver().Phase() == jumper.PhaseDone {
		return m, nil
	}
	return m, tickCmd(m.owner, m.gen, m.config.TickRate)
}

func (m *Model) logEvent(e jumper.Event) {
	stats := m.game.Stats()
	m.logger.Debug("level event",
		"pack", m.game.ID(),
		"event", e,
		"level", m.game.Sequence().Index()+1,
		"deaths", stats.Deaths,
	)
	if e == jumper.EventComplete {
		m.logger.Info("pack complete",
			"pack", m.game.ID(),
			"player", m.player,
			"deaths", stats.Deaths,
			"elapsed", stats.Elapsed.Round(time.Millisecond),
		)
	}
}

// leave stops the driver and records the run if it got anywhere.
func (m *Model) leave() {
	m.game.Stop()
	m.held.Release()
	if m.game.Stats().LevelsCleared > 0 {
		m.saveRun()
	}
}

// saveRun stores the campaign totals once per model.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	stats := m.game.Stats()
	id, err := m.store.SaveRun(storage.Run{
		PackID:        m.game.ID(),
		Player:        m.player,
		LevelsCleared: stats.LevelsCleared,
		LevelCount:    stats.LevelCount,
		Deaths:        stats.Deaths,
		Coins:         stats.Coins,
		Duration:      stats.Elapsed,
		Completed:     stats.Complete,
	})
	if err != nil {
		m.logger.Warn("could not save run", "pack", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "pack", m.game.ID())
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".jumper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Stats returns the campaign totals so far.
func (m Model) Stats() jumper.Stats {
	return m.game.Stats()
}

// RunResult reports how a local game ended.
type RunResult struct {
	BackToMenu bool
	Stats      jumper.Stats
}

// Run starts a Bubble Tea program for game and blocks until it exits.
func Run(game *jumper.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) (RunResult, error) {
	opts.ExitOnBack = true
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{Stats: game.Stats()}
	if fm, ok := final.(Model); ok {
		result.BackToMenu = fm.BackToMenu()
	}
	return result, nil
}
