package jumper

import (
	"time"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

// Options configures a Game.
type Options struct {
	StartLevel int   // 0-based
	Seed       int64 // Cosmetic seed
}

// Game is one campaign through a pack, ready to be driven by a tick source
// and drawn into a screen.
type Game struct {
	cfg    config.JumperConfig
	seq    *Sequence
	driver *Driver
	camera camera
}

// NewGame builds a game for pack using cfg for physics, timing and drawing.
// The game is stopped until Start is called.
func NewGame(pack registry.Pack, cfg config.JumperConfig, opts Options) (*Game, error) {
	dm := config.NewDifficultyManager(cfg.Difficulty)

	seq, err := NewSequence(pack, SequenceOptions{
		Start: opts.StartLevel,
		Physics: func(index int) core.Physics {
			return cfg.PhysicsForLevel(dm, index)
		},
		Seed: opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	driver := NewDriver(seq, DriverConfig{
		MaxFrame:  cfg.Timing.MaxFrame(),
		LossPause: cfg.Timing.LossPause(),
		WinPause:  cfg.Timing.WinPause(),
	})

	return &Game{
		cfg:    cfg,
		seq:    seq,
		driver: driver,
	}, nil
}

// ID returns the pack ID.
func (g *Game) ID() string {
	return g.seq.Pack().ID
}

// Title returns the pack title.
func (g *Game) Title() string {
	return g.seq.Pack().Title
}

// Start begins a new driver generation and returns it.
func (g *Game) Start() uint64 {
	return g.driver.Start()
}

// Stop cancels the driver. Pending ticks become no-ops.
func (g *Game) Stop() {
	g.driver.Stop()
}

// Frame advances the game to now. Frames from another generation are ignored.
func (g *Game) Frame(gen uint64, now time.Time, keys platformcore.Keys) FrameResult {
	return g.driver.Frame(gen, now, keys)
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.driver.SetPaused(!g.driver.Paused())
}

// Restart abandons the current attempt. Reports whether it was applied.
func (g *Game) Restart() bool {
	return g.driver.Restart()
}

// Sequence exposes the level sequence.
func (g *Game) Sequence() *Sequence {
	return g.seq
}

// Driver exposes the frame driver.
func (g *Game) Driver() *Driver {
	return g.driver
}

// Stats returns the campaign totals so far.
func (g *Game) Stats() Stats {
	return g.seq.Stats()
}

// State returns the platform-facing state.
func (g *Game) State() platformcore.GameState {
	stats := g.seq.Stats()
	return platformcore.GameState{
		Level:         g.seq.Index() + 1,
		LevelCount:    g.seq.Count(),
		Coins:         g.seq.Collected(),
		CoinsTotal:    g.seq.TotalCoins(),
		Deaths:        stats.Deaths,
		LevelsCleared: stats.LevelsCleared,
		Complete:      stats.Complete,
		Paused:        g.driver.Paused(),
	}
}
