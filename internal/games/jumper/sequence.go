// Package jumper runs level packs on top of the platformer engine: it
// sequences levels, paces the simulation against wall-clock time and draws
// the result into a platform screen.
package jumper

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

// SequenceOptions configures a Sequence.
type SequenceOptions struct {
	Start   int                          // 0-based index of the first level
	Physics func(index int) core.Physics // Per-level tuning; nil means defaults
	Seed    int64                        // Cosmetic seed for coin phases
}

// Stats summarizes a campaign so far.
type Stats struct {
	LevelsCleared int
	LevelCount    int
	Deaths        int
	Coins         int           // Coins banked from cleared levels
	Elapsed       time.Duration // Simulated time across all attempts
	Complete      bool
}

// Sequence walks through the levels of a pack. It owns the live level;
// losing rebuilds the same plan and winning moves on to the next one.
type Sequence struct {
	pack    registry.Pack
	plans   []core.Plan
	physics func(int) core.Physics
	seed    int64

	index    int
	level    *core.Level
	attempts int

	deaths   int
	cleared  int
	banked   int
	elapsed  float64
	complete bool
}

// NewSequence validates every plan of the pack and builds its first level.
func NewSequence(pack registry.Pack, opts SequenceOptions) (*Sequence, error) {
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("jumper: pack %q has no levels", pack.ID)
	}
	if opts.Start < 0 || opts.Start >= len(pack.Levels) {
		return nil, fmt.Errorf("jumper: pack %q has no level %d", pack.ID, opts.Start+1)
	}

	plans := make([]core.Plan, len(pack.Levels))
	for i, lvl := range pack.Levels {
		plans[i] = core.Plan(lvl.Plan)
		if err := core.ValidatePlan(plans[i]); err != nil {
			return nil, fmt.Errorf("jumper: pack %q level %d (%s): %w", pack.ID, i+1, lvl.Name, err)
		}
	}

	s := &Sequence{
		pack:    pack,
		plans:   plans,
		physics: opts.Physics,
		seed:    opts.Seed,
		index:   opts.Start,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build replaces the live level with a fresh instance of the current plan.
func (s *Sequence) build() error {
	phys := core.DefaultPhysics()
	if s.physics != nil {
		phys = s.physics(s.index)
	}

	level, err := core.NewLevel(s.plans[s.index], core.Options{
		Physics: phys,
		Seed:    s.seed + int64(s.index)*1000 + int64(s.attempts),
	})
	if err != nil {
		return fmt.Errorf("jumper: level %d: %w", s.index+1, err)
	}

	s.level = level
	s.attempts++
	return nil
}

// Step advances the live level. A completed sequence is not stepped.
func (s *Sequence) Step(dt float64, keys platformcore.Keys) core.StepResult {
	if s.complete {
		return core.StepResult{Status: s.level.Status(), CoinsLeft: s.level.CoinsLeft()}
	}
	s.elapsed += dt
	return s.level.Animate(dt, keys)
}

// Finish applies the outcome of a finished level: a loss rebuilds the same
// plan, a win advances to the next one or completes the sequence.
func (s *Sequence) Finish(status core.Status) {
	if s.complete {
		return
	}

	switch status {
	case core.StatusLost:
		s.deaths++
		s.mustBuild()

	case core.StatusWon:
		s.cleared++
		s.banked += s.TotalCoins()
		if s.index+1 >= len(s.plans) {
			s.complete = true
			return
		}
		s.index++
		s.attempts = 0
		s.mustBuild()
	}
}

// Restart abandons the current attempt. It counts as a death.
func (s *Sequence) Restart() {
	if s.complete {
		return
	}
	s.deaths++
	s.mustBuild()
}

// mustBuild rebuilds a plan that already passed validation.
func (s *Sequence) mustBuild() {
	if err := s.build(); err != nil {
		panic(err)
	}
}

// Level returns the live level.
func (s *Sequence) Level() *core.Level {
	return s.level
}

// Index returns the 0-based index of the current level.
func (s *Sequence) Index() int {
	return s.index
}

// Count returns the number of levels in the pack.
func (s *Sequence) Count() int {
	return len(s.plans)
}

// Pack returns the pack being played.
func (s *Sequence) Pack() registry.Pack {
	return s.pack
}

// LevelName returns the name of the current level.
func (s *Sequence) LevelName() string {
	return s.pack.Levels[s.index].Name
}

// Complete reports whether every level has been won.
func (s *Sequence) Complete() bool {
	return s.complete
}

// TotalCoins returns the number of coins in the current plan.
func (s *Sequence) TotalCoins() int {
	return s.plans[s.index].Count(core.SymbolCoin)
}

// Collected returns the coins taken in the current attempt.
func (s *Sequence) Collected() int {
	return s.TotalCoins() - s.level.CoinsLeft()
}

// Stats returns the campaign totals so far.
func (s *Sequence) Stats() Stats {
	return Stats{
		LevelsCleared: s.cleared,
		LevelCount:    len(s.plans),
		Deaths:        s.deaths,
		Coins:         s.banked,
		Elapsed:       time.Duration(s.elapsed * float64(time.Second)),
		Complete:      s.complete,
	}
}
