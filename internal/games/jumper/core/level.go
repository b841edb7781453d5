package core

import (
	"math"
	"math/rand"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
)

// stepEpsilon is the smallest remainder Animate still simulates.
const stepEpsilon = 1e-9

// Status is the win/loss state of a level attempt.
type Status uint8

const (
	StatusRunning Status = iota
	StatusLost
	StatusWon
)

// String returns "running", "lost" or "won".
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Options configures a new Level.
type Options struct {
	Physics Physics // Zero value means DefaultPhysics
	Seed    int64   // Seeds the cosmetic coin phases
}

// Level is the runtime of one attempt at a plan. It exclusively owns its grid
// and actors; a restart builds a new Level.
type Level struct {
	grid   *Grid
	actors []*Actor
	player *Actor
	coins  int

	status      Status
	finishDelay float64
	finishSent  bool

	phys    Physics
	touches []Touch // Effective touches of the current Animate call
}

// StepResult reports what one Animate call did.
type StepResult struct {
	Status    Status
	Touches   []Touch // Lava and coin contacts, in order
	CoinsLeft int

	// Finished is true on exactly one call per level: the first one after
	// which IsFinished reports true.
	Finished bool
}

// NewLevel builds a level from a plan. Malformed plans are rejected with a
// *PlanError.
func NewLevel(plan Plan, opts Options) (*Level, error) {
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}

	phys := opts.Physics.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	width, height := plan.Width(), plan.Height()
	l := &Level{
		grid: &Grid{
			width:  width,
			height: height,
			tiles:  make([][]Tile, height),
		},
		phys: phys,
	}

	for y, row := range plan {
		l.grid.tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			pos := V(float64(x), float64(y))
			switch ch := row[x]; ch {
			case SymbolWall:
				l.grid.tiles[y][x] = TileWall
			case SymbolLava:
				l.grid.tiles[y][x] = TileLava
			case SymbolPlayer:
				l.player = newPlayer(pos)
				l.actors = append(l.actors, l.player)
			case SymbolCoin:
				l.actors = append(l.actors, newCoin(pos, rng.Float64()*2*math.Pi))
				l.coins++
			case SymbolLavaX, SymbolLavaY, SymbolLavaDrip:
				l.actors = append(l.actors, newLava(pos, ch, phys))
			}
		}
	}

	return l, nil
}

// Width returns the level width in grid units.
func (l *Level) Width() int {
	return l.grid.width
}

// Height returns the level height in grid units.
func (l *Level) Height() int {
	return l.grid.height
}

// Grid returns the static tile layout.
func (l *Level) Grid() *Grid {
	return l.grid
}

// Status returns the current win/loss state.
func (l *Level) Status() Status {
	return l.status
}

// FinishDelay returns the remaining grace period. It is meaningful only once
// Status is no longer StatusRunning.
func (l *Level) FinishDelay() float64 {
	return l.finishDelay
}

// Physics returns the tuning this level runs with.
func (l *Level) Physics() Physics {
	return l.phys
}

// CoinsLeft returns the number of coins still in play.
func (l *Level) CoinsLeft() int {
	return l.coins
}

// Player returns a copy of the player actor.
func (l *Level) Player() Actor {
	return *l.player
}

// ObstacleAt reports the obstacle overlapped by a box. See Grid.ObstacleAt.
func (l *Level) ObstacleAt(pos, size Vec) Tile {
	return l.grid.ObstacleAt(pos, size)
}

// ActorAt returns the first live actor other than a that overlaps it.
func (l *Level) ActorAt(a *Actor) *Actor {
	for _, other := range l.actors {
		if other != a && a.Overlaps(other) {
			return other
		}
	}
	return nil
}

// IsFinished reports whether the level has ended and its grace period has
// run out.
func (l *Level) IsFinished() bool {
	return l.status != StatusRunning && l.finishDelay < 0
}

// Animate advances the simulation by step seconds of game time.
//
// The step is cut into substeps no longer than Physics.MaxStep; every live
// actor acts once per substep in list order.
func (l *Level) Animate(step float64, keys platformcore.Keys) StepResult {
	l.touches = nil

	for step > stepEpsilon {
		sub := math.Min(step, l.phys.MaxStep)
		if l.status != StatusRunning {
			l.finishDelay -= sub
		}

		// Coin pickups replace l.actors; keep iterating the list we started with.
		actors := l.actors
		for _, a := range actors {
			l.act(a, sub, keys)
		}

		step -= sub
	}

	result := StepResult{
		Status:    l.status,
		Touches:   l.touches,
		CoinsLeft: l.coins,
	}
	if !l.finishSent && l.IsFinished() {
		l.finishSent = true
		result.Finished = true
	}
	return result
}

// act dispatches one substep to the behavior of the actor's kind.
func (l *Level) act(a *Actor, step float64, keys platformcore.Keys) {
	switch a.Kind {
	case KindPlayer:
		l.actPlayer(a, step, keys)
	case KindCoin:
		l.actCoin(a, step)
	case KindLava:
		l.actLava(a, step)
	}
}

// PlayerTouched applies a contact to the win/loss state machine.
//
//   - Lava ends the level as lost, unless it has already ended.
//   - A coin is removed while the level runs; taking the last one wins.
//   - Walls change nothing; movement already refused to enter them.
func (l *Level) PlayerTouched(t Touch) {
	switch t.Kind {
	case TouchLava:
		l.touches = append(l.touches, t)
		if l.status == StatusRunning {
			l.end(StatusLost)
		}

	case TouchCoin:
		if l.status != StatusRunning || t.Actor == nil || !l.removeCoin(t.Actor) {
			return
		}
		l.touches = append(l.touches, t)
		if l.coins == 0 && l.status == StatusRunning {
			l.end(StatusWon)
		}
	}
}

// end moves the level into a terminal status and arms the grace period.
func (l *Level) end(s Status) {
	l.status = s
	l.finishDelay = l.phys.FinishDelay
}

// removeCoin drops c from the live actors. The list is rebuilt rather than
// edited in place so an in-progress iteration stays valid.
func (l *Level) removeCoin(c *Actor) bool {
	if c.Kind != KindCoin {
		return false
	}

	kept := make([]*Actor, 0, len(l.actors))
	found := false
	for _, a := range l.actors {
		if a == c {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return false
	}

	l.actors = kept
	l.coins--
	return true
}
