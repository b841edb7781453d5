package jumper

import (
	"time"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

// Phase is what the driver does with incoming frames.
type Phase uint8

const (
	PhasePlaying      Phase = iota // Frames step the live level
	PhaseIntermission              // A level finished; waiting to restart or advance
	PhaseDone                      // The sequence is complete
)

// Event is a sequencing change reported by a frame.
type Event uint8

const (
	EventNone      Event = iota
	EventLost            // A level finished lost; intermission started
	EventWon             // A level finished won; intermission started
	EventRestarted       // The lost level was rebuilt
	EventAdvanced        // The next level was built
	EventComplete        // The last level was won
)

// String returns a short event name for logs.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	case EventRestarted:
		return "restarted"
	case EventAdvanced:
		return "advanced"
	case EventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// DriverConfig holds the driver's timing.
type DriverConfig struct {
	MaxFrame  time.Duration // Longest gap simulated at once
	LossPause time.Duration // Intermission before a lost level restarts
	WinPause  time.Duration // Intermission before the next level
}

// DefaultDriverConfig returns the standard timing.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		MaxFrame:  100 * time.Millisecond,
		LossPause: 500 * time.Millisecond,
		WinPause:  time.Second,
	}
}

// FrameResult reports what one frame did.
type FrameResult struct {
	Stepped bool            // The level was animated
	Step    core.StepResult // Valid when Stepped
	Event   Event
}

// Driver paces a Sequence against wall-clock samples.
//
// Every Start returns a new generation; frames tagged with any other
// generation are ignored, so a tick source left over from an earlier start
// cannot advance the game.
type Driver struct {
	seq *Sequence
	cfg DriverConfig

	gen     uint64
	stopped bool
	primed  bool
	last    time.Time

	phase    Phase
	pending  core.Status
	resumeAt time.Time
	paused   bool
}

// NewDriver creates a stopped driver for seq.
func NewDriver(seq *Sequence, cfg DriverConfig) *Driver {
	if cfg.MaxFrame <= 0 {
		cfg.MaxFrame = DefaultDriverConfig().MaxFrame
	}
	return &Driver{
		seq:     seq,
		cfg:     cfg,
		stopped: true,
	}
}

// Start begins a new generation and returns it. The first frame of the
// generation only primes the clock.
func (d *Driver) Start() uint64 {
	d.gen++
	d.stopped = false
	d.primed = false
	if d.seq.Complete() {
		d.phase = PhaseDone
	}
	return d.gen
}

// Stop cancels the current generation. Later frames are ignored until the
// next Start.
func (d *Driver) Stop() {
	d.gen++
	d.stopped = true
}

// Generation returns the current generation.
func (d *Driver) Generation() uint64 {
	return d.gen
}

// Running reports whether the driver accepts frames.
func (d *Driver) Running() bool {
	return !d.stopped
}

// Phase returns the current phase.
func (d *Driver) Phase() Phase {
	return d.phase
}

// Pending returns the status of the level waiting out its intermission.
func (d *Driver) Pending() core.Status {
	return d.pending
}

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// SetPaused suspends or resumes stepping. Resuming re-primes the clock so
// the paused time is not simulated.
func (d *Driver) SetPaused(paused bool) {
	if d.paused && !paused {
		d.primed = false
	}
	d.paused = paused
}

// Restart abandons the current attempt and rebuilds the level. It is
// ignored once the level has finished and during the grace period of a win.
func (d *Driver) Restart() bool {
	if d.phase != PhasePlaying || d.seq.Level().Status() == core.StatusWon {
		return false
	}
	d.seq.Restart()
	d.primed = false
	return true
}

// Frame feeds one wall-clock sample to the driver.
func (d *Driver) Frame(gen uint64, now time.Time, keys platformcore.Keys) FrameResult {
	if d.stopped || gen != d.gen {
		return FrameResult{}
	}

	if !d.primed {
		d.last = now
		d.primed = true
		return FrameResult{}
	}

	dt := now.Sub(d.last)
	d.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > d.cfg.MaxFrame {
		dt = d.cfg.MaxFrame
	}

	if d.paused {
		return FrameResult{}
	}

	switch d.phase {
	case PhaseIntermission:
		if now.Before(d.resumeAt) {
			return FrameResult{}
		}
		return FrameResult{Event: d.resume()}

	case PhasePlaying:
		res := d.seq.Step(dt.Seconds(), keys)
		out := FrameResult{Stepped: true, Step: res}
		if res.Finished {
			d.phase = PhaseIntermission
			d.pending = res.Status
			if res.Status == core.StatusWon {
				d.resumeAt = now.Add(d.cfg.WinPause)
				out.Event = EventWon
			} else {
				d.resumeAt = now.Add(d.cfg.LossPause)
				out.Event = EventLost
			}
		}
		return out
	}

	return FrameResult{}
}

// resume ends an intermission by applying the pending outcome.
func (d *Driver) resume() Event {
	d.seq.Finish(d.pending)

	switch {
	case d.seq.Complete():
		d.phase = PhaseDone
		return EventComplete
	case d.pending == core.StatusWon:
		d.phase = PhasePlaying
		return EventAdvanced
	default:
		d.phase = PhasePlaying
		return EventRestarted
	}
}
