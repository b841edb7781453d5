package jumper

import (
	"testing"
	"time"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

var epoch = time.Unix(1700000000, 0)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func newTestDriver(t *testing.T, plans ...[]string) (*Driver, *Sequence) {
	t.Helper()
	seq := mustSequence(t, testPack(plans...))
	return NewDriver(seq, DefaultDriverConfig()), seq
}

// runUntil feeds 50ms frames until an event other than EventNone arrives.
func runUntil(d *Driver, gen uint64, ms *int, limit int) Event {
	for i := 0; i < limit; i++ {
		*ms += 50
		if res := d.Frame(gen, at(*ms), platformcore.Keys{}); res.Event != EventNone {
			return res.Event
		}
	}
	return EventNone
}

func TestDriverFirstFramePrimes(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)
	gen := d.Start()

	if res := d.Frame(gen, at(0), platformcore.Keys{}); res.Stepped {
		t.Error("the first frame should only prime the clock")
	}
	if res := d.Frame(gen, at(50), platformcore.Keys{}); !res.Stepped {
		t.Error("the second frame should step the level")
	}
	if got := seq.Stats().Elapsed; got != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, want 50ms", got)
	}
}

func TestDriverClampsLongFrames(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)
	gen := d.Start()

	d.Frame(gen, at(0), platformcore.Keys{})
	d.Frame(gen, at(10000), platformcore.Keys{})

	if got := seq.Stats().Elapsed; got > 100*time.Millisecond {
		t.Errorf("Elapsed = %v, want at most 100ms", got)
	}
}

func TestDriverIgnoresStaleGenerations(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)

	if res := d.Frame(d.Generation(), at(0), platformcore.Keys{}); res.Stepped {
		t.Error("a driver that was never started should ignore frames")
	}

	old := d.Start()
	d.Frame(old, at(0), platformcore.Keys{})

	gen := d.Start()
	if gen == old {
		t.Fatal("Start should return a new generation")
	}
	for ms := 50; ms <= 500; ms += 50 {
		if res := d.Frame(old, at(ms), platformcore.Keys{}); res.Stepped {
			t.Fatal("frames from a replaced generation should be ignored")
		}
	}
	if seq.Stats().Elapsed != 0 {
		t.Errorf("stale frames advanced the simulation by %v", seq.Stats().Elapsed)
	}

	d.Stop()
	if d.Running() {
		t.Error("Running() should be false after Stop")
	}
	if res := d.Frame(gen, at(600), platformcore.Keys{}); res.Stepped {
		t.Error("a stopped driver should ignore frames")
	}
}

func TestDriverWinAdvancesAfterPause(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan, lavaPlan)
	gen := d.Start()
	ms := 0
	d.Frame(gen, at(ms), platformcore.Keys{})

	if ev := runUntil(d, gen, &ms, 100); ev != EventWon {
		t.Fatalf("expected EventWon, got %v", ev)
	}
	if d.Phase() != PhaseIntermission {
		t.Fatalf("phase = %v, want intermission", d.Phase())
	}
	wonAt := ms

	elapsed := seq.Stats().Elapsed
	ev := runUntil(d, gen, &ms, 100)
	if ev != EventAdvanced {
		t.Fatalf("expected EventAdvanced, got %v", ev)
	}
	if ms-wonAt < 1000 {
		t.Errorf("advanced %dms after winning, want at least 1000ms", ms-wonAt)
	}
	if seq.Stats().Elapsed != elapsed {
		t.Error("the intermission should not step the level")
	}
	if seq.Index() != 1 || d.Phase() != PhasePlaying {
		t.Errorf("expected to be playing level 2, at %d in phase %v", seq.Index()+1, d.Phase())
	}
}

func TestDriverLossRestartsAfterPause(t *testing.T) {
	d, seq := newTestDriver(t, lavaPlan)
	gen := d.Start()
	ms := 0
	d.Frame(gen, at(ms), platformcore.Keys{})

	if ev := runUntil(d, gen, &ms, 100); ev != EventLost {
		t.Fatalf("expected EventLost, got %v", ev)
	}
	if d.Pending() != core.StatusLost {
		t.Errorf("Pending() = %v, want lost", d.Pending())
	}
	lostAt := ms

	if ev := runUntil(d, gen, &ms, 100); ev != EventRestarted {
		t.Fatalf("expected EventRestarted, got %v", ev)
	}
	if ms-lostAt < 500 {
		t.Errorf("restarted %dms after losing, want at least 500ms", ms-lostAt)
	}
	if seq.Stats().Deaths != 1 || seq.Level().Status() != core.StatusRunning {
		t.Errorf("expected a fresh attempt after one death, got %+v", seq.Stats())
	}
}

func TestDriverCompletesLastLevel(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)
	gen := d.Start()
	ms := 0
	d.Frame(gen, at(ms), platformcore.Keys{})

	if ev := runUntil(d, gen, &ms, 100); ev != EventWon {
		t.Fatalf("expected EventWon, got %v", ev)
	}
	if ev := runUntil(d, gen, &ms, 100); ev != EventComplete {
		t.Fatalf("expected EventComplete, got %v", ev)
	}
	if d.Phase() != PhaseDone || !seq.Complete() {
		t.Error("driver should be done after the last level")
	}
	if ev := runUntil(d, gen, &ms, 20); ev != EventNone {
		t.Errorf("a done driver reported %v", ev)
	}
	if d.Restart() {
		t.Error("Restart should be refused once the pack is complete")
	}
}

func TestDriverPause(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)
	gen := d.Start()
	d.Frame(gen, at(0), platformcore.Keys{})

	d.SetPaused(true)
	for ms := 50; ms <= 500; ms += 50 {
		if res := d.Frame(gen, at(ms), platformcore.Keys{}); res.Stepped {
			t.Fatal("a paused driver should not step")
		}
	}

	d.SetPaused(false)
	d.Frame(gen, at(5000), platformcore.Keys{})
	if res := d.Frame(gen, at(5050), platformcore.Keys{}); !res.Stepped {
		t.Error("an unpaused driver should step again")
	}
	if got := seq.Stats().Elapsed; got != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, want 50ms; paused time must not be simulated", got)
	}
}

func TestDriverManualRestart(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan)
	gen := d.Start()
	d.Frame(gen, at(0), platformcore.Keys{})
	d.Frame(gen, at(50), platformcore.Keys{})

	if !d.Restart() {
		t.Fatal("Restart should apply while playing")
	}
	if seq.Stats().Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", seq.Stats().Deaths)
	}
	if res := d.Frame(gen, at(100), platformcore.Keys{}); res.Stepped {
		t.Error("the frame after a restart should only prime the clock")
	}
}

func TestDriverRestartKeepsPendingWin(t *testing.T) {
	d, seq := newTestDriver(t, fallPlan, lavaPlan)
	gen := d.Start()
	ms := 0
	d.Frame(gen, at(ms), platformcore.Keys{})

	for i := 0; i < 100 && seq.Level().Status() != core.StatusWon; i++ {
		ms += 50
		d.Frame(gen, at(ms), platformcore.Keys{})
	}
	if seq.Level().Status() != core.StatusWon {
		t.Fatal("the level was never won")
	}
	if d.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing during the grace period", d.Phase())
	}

	if d.Restart() {
		t.Error("Restart should be ignored once the level is won")
	}
	if seq.Stats().Deaths != 0 {
		t.Errorf("Deaths = %d, want 0", seq.Stats().Deaths)
	}
	if ev := runUntil(d, gen, &ms, 100); ev != EventWon {
		t.Errorf("expected EventWon, got %v", ev)
	}
}
