package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

func mustLevel(t *testing.T, plan core.Plan) *core.Level {
	t.Helper()
	l, err := core.NewLevel(plan, core.Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

func TestObstacleAtBoundaries(t *testing.T) {
	l := mustLevel(t, core.Plan{
		"x  ",
		" @o",
		"  !",
	})

	tests := []struct {
		name string
		pos  core.Vec
		size core.Vec
		want core.Tile
	}{
		{"open space", core.V(1, 1), core.V(0.5, 0.5), core.TileEmpty},
		{"exact cell fit", core.V(1, 1), core.V(1, 1), core.TileEmpty},
		{"wall tile", core.V(0.5, 0.5), core.V(0.4, 0.4), core.TileWall},
		{"lava tile", core.V(2, 2), core.V(1, 1), core.TileLava},
		{"past left edge", core.V(-0.1, 1), core.V(0.5, 0.5), core.TileWall},
		{"past right edge", core.V(2.6, 1), core.V(0.5, 0.5), core.TileWall},
		{"past top edge", core.V(1, -0.1), core.V(0.5, 0.5), core.TileWall},
		{"past bottom edge", core.V(1, 2.6), core.V(0.5, 0.5), core.TileLava},
		{"left and bottom", core.V(-0.1, 2.6), core.V(0.5, 0.5), core.TileWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.ObstacleAt(tc.pos, tc.size); got != tc.want {
				t.Errorf("ObstacleAt(%v, %v) = %v, want %v", tc.pos, tc.size, got, tc.want)
			}
		})
	}
}

func TestGridAtMatchesPlan(t *testing.T) {
	l := mustLevel(t, core.Plan{
		"x@o",
		"=!v",
	})
	g := l.Grid()

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("grid is %dx%d, want 3x2", g.Width(), g.Height())
	}

	want := [][]core.Tile{
		{core.TileWall, core.TileEmpty, core.TileEmpty},
		{core.TileEmpty, core.TileLava, core.TileEmpty},
	}
	for y, row := range want {
		for x, tile := range row {
			if got := g.At(x, y); got != tile {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, tile)
			}
		}
	}

	if g.At(-1, 0) != core.TileWall || g.At(0, -1) != core.TileWall || g.At(0, 2) != core.TileLava {
		t.Error("out-of-range At should follow the obstacle boundary rules")
	}
}

func TestValidatePlan(t *testing.T) {
	tests := []struct {
		name string
		plan core.Plan
		code string
	}{
		{"valid", core.Plan{"@o", "xx"}, ""},
		{"no rows", core.Plan{}, core.CodeEmptyPlan},
		{"empty row", core.Plan{""}, core.CodeEmptyPlan},
		{"ragged", core.Plan{"@o", "xxx"}, core.CodeRaggedRows},
		{"no player", core.Plan{" o", "xx"}, core.CodeNoPlayer},
		{"two players", core.Plan{"@o@", "xxx"}, core.CodeMultiplePlayers},
		{"no coins", core.Plan{"@ ", "xx"}, core.CodeNoCoins},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := core.ValidatePlan(tc.plan)
			if tc.code == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var pe *core.PlanError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PlanError, got %v", err)
			}
			if pe.Code != tc.code {
				t.Errorf("code = %s, want %s", pe.Code, tc.code)
			}

			if _, err := core.NewLevel(tc.plan, core.Options{}); !errors.As(err, &pe) {
				t.Errorf("NewLevel should reject the plan with a *PlanError, got %v", err)
			}
		})
	}
}

func TestNewLevelSpawns(t *testing.T) {
	l := mustLevel(t, core.Plan{
		"      ",
		" @ o=v",
		"xxxxxx",
	})

	p := l.Player()
	if p.Pos != core.V(1, 0.5) {
		t.Errorf("player pos = %v, want (1, 0.5)", p.Pos)
	}
	if p.Size != core.V(0.5, 1) {
		t.Errorf("player size = %v, want (0.5, 1)", p.Size)
	}
	if l.CoinsLeft() != 1 {
		t.Errorf("CoinsLeft() = %d, want 1", l.CoinsLeft())
	}
	if l.Status() != core.StatusRunning {
		t.Errorf("Status() = %v, want running", l.Status())
	}

	snap := l.Snapshot()
	if len(snap.Actors) != 4 {
		t.Fatalf("expected 4 actors, got %d", len(snap.Actors))
	}
	// Actor order follows the plan, row by row.
	kinds := []core.Kind{core.KindPlayer, core.KindCoin, core.KindLava, core.KindLava}
	for i, k := range kinds {
		if snap.Actors[i].Kind != k {
			t.Errorf("actor %d kind = %v, want %v", i, snap.Actors[i].Kind, k)
		}
	}
	if snap.Actors[2].Motion != core.LavaBounceX || snap.Actors[3].Motion != core.LavaDrip {
		t.Error("lava motions do not match their symbols")
	}
}

func TestPlayerSpawnOnTopRowIsClamped(t *testing.T) {
	l := mustLevel(t, core.Plan{"x@x", "xox"})

	if y := l.Player().Pos.Y; y != 0 {
		t.Errorf("player y = %v, want 0", y)
	}
	if got := l.ObstacleAt(l.Player().Pos, l.Player().Size); got != core.TileEmpty {
		t.Errorf("spawned player overlaps %v", got)
	}
}
