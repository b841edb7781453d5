package jumper

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pixel-jumper/internal/config"
	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
)

func mustGame(t *testing.T, plans ...[]string) *Game {
	t.Helper()
	g, err := NewGame(testPack(plans...), config.DefaultJumperConfig(), Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func findColor(s *platformcore.Screen, c platformcore.Color) (int, int, bool) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Color == c {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestRenderHUDAndLevel(t *testing.T) {
	g := mustGame(t, fallPlan, lavaPlan)
	screen := platformcore.NewScreen(40, 10)

	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Test", "Level 1/2", "Coins 0/1", "Deaths 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q is missing %q", hud, want)
		}
	}

	if _, _, ok := findColor(screen, platformcore.ColorPlayer); !ok {
		t.Error("player was not drawn")
	}
	if _, _, ok := findColor(screen, platformcore.ColorCoin); !ok {
		t.Error("coin was not drawn")
	}
	if _, y, ok := findColor(screen, platformcore.ColorWall); !ok || y == 0 {
		t.Error("walls should be drawn below the HUD")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := mustGame(t, fallPlan)
	screen := platformcore.NewScreen(10, 3)

	g.Render(screen)

	if !strings.Contains(screen.String(), "small") {
		t.Errorf("expected a size warning, got:\n%s", screen.String())
	}
}

func TestRenderBanners(t *testing.T) {
	g := mustGame(t, lavaPlan)
	gen := g.Start()
	ms := 0
	g.Frame(gen, at(ms), platformcore.Keys{})

	if g.Banner() != "" {
		t.Errorf("no banner expected while playing, got %q", g.Banner())
	}

	g.TogglePause()
	if g.Banner() != BannerPaused {
		t.Errorf("Banner() = %q, want %q", g.Banner(), BannerPaused)
	}
	g.TogglePause()

	if ev := runUntil(g.Driver(), gen, &ms, 100); ev != EventLost {
		t.Fatalf("expected EventLost, got %v", ev)
	}

	screen := platformcore.NewScreen(40, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), BannerLost) {
		t.Errorf("expected %q on screen:\n%s", BannerLost, screen.String())
	}
	if _, _, alive := findColor(screen, platformcore.ColorPlayer); alive {
		t.Error("a lost player should not use the live color")
	}
}

func TestRenderCompleteBanner(t *testing.T) {
	g := mustGame(t, fallPlan)
	gen := g.Start()
	ms := 0
	g.Frame(gen, at(ms), platformcore.Keys{})

	if ev := runUntil(g.Driver(), gen, &ms, 100); ev != EventWon {
		t.Fatalf("expected EventWon, got %v", ev)
	}
	if g.Banner() != BannerComplete {
		t.Errorf("winning the last level should show %q, got %q", BannerComplete, g.Banner())
	}

	runUntil(g.Driver(), gen, &ms, 100)
	if !g.State().Complete || g.Banner() != BannerComplete {
		t.Errorf("expected a complete game, state %+v banner %q", g.State(), g.Banner())
	}
}

func TestFollowAxis(t *testing.T) {
	tests := []struct {
		name       string
		cur        int
		p          float64
		view, size int
		want       int
	}{
		{"level fits", 5, 3, 20, 10, 0},
		{"player in middle", 0, 10, 30, 100, 0},
		{"player near right edge", 0, 25, 30, 100, 5},
		{"player near left edge", 50, 52, 30, 100, 42},
		{"clamped at level end", 0, 99, 30, 100, 70},
		{"clamped at level start", 10, 1, 30, 100, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := followAxis(tc.cur, tc.p, tc.view, tc.size); got != tc.want {
				t.Errorf("followAxis(%d, %v, %d, %d) = %d, want %d", tc.cur, tc.p, tc.view, tc.size, got, tc.want)
			}
		})
	}
}

func TestCameraFollowsWideLevel(t *testing.T) {
	row := "x@" + strings.Repeat(" ", 96) + "ox"
	floor := strings.Repeat("x", 100)
	g := mustGame(t, []string{row, floor})

	screen := platformcore.NewScreen(40, 6)
	g.Render(screen)
	if g.camera.x != 0 {
		t.Errorf("camera should start at the left edge, got %d", g.camera.x)
	}

	g.camera.follow(90, 0.5, 20, 5, 100, 2)
	if g.camera.x <= 0 || g.camera.x > 80 {
		t.Errorf("camera x = %d, want it scrolled toward the player", g.camera.x)
	}
}

func TestGameState(t *testing.T) {
	g := mustGame(t, fallPlan, lavaPlan)

	st := g.State()
	if st.Level != 1 || st.LevelCount != 2 || st.CoinsTotal != 1 {
		t.Errorf("unexpected state %+v", st)
	}
	if g.ID() != "test" || g.Title() != "Test" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}

	if !g.Restart() {
		t.Fatal("Restart should apply while playing")
	}
	if g.State().Deaths != 1 {
		t.Errorf("Deaths = %d after restart, want 1", g.State().Deaths)
	}
}
