package jumper

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

// Glyphs used to draw a level.
const (
	WallGlyph   = '█'
	LavaGlyph   = '▓'
	CoinGlyph   = '●'
	PlayerGlyph = '█'
)

// Minimum screen size the game draws into.
const (
	MinScreenW = 20
	MinScreenH = 6
)

// Banner texts.
const (
	BannerLost     = "Try Again!"
	BannerWon      = "Level Complete!"
	BannerComplete = "You Win!"
	BannerPaused   = "Paused"
)

// camera is the top-left grid cell shown in the level viewport.
// It only moves when the player leaves the middle of the view.
type camera struct {
	x, y int
}

// follow scrolls the camera so the point (px, py) sits at least a third of
// the view away from each edge, without showing space beyond the level.
func (c *camera) follow(px, py float64, viewW, viewH, levelW, levelH int) {
	c.x = followAxis(c.x, px, viewW, levelW)
	c.y = followAxis(c.y, py, viewH, levelH)
}

func followAxis(cur int, p float64, view, size int) int {
	if size <= view {
		return 0
	}

	margin := float64(view) / 3
	lo, hi := float64(cur)+margin, float64(cur+view)-margin
	switch {
	case p < lo:
		cur = int(math.Floor(p - margin))
	case p > hi:
		cur = int(math.Ceil(p + margin - float64(view)))
	}
	return platformcore.Clamp(cur, 0, size-view)
}

// viewport maps grid space to screen cells.
type viewport struct {
	ox, oy int // Screen cell of the camera's top-left grid cell
	camX   int
	camY   int
	scale  int
	area   platformcore.Rect // Screen cells the level may draw into
}

func (v viewport) column(x float64) int {
	return v.ox + int(math.Round((x-float64(v.camX))*float64(v.scale)))
}

func (v viewport) row(y float64) int {
	return v.oy + int(math.Round(y-float64(v.camY)))
}

// Render draws the HUD and the visible part of the level into dst.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorBanner)
		return
	}

	snap := g.seq.Level().Snapshot()
	scale := g.cfg.Render.Scale
	if scale < 1 {
		scale = 1
	}

	// Row 0 is the HUD; the level gets the rest.
	areaY := 1
	viewW := dst.Width() / scale
	viewH := dst.Height() - areaY
	if p, ok := snap.Player(); ok {
		c := p.Center()
		g.camera.follow(c.X, c.Y, viewW, viewH, snap.Width, snap.Height)
	}

	vp := viewport{
		camX:  g.camera.x,
		camY:  g.camera.y,
		scale: scale,
		ox:    0,
		oy:    areaY,
		area:  platformcore.NewRect(0, areaY, dst.Width(), viewH),
	}
	// Center levels smaller than the screen.
	if snap.Width < viewW {
		vp.ox = (dst.Width() - snap.Width*scale) / 2
	}
	if snap.Height < viewH {
		vp.oy = areaY + (viewH-snap.Height)/2
	}

	g.drawTiles(dst, snap, vp, viewW, viewH)
	g.drawActors(dst, snap, vp)
	g.drawHUD(dst)
	g.drawBanner(dst)
}

func (g *Game) drawTiles(dst *platformcore.Screen, snap core.Snapshot, vp viewport, viewW, viewH int) {
	for y := vp.camY; y < vp.camY+viewH && y < snap.Height; y++ {
		for x := vp.camX; x < vp.camX+viewW && x < snap.Width; x++ {
			var glyph rune
			var color platformcore.Color
			switch snap.Grid.At(x, y) {
			case core.TileWall:
				glyph, color = WallGlyph, platformcore.ColorWall
			case core.TileLava:
				glyph, color = LavaGlyph, platformcore.ColorLava
			default:
				continue
			}

			sx := vp.column(float64(x))
			sy := vp.row(float64(y))
			for i := 0; i < vp.scale; i++ {
				dst.SetCell(sx+i, sy, glyph, color)
			}
		}
	}
}

func (g *Game) drawActors(dst *platformcore.Screen, snap core.Snapshot, vp viewport) {
	for _, a := range snap.Actors {
		glyph, color := g.actorStyle(a, snap.Status)

		x0, x1 := vp.column(a.Pos.X), vp.column(a.Pos.X+a.Size.X)
		y0, y1 := vp.row(a.Pos.Y), vp.row(a.Pos.Y+a.Size.Y)
		if a.Size.X > 0 && x1 == x0 {
			x1 = x0 + 1
		}
		if a.Size.Y > 0 && y1 == y0 {
			y1 = y0 + 1
		}

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if vp.area.Contains(x, y) {
					dst.SetCell(x, y, glyph, color)
				}
			}
		}
	}
}

func (g *Game) actorStyle(a core.ActorView, status core.Status) (rune, platformcore.Color) {
	switch a.Kind {
	case core.KindPlayer:
		switch status {
		case core.StatusLost:
			return PlayerGlyph, platformcore.ColorPlayerLost
		case core.StatusWon:
			return PlayerGlyph, platformcore.ColorPlayerWon
		}
		return PlayerGlyph, platformcore.ColorPlayer
	case core.KindCoin:
		return CoinGlyph, platformcore.ColorCoin
	default:
		return LavaGlyph, platformcore.ColorLava
	}
}

func (g *Game) drawHUD(dst *platformcore.Screen) {
	st := g.State()

	left := fmt.Sprintf(" %s  Level %d/%d  Coins %d/%d  Deaths %d",
		g.Title(), st.Level, st.LevelCount, st.Coins, st.CoinsTotal, st.Deaths)
	dst.DrawTextColor(0, 0, left, platformcore.ColorHUD)

	name := g.seq.LevelName() + " "
	x := dst.Width() - len([]rune(name))
	if x > len([]rune(left))+1 {
		dst.DrawTextColor(x, 0, name, platformcore.ColorDim)
	}
}

// Banner returns the message shown over the level, or "" for none.
func (g *Game) Banner() string {
	switch {
	case g.driver.Phase() == PhaseDone:
		return BannerComplete
	case g.driver.Phase() == PhaseIntermission && g.driver.Pending() == core.StatusWon:
		if g.seq.Index()+1 >= g.seq.Count() {
			return BannerComplete
		}
		return BannerWon
	case g.driver.Phase() == PhaseIntermission:
		return BannerLost
	case g.driver.Paused():
		return BannerPaused
	}
	return ""
}

func (g *Game) drawBanner(dst *platformcore.Screen) {
	text := g.Banner()
	if text == "" {
		return
	}

	w := len([]rune(text)) + 4
	h := 3
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	box := platformcore.NewRect(x, y, w, h)

	dst.DrawRect(box, ' ', platformcore.ColorBanner)
	dst.DrawBox(box, platformcore.ColorBanner)
	dst.DrawTextCentered(y+1, text, platformcore.ColorBanner)
}
