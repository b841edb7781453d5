package core

import (
	"math"
	"strings"
)

// RenderASCII draws a snapshot using the plan symbols, one character per
// grid cell. Each actor is drawn in the cell holding the center of its box.
// A freshly built level renders back to its own plan.
func RenderASCII(s Snapshot) string {
	rows := make([][]byte, s.Height)
	for y := range rows {
		rows[y] = make([]byte, s.Width)
		for x := range rows[y] {
			rows[y][x] = tileSymbol(s.Grid.At(x, y))
		}
	}

	for _, a := range s.Actors {
		c := a.Center()
		x, y := int(math.Floor(c.X)), int(math.Floor(c.Y))
		if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
			continue
		}
		rows[y][x] = actorSymbol(a)
	}

	var sb strings.Builder
	sb.Grow((s.Width + 1) * s.Height)
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

func tileSymbol(t Tile) byte {
	switch t {
	case TileWall:
		return SymbolWall
	case TileLava:
		return SymbolLava
	default:
		return ' '
	}
}

func actorSymbol(a ActorView) byte {
	switch a.Kind {
	case KindPlayer:
		return SymbolPlayer
	case KindCoin:
		return SymbolCoin
	}
	switch a.Motion {
	case LavaBounceY:
		return SymbolLavaY
	case LavaDrip:
		return SymbolLavaDrip
	default:
		return SymbolLavaX
	}
}
