package core

import "math"

// Tile is the static content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota // Open space; also "no obstacle" in queries
	TileWall              // Solid block
	TileLava              // Static lava, lethal on touch
)

// String returns the lowercase tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Grid is the immutable tile layout of a level.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile // [row][col]
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the tile at integer coordinates.
// Out-of-range coordinates follow the same boundary rules as ObstacleAt.
func (g *Grid) At(x, y int) Tile {
	if x < 0 || x >= g.width || y < 0 {
		return TileWall
	}
	if y >= g.height {
		return TileLava
	}
	return g.tiles[y][x]
}

// ObstacleAt reports the first obstacle overlapped by the box at pos with the
// given size, or TileEmpty if the box lies entirely in open space.
//
// A box occupies tile (x, y) when floor(pos.X) <= x < ceil(pos.X+size.X), and
// likewise for y. Leaving the level sideways or through the top hits a wall;
// leaving through the bottom hits lava.
func (g *Grid) ObstacleAt(pos, size Vec) Tile {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	if xStart < 0 || xEnd > g.width || yStart < 0 {
		return TileWall
	}
	if yEnd > g.height {
		return TileLava
	}

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if t := g.tiles[y][x]; t != TileEmpty {
				return t
			}
		}
	}
	return TileEmpty
}
