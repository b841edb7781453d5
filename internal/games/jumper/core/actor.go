package core

// Kind tags the variant of an Actor.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindCoin
	KindLava
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindLava:
		return "lava"
	default:
		return "unknown"
	}
}

// LavaMotion selects how a moving lava actor reacts to obstacles.
type LavaMotion uint8

const (
	LavaBounceX LavaMotion = iota // Moves horizontally, reverses on contact
	LavaBounceY                   // Moves vertically, reverses on contact
	LavaDrip                      // Falls, teleports back to its origin on contact
)

// Actor is any moving entity in a level. Which fields matter depends on Kind:
//
//	Player: Pos, Size, Speed
//	Coin:   Pos, Size, BasePos, Wobble
//	Lava:   Pos, Size, Speed, Motion, RepeatPos
type Actor struct {
	Kind Kind
	Pos  Vec // Top-left corner
	Size Vec

	Speed Vec

	Motion    LavaMotion
	RepeatPos Vec // Drip origin

	BasePos Vec     // Coin anchor
	Wobble  float64 // Coin bob phase in radians
}

// Overlaps reports whether the boxes of a and o intersect with positive area.
func (a *Actor) Overlaps(o *Actor) bool {
	return a.Pos.X+a.Size.X > o.Pos.X &&
		a.Pos.X < o.Pos.X+o.Size.X &&
		a.Pos.Y+a.Size.Y > o.Pos.Y &&
		a.Pos.Y < o.Pos.Y+o.Size.Y
}

// newPlayer spawns the player standing in the cell at pos. The player is half a
// cell taller than its hitbox origin suggests, so it starts raised by 0.5 unless
// that would put it above the level.
func newPlayer(pos Vec) *Actor {
	y := pos.Y - 0.5
	if y < 0 {
		y = 0
	}
	return &Actor{
		Kind: KindPlayer,
		Pos:  V(pos.X, y),
		Size: V(0.5, 1),
	}
}

func newCoin(pos Vec, phase float64) *Actor {
	return &Actor{
		Kind:    KindCoin,
		Pos:     pos,
		Size:    V(0.6, 0.6),
		BasePos: pos,
		Wobble:  phase,
	}
}

// newLava spawns a moving lava block for one of the lava plan symbols.
func newLava(pos Vec, symbol byte, phys Physics) *Actor {
	a := &Actor{
		Kind: KindLava,
		Pos:  pos,
		Size: V(1, 1),
	}
	switch symbol {
	case SymbolLavaX:
		a.Motion = LavaBounceX
		a.Speed = V(phys.BounceSpeed, 0)
	case SymbolLavaY:
		a.Motion = LavaBounceY
		a.Speed = V(0, phys.BounceSpeed)
	case SymbolLavaDrip:
		a.Motion = LavaDrip
		a.Speed = V(0, phys.DripSpeed)
		a.RepeatPos = pos
	}
	return a
}

// TouchKind is what the player came into contact with.
type TouchKind uint8

const (
	TouchWall TouchKind = iota
	TouchLava
	TouchCoin
)

// String returns the lowercase touch name.
func (k TouchKind) String() string {
	switch k {
	case TouchWall:
		return "wall"
	case TouchLava:
		return "lava"
	case TouchCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Touch is a contact event between the player and a tile or another actor.
// Actor is nil for tile contacts.
type Touch struct {
	Kind  TouchKind
	Actor *Actor
}

// touchForTile maps an obstacle tile to the touch it causes.
func touchForTile(t Tile) Touch {
	if t == TileLava {
		return Touch{Kind: TouchLava}
	}
	return Touch{Kind: TouchWall}
}

// touchForActor maps an overlapped actor to the touch it causes.
func touchForActor(a *Actor) Touch {
	if a.Kind == KindCoin {
		return Touch{Kind: TouchCoin, Actor: a}
	}
	return Touch{Kind: TouchLava, Actor: a}
}
