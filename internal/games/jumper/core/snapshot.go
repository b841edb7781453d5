package core

// ActorView is a read-only copy of an actor for renderers.
type ActorView struct {
	Kind   Kind
	Motion LavaMotion
	Pos    Vec
	Size   Vec
}

// Center returns the midpoint of the actor's box.
func (a ActorView) Center() Vec {
	return a.Pos.Plus(a.Size.Times(0.5))
}

// Snapshot is a consistent, caller-owned view of a level between steps.
// The grid is shared because it never changes.
type Snapshot struct {
	Width     int
	Height    int
	Grid      *Grid
	Actors    []ActorView
	Status    Status
	CoinsLeft int
}

// Snapshot copies the renderable state of the level.
func (l *Level) Snapshot() Snapshot {
	views := make([]ActorView, len(l.actors))
	for i, a := range l.actors {
		views[i] = ActorView{
			Kind:   a.Kind,
			Motion: a.Motion,
			Pos:    a.Pos,
			Size:   a.Size,
		}
	}

	return Snapshot{
		Width:     l.grid.width,
		Height:    l.grid.height,
		Grid:      l.grid,
		Actors:    views,
		Status:    l.status,
		CoinsLeft: l.coins,
	}
}

// Player returns the player's view, or false if the snapshot has none.
func (s Snapshot) Player() (ActorView, bool) {
	for _, a := range s.Actors {
		if a.Kind == KindPlayer {
			return a, true
		}
	}
	return ActorView{}, false
}
