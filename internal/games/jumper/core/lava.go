package core

// actLava advances a moving lava block. Lava never reacts to the player;
// contact is detected from the player's side.
func (l *Level) actLava(a *Actor, step float64) {
	next := a.Pos.Plus(a.Speed.Times(step))
	if l.grid.ObstacleAt(next, a.Size) == TileEmpty {
		a.Pos = next
		return
	}

	if a.Motion == LavaDrip {
		a.Pos = a.RepeatPos
		return
	}
	a.Speed = a.Speed.Times(-1)
}
