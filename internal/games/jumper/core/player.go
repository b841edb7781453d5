package core

import platformcore "github.com/vovakirdan/pixel-jumper/internal/core"

// actPlayer advances the player by one substep.
//
// Movement is resolved one axis at a time, horizontal first, so a blocked
// axis never cancels motion on the other one.
func (l *Level) actPlayer(p *Actor, step float64, keys platformcore.Keys) {
	if l.status == StatusLost {
		// Sink into whatever killed us.
		p.Pos.Y += step
		p.Size.Y -= step
		if p.Size.Y < 0 {
			p.Size.Y = 0
		}
		return
	}

	l.movePlayerX(p, step, keys)
	l.movePlayerY(p, step, keys)

	if other := l.ActorAt(p); other != nil {
		l.PlayerTouched(touchForActor(other))
	}
}

func (l *Level) movePlayerX(p *Actor, step float64, keys platformcore.Keys) {
	p.Speed.X = 0
	if keys.Left {
		p.Speed.X -= l.phys.PlayerSpeed
	}
	if keys.Right {
		p.Speed.X += l.phys.PlayerSpeed
	}

	next := p.Pos.Plus(V(p.Speed.X*step, 0))
	if obstacle := l.grid.ObstacleAt(next, p.Size); obstacle != TileEmpty {
		l.PlayerTouched(touchForTile(obstacle))
		return
	}
	p.Pos = next
}

func (l *Level) movePlayerY(p *Actor, step float64, keys platformcore.Keys) {
	p.Speed.Y += step * l.phys.Gravity

	next := p.Pos.Plus(V(0, p.Speed.Y*step))
	obstacle := l.grid.ObstacleAt(next, p.Size)
	if obstacle == TileEmpty {
		p.Pos = next
		return
	}

	l.PlayerTouched(touchForTile(obstacle))
	// Jumping is only possible at the moment of landing.
	if keys.Jump && p.Speed.Y > 0 {
		p.Speed.Y = -l.phys.JumpSpeed
	} else {
		p.Speed.Y = 0
	}
}
