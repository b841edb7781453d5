package core

import "math"

// actCoin bobs a coin around its anchor. The offset is cosmetic; coins are
// only ever removed by the player touching them.
func (l *Level) actCoin(c *Actor, step float64) {
	c.Wobble += step * l.phys.WobbleSpeed
	offset := math.Sin(c.Wobble) * l.phys.WobbleDist
	c.Pos = c.BasePos.Plus(V(0, offset))
}
