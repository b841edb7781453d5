package core

// Physics holds the tuning constants of the simulation.
// Speeds are in grid units per second, times in seconds.
type Physics struct {
	PlayerSpeed float64 // Horizontal run speed
	Gravity     float64 // Downward acceleration
	JumpSpeed   float64 // Upward speed given on a jump
	WobbleSpeed float64 // Coin bob phase rate (radians/s)
	WobbleDist  float64 // Coin bob amplitude
	MaxStep     float64 // Largest substep Animate will simulate at once
	FinishDelay float64 // Grace period between win/loss and finish
	BounceSpeed float64 // Speed of '=' and '|' lava
	DripSpeed   float64 // Speed of 'v' lava
}

// DefaultPhysics returns the standard tuning.
func DefaultPhysics() Physics {
	return Physics{
		PlayerSpeed: 10,
		Gravity:     30,
		JumpSpeed:   17,
		WobbleSpeed: 8,
		WobbleDist:  0.07,
		MaxStep:     0.05,
		FinishDelay: 1,
		BounceSpeed: 2,
		DripSpeed:   3,
	}
}

// normalized fills unusable fields from the defaults.
// A zero Physics becomes DefaultPhysics.
func (p Physics) normalized() Physics {
	d := DefaultPhysics()
	if p == (Physics{}) {
		return d
	}
	if p.MaxStep <= 0 {
		p.MaxStep = d.MaxStep
	}
	if p.FinishDelay < 0 {
		p.FinishDelay = d.FinishDelay
	}
	return p
}
