package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the terminal loop
	Seed     int64 // Seed for cosmetic randomness; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is what the platform needs to know about a running session.
type GameState struct {
	Level         int  // 1-based index of the current level
	LevelCount    int  // Levels in the pack
	Coins         int  // Coins collected in the current attempt
	CoinsTotal    int  // Coins in the current level
	Deaths        int  // Lost or restarted attempts so far
	LevelsCleared int  // Levels won so far
	Complete      bool // Whole pack cleared
	Paused        bool
}
