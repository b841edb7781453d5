package core

// Color is the palette slot of a screen cell. The front end maps slots to
// terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorLava
	ColorCoin
	ColorPlayer
	ColorPlayerLost
	ColorPlayerWon
	ColorHUD
	ColorBanner
	ColorDim
)
