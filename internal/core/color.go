package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a concrete terminal color.
type Color uint8

// UI colors.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorYellow
	ColorRed
)

// Tile palette, one entry per tile type plus a fallback.
const (
	ColorTileOrange Color = iota + 16
	ColorTileMint
	ColorTileMoss
	ColorTilePink
	ColorTilePurple
	ColorTileFallback
)
