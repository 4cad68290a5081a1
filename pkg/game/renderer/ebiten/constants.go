// Package ebiten provides an Ebiten-based window for browsing generated layouts.
package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorRock       = color.RGBA{15, 15, 26, 255}    // Darker for solid area
	colorFloor      = color.RGBA{160, 160, 180, 255} // Light gray
	colorCorridor   = color.RGBA{200, 180, 100, 255} // Tan
	colorObstacle   = color.RGBA{255, 80, 80, 255}   // Bright red
	colorWall       = color.RGBA{100, 150, 255, 255} // Bright blue wall outlines
	colorWarning    = color.RGBA{255, 220, 100, 255} // Yellow
)

// Tile size constraints
const (
	minTileSize     = 4
	maxTileSize     = 32
	tileSizeStep    = 2
	defaultTileSize = 12
)

// statusBarHeight leaves room for two lines of the debug font under the map
const statusBarHeight = 36
