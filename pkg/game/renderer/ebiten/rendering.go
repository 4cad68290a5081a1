package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	engineinput "bsplayout/pkg/engine/input"
	"bsplayout/pkg/engine/world"
)

// helpActions are listed in the status bar in this order
var helpActions = []engineinput.Action{
	engineinput.ActionReseed,
	engineinput.ActionNextLevel,
	engineinput.ActionPrevLevel,
	engineinput.ActionToggleWalls,
	engineinput.ActionZoomIn,
	engineinput.ActionZoomOut,
	engineinput.ActionScreenshot,
	engineinput.ActionDumpMap,
	engineinput.ActionQuit,
}

// keyLabels shortens codes whose names read poorly on the status bar
var keyLabels = map[string]string{
	"equal":  "=",
	"minus":  "-",
	"escape": "Esc",
}

var keyHelp = buildKeyHelp()

// buildKeyHelp lists the primary key of each help action from the bindings
func buildKeyHelp() string {
	parts := make([]string, 0, len(helpActions))
	for _, a := range helpActions {
		key := engineinput.PrimaryKey(a)
		if key == "" {
			continue
		}
		label, ok := keyLabels[key]
		if !ok {
			label = strings.ToUpper(key)
		}
		parts = append(parts, label+" "+strings.ToLower(engineinput.ActionName(a)))
	}
	return strings.Join(parts, "  ")
}

// Draw renders the current layout to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.mu.RLock()
	res, grid, level, genErr := e.res, e.grid, e.level, e.err
	tileSize, showWalls := e.tileSize, e.showWalls
	e.mu.RUnlock()

	if res == nil || grid == nil {
		return
	}

	ts := float32(tileSize)

	// Cells
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		vector.DrawFilledRect(screen, float32(col)*ts, float32(row)*ts, ts, ts, cellColor(cell.Kind), false)
	})

	// Wall segments are in tile coordinates relative to the bounds origin
	if showWalls {
		for _, s := range res.WallSegments {
			x0 := float32(s.A.X-res.Bounds.X) * ts
			y0 := float32(s.A.Y-res.Bounds.Y) * ts
			x1 := float32(s.B.X-res.Bounds.X) * ts
			y1 := float32(s.B.Y-res.Bounds.Y) * ts
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, colorWall, false)
		}
	}

	// Status bar
	mapHeight := res.Bounds.Height * tileSize
	levelText := "-"
	if level > 0 {
		levelText = fmt.Sprint(level)
	}
	status := fmt.Sprintf("level %s  seed %d  %dx%d  rooms %d  obstacles %d",
		levelText, res.Config.Seed, res.Bounds.Width, res.Bounds.Height, len(res.Rooms), len(res.Obstacles))
	ebitenutil.DebugPrintAt(screen, status, 4, mapHeight+2)

	help := keyHelp
	if genErr != nil {
		help = "error: " + genErr.Error()
		vector.DrawFilledRect(screen, 0, float32(mapHeight+18), 4, 14, colorWarning, false)
	} else if msg := grid.Validate(); msg != "" {
		help = "warning: " + strings.ToLower(msg)
		vector.DrawFilledRect(screen, 0, float32(mapHeight+18), 4, 14, colorWarning, false)
	}
	ebitenutil.DebugPrintAt(screen, help, 4, mapHeight+18)
}

// cellColor returns the fill color for a cell kind
func cellColor(kind world.CellKind) color.Color {
	switch kind {
	case world.Floor:
		return colorFloor
	case world.Corridor:
		return colorCorridor
	case world.Obstacle:
		return colorObstacle
	default:
		return colorRock
	}
}
