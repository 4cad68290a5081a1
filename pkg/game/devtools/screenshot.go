package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"bsplayout/pkg/engine/world"
	"bsplayout/pkg/game/generator"
)

// WriteHTML writes res as a standalone HTML page with a colored tile map
func WriteHTML(w io.Writer, res *generator.Result) error {
	grid := world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles)

	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>BSP Layout</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .summary {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 14px;
        }
        .rock { color: #333; }
        .floor { color: #aaa; }
        .corridor { color: #aaaa00; }
        .obstacle { color: #ff4444; font-weight: bold; }
    </style>
</head>
<body>
`)

	// Header
	page.WriteString(fmt.Sprintf(`    <div class="header">Seed %d</div>`+"\n", res.Config.Seed))
	page.WriteString(fmt.Sprintf(`    <div class="summary">%s</div>`+"\n", html.EscapeString(fmt.Sprintf(
		"%dx%d, %d rooms, %d connections, %d obstacles, %d wall segments",
		res.Bounds.Width, res.Bounds.Height, len(res.Rooms), len(res.Connections), len(res.Obstacles), len(res.WallSegments)))))

	// Map container
	page.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < grid.Rows(); row++ {
		page.WriteString(`        <div class="map-row">`)
		for col := 0; col < grid.Cols(); col++ {
			icon, class := getCellHTMLInfo(grid.GetCell(row, col))
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, page.String())
	return err
}

// SaveScreenshotHTML writes the layout page to a timestamped file and returns its name
func SaveScreenshotHTML(res *generator.Result) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("layout-%d-%s.html", res.Config.Seed, timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHTML(f, res); err != nil {
		return "", err
	}
	return filename, nil
}

// getCellHTMLInfo returns the icon and CSS class for a cell
func getCellHTMLInfo(c *world.Cell) (string, string) {
	if c == nil {
		return " ", "rock"
	}
	switch c.Kind {
	case world.Floor:
		return "·", "floor"
	case world.Corridor:
		return "░", "corridor"
	case world.Obstacle:
		return "■", "obstacle"
	default:
		return "▒", "rock"
	}
}
