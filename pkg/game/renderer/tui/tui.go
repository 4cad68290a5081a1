package tui

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"bsplayout/pkg/engine/world"
	"bsplayout/pkg/game/connectivity"
	"bsplayout/pkg/game/generator"
	"bsplayout/pkg/game/renderer"
)

// Icon constants for the layout map
const (
	IconRock     = "▒"
	IconFloor    = "·"
	IconCorridor = "░"
	IconObstacle = "■"
)

//go:embed locales/en.po
var englishPo []byte

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	plain bool

	colorRoom     color.Style
	colorCorridor color.Style
	colorObstacle color.Style
	colorRock     color.Style
	colorLabel    color.Style
	colorValue    color.Style
	colorSubtle   color.Style
	colorWarning  color.Style

	po                    *gotext.Po
	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer that colors its output
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// NewPlain creates a TUI renderer that emits no escape codes
func NewPlain() *TUIRenderer {
	return &TUIRenderer{plain: true}
}

// Init initializes the TUI renderer (colors, translations, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgWhite}
	t.colorCorridor = color.Style{color.FgYellow}
	t.colorObstacle = color.Style{color.FgRed, color.OpBold}
	t.colorRock = color.Style{color.FgGray}
	t.colorLabel = color.Style{color.FgBlue}
	t.colorValue = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWarning = color.Style{color.FgRed, color.OpBold}

	t.po = gotext.NewPo()
	t.po.Parse(englishPo)

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:\-]+)}`)
}

// translate looks up a translation key, returning the key when it is unknown
func (t *TUIRenderer) translate(key string) string {
	if t.po == nil {
		return key
	}
	return t.po.Get(key)
}

func (t *TUIRenderer) style(s color.Style, text string) string {
	if t.plain {
		return text
	}
	return s.Sprint(text)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.style(t.colorRoom, text)
	case renderer.StyleCorridor:
		return t.style(t.colorCorridor, text)
	case renderer.StyleObstacle:
		return t.style(t.colorObstacle, text)
	case renderer.StyleRock:
		return t.style(t.colorRock, text)
	case renderer.StyleLabel:
		return t.style(t.colorLabel, text)
	case renderer.StyleValue:
		return t.style(t.colorValue, text)
	case renderer.StyleSubtle:
		return t.style(t.colorSubtle, text)
	case renderer.StyleWarning:
		return t.style(t.colorWarning, text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{KEY} translates, LABEL{KEY} translates and styles as a label, VAL{x} styles a value.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)
	if t.regexpStringFunctions == nil {
		return ret
	}

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = t.translate(operand)
		case "LABEL":
			val = t.style(t.colorLabel, t.translate(operand))
		case "VAL":
			val = t.style(t.colorValue, operand)
		case "WARN":
			val = t.style(t.colorWarning, t.translate(operand))
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// RenderLayout writes a summary block followed by the tile map
func (t *TUIRenderer) RenderLayout(w io.Writer, res *generator.Result) error {
	var sb strings.Builder

	grid := world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles)

	t.printSummary(&sb, res)
	if !grid.FloorConnected() {
		sb.WriteString(t.FormatText("WARN{FLOOR_DISCONNECTED}\n"))
	}
	sb.WriteString("\n")
	t.printMap(&sb, grid)
	t.printLegend(&sb)

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *TUIRenderer) printSummary(sb *strings.Builder, res *generator.Result) {
	line := func(key string, value any) {
		sb.WriteString(t.FormatText("LABEL{%s}: VAL{%v}\n", key, value))
	}

	line("GENERATOR", generator.DefaultGenerator.Name())
	line("SEED", res.Config.Seed)
	line("MAP_SIZE", fmt.Sprintf("%dx%d", res.Bounds.Width, res.Bounds.Height))
	line("ROOMS", len(res.Rooms))
	line("CONNECTIONS", len(res.Connections))
	line("CORRIDORS", len(res.Corridors))
	line("OBSTACLES", len(res.Obstacles))
	line("WALLS", len(res.WallSegments))

	if res.Stats.LeavesWithoutRoom > 0 {
		line("LEAVES_WITHOUT_ROOM", res.Stats.LeavesWithoutRoom)
	}
	if res.Stats.SkippedConnections > 0 {
		line("SKIPPED_CONNECTIONS", res.Stats.SkippedConnections)
	}
	if groups := connectivity.NewGraph(res.Rooms, res.Corridors).Components(); groups > 1 {
		line("ROOM_GROUPS", groups)
	}
}

// printMap writes one line per row, styling runs of equal cells together
func (t *TUIRenderer) printMap(sb *strings.Builder, grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		runKind := grid.GetCell(row, 0).Kind
		runLen := 0
		for col := 0; col < grid.Cols(); col++ {
			kind := grid.GetCell(row, col).Kind
			if kind != runKind {
				sb.WriteString(t.renderRun(runKind, runLen))
				runKind, runLen = kind, 0
			}
			runLen++
		}
		sb.WriteString(t.renderRun(runKind, runLen))
		sb.WriteString("\n")
	}
}

func (t *TUIRenderer) renderRun(kind world.CellKind, n int) string {
	if n == 0 {
		return ""
	}
	icon, style := cellIcon(kind)
	return t.StyleText(strings.Repeat(icon, n), style)
}

func (t *TUIRenderer) printLegend(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(t.FormatText("GT{LEGEND}: "))
	sb.WriteString(t.StyleText(IconFloor, renderer.StyleRoom) + " " + t.translate("LEGEND_ROOM") + "  ")
	sb.WriteString(t.StyleText(IconCorridor, renderer.StyleCorridor) + " " + t.translate("LEGEND_CORRIDOR") + "  ")
	sb.WriteString(t.StyleText(IconObstacle, renderer.StyleObstacle) + " " + t.translate("LEGEND_OBSTACLE") + "\n")
}

// cellIcon returns the icon and style for a cell kind
func cellIcon(kind world.CellKind) (string, renderer.TextStyle) {
	switch kind {
	case world.Floor:
		return IconFloor, renderer.StyleRoom
	case world.Corridor:
		return IconCorridor, renderer.StyleCorridor
	case world.Obstacle:
		return IconObstacle, renderer.StyleObstacle
	default:
		return IconRock, renderer.StyleRock
	}
}
