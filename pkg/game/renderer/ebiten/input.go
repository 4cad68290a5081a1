package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "bsplayout/pkg/engine/input"
	"bsplayout/pkg/game/devtools"
)

// gamepadCodes maps standard gamepad buttons to binding codes
var gamepadCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:   "gamepad_a",
	ebiten.StandardGamepadButtonFrontTopRight: "gamepad_r1",
	ebiten.StandardGamepadButtonFrontTopLeft:  "gamepad_l1",
	ebiten.StandardGamepadButtonCenterRight:   "gamepad_start",
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	for _, raw := range e.pollInput() {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if intent.Action == engineinput.ActionQuit {
			return ebiten.Termination
		}
		e.apply(intent)
	}
	return nil
}

// pollInput collects this frame's just-pressed keys and buttons
func (e *EbitenRenderer) pollInput() []engineinput.RawInput {
	now := time.Now()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	var events []engineinput.RawInput
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		code := k.String()
		if shift {
			code = "shift+" + code
		}
		events = append(events, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
	}

	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				events = append(events, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now})
			}
		}
	}
	return events
}

// apply performs a non-quit intent
func (e *EbitenRenderer) apply(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionReseed:
		e.logError(e.Reseed(1))
	case engineinput.ActionReseedBack:
		e.logError(e.Reseed(-1))
	case engineinput.ActionNextLevel:
		e.logError(e.ChangeLevel(1))
	case engineinput.ActionPrevLevel:
		e.logError(e.ChangeLevel(-1))
	case engineinput.ActionToggleWalls:
		e.mu.Lock()
		e.showWalls = !e.showWalls
		e.mu.Unlock()
	case engineinput.ActionZoomIn, engineinput.ActionZoomOut, engineinput.ActionZoomReset:
		e.handleZoom(intent.Action)
	case engineinput.ActionScreenshot:
		e.screenshot()
	case engineinput.ActionDumpMap:
		e.dumpMap()
	}
}

// dumpMap writes the debug dump of the current layout to map.txt
func (e *EbitenRenderer) dumpMap() {
	e.mu.RLock()
	res := e.res
	e.mu.RUnlock()

	path, err := devtools.DumpMapToFile(res, "")
	if err != nil {
		e.log.WithError(err).Warn("map dump failed")
		return
	}
	e.log.WithField("file", path).Info("map dump saved")
}

// screenshot saves the current layout as an HTML page in the working directory
func (e *EbitenRenderer) screenshot() {
	e.mu.RLock()
	res := e.res
	e.mu.RUnlock()
	if res == nil {
		return
	}

	filename, err := devtools.SaveScreenshotHTML(res)
	if err != nil {
		e.log.WithError(err).Warn("screenshot failed")
		return
	}
	e.log.WithField("file", filename).Info("screenshot saved")
}

func (e *EbitenRenderer) logError(err error) {
	if err != nil {
		e.log.WithError(err).Warn("layout generation failed")
	}
}

// handleZoom adjusts the tile size
func (e *EbitenRenderer) handleZoom(action engineinput.Action) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch action {
	case engineinput.ActionZoomIn:
		e.increaseTileSize()
	case engineinput.ActionZoomOut:
		e.decreaseTileSize()
	case engineinput.ActionZoomReset:
		e.tileSize = defaultTileSize
	}
}

// increaseTileSize increases the tile size
func (e *EbitenRenderer) increaseTileSize() {
	if e.tileSize < maxTileSize {
		e.tileSize += tileSizeStep
	}
}

// decreaseTileSize decreases the tile size
func (e *EbitenRenderer) decreaseTileSize() {
	if e.tileSize > minTileSize {
		e.tileSize -= tileSizeStep
	}
}
