package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	// Layout
	ActionReseed
	ActionReseedBack
	ActionNextLevel
	ActionPrevLevel

	// View
	ActionToggleWalls
	ActionZoomIn
	ActionZoomOut
	ActionZoomReset
	ActionScreenshot
	ActionDumpMap
	ActionQuit
)

// Intent is the top layer: what the user wants the viewer to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a lower-case key name, optionally prefixed with "shift+".
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is a raw event after deduplication. Ebiten's
// just-pressed tracking already debounces, so this only normalises the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"r":       ActionReseed,
	"shift+r": ActionReseedBack,

	"n":        ActionNextLevel,
	"pagedown": ActionNextLevel,
	"p":        ActionPrevLevel,
	"pageup":   ActionPrevLevel,

	"w": ActionToggleWalls,

	"equal":          ActionZoomIn,
	"shift+equal":    ActionZoomIn,
	"numpadadd":      ActionZoomIn,
	"minus":          ActionZoomOut,
	"numpadsubtract": ActionZoomOut,
	"digit0":         ActionZoomReset,
	"numpad0":        ActionZoomReset,

	"f12": ActionScreenshot,
	"s":   ActionScreenshot,
	"m":   ActionDumpMap,
	"f9":  ActionDumpMap,

	"escape": ActionQuit,
	"q":      ActionQuit,

	"gamepad_a":     ActionReseed,
	"gamepad_r1":    ActionNextLevel,
	"gamepad_l1":    ActionPrevLevel,
	"gamepad_start": ActionQuit,
}

// MapToIntent applies the current bindings to a debounced input.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionReseed:
		return "Next Seed"
	case ActionReseedBack:
		return "Previous Seed"
	case ActionNextLevel:
		return "Next Level"
	case ActionPrevLevel:
		return "Previous Level"
	case ActionToggleWalls:
		return "Toggle Walls"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Reset Zoom"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// PrimaryKey returns the shortest keyboard code bound to a, or "" if none.
// Ties resolve alphabetically.
func PrimaryKey(a Action) string {
	best := ""
	for _, code := range GetBindingsByAction()[a] {
		if strings.HasPrefix(code, "gamepad_") {
			continue
		}
		if best == "" || len(code) < len(best) {
			best = code
		}
	}
	return best
}
