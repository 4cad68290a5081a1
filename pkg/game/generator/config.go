package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid generation config")

// MaxPlacementAttempts bounds the rejection sampling for a single obstacle slot
const MaxPlacementAttempts = 24

// Level scaling limits used by ConfigForLevel
const (
	levelWidthStep  = 8
	levelHeightStep = 4
	levelDepthEvery = 3 // one extra split level every N levels
	maxLevelWidth   = 128
	maxLevelHeight  = 80
	maxLevelDepth   = 8
)

// Size is a width/height pair in tiles
type Size struct {
	W int `json:"w" mapstructure:"w" validate:"gt=0"`
	H int `json:"h" mapstructure:"h" validate:"gt=0"`
}

// Config holds every input of a generation run. A Config is a value; a
// generation never modifies it.
type Config struct {
	MapSize Size  `json:"map_size" mapstructure:"map_size"`
	Seed    int64 `json:"seed" mapstructure:"seed"`

	// BSP
	MaxDepth      int `json:"max_depth" mapstructure:"max_depth" validate:"gte=0,lte=32"`
	MinLeafSize   int `json:"min_leaf_size" mapstructure:"min_leaf_size" validate:"gt=0"`
	CorridorWidth int `json:"corridor_width" mapstructure:"corridor_width" validate:"gt=0"`
	RoomPadding   int `json:"room_padding" mapstructure:"room_padding" validate:"gte=0"`

	// Rooms
	MinRoomSize Size `json:"min_room_size" mapstructure:"min_room_size"`
	MaxRoomSize Size `json:"max_room_size" mapstructure:"max_room_size"`

	// Obstacles; MaxObstaclesPerRoom == 0 disables them
	MaxObstaclesPerRoom int  `json:"max_obstacles_per_room" mapstructure:"max_obstacles_per_room" validate:"gte=0"`
	MinObstacleSize     Size `json:"min_obstacle_size" mapstructure:"min_obstacle_size"`
	MaxObstacleSize     Size `json:"max_obstacle_size" mapstructure:"max_obstacle_size"`
	ObstacleClearance   int  `json:"obstacle_clearance" mapstructure:"obstacle_clearance" validate:"gte=0"`
}

// DefaultConfig returns the stock 64x40 layout settings
func DefaultConfig() Config {
	return Config{
		MapSize:             Size{W: 64, H: 40},
		Seed:                12345,
		MaxDepth:            4,
		MinLeafSize:         12,
		CorridorWidth:       2,
		RoomPadding:         1,
		MinRoomSize:         Size{W: 6, H: 6},
		MaxRoomSize:         Size{W: 14, H: 10},
		MaxObstaclesPerRoom: 1,
		MinObstacleSize:     Size{W: 2, H: 2},
		MaxObstacleSize:     Size{W: 4, H: 3},
		ObstacleClearance:   2,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports configurations that cannot describe a layout.
// The returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, fmt.Sprintf("%s must satisfy %s=%s (got %v)",
				strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag(), fe.Param(), fe.Value()))
		}
	}

	if c.MaxRoomSize.W < c.MinRoomSize.W || c.MaxRoomSize.H < c.MinRoomSize.H {
		problems = append(problems, fmt.Sprintf("MaxRoomSize %dx%d is smaller than MinRoomSize %dx%d",
			c.MaxRoomSize.W, c.MaxRoomSize.H, c.MinRoomSize.W, c.MinRoomSize.H))
	}
	if c.MaxObstacleSize.W < c.MinObstacleSize.W || c.MaxObstacleSize.H < c.MinObstacleSize.H {
		problems = append(problems, fmt.Sprintf("MaxObstacleSize %dx%d is smaller than MinObstacleSize %dx%d",
			c.MaxObstacleSize.W, c.MaxObstacleSize.H, c.MinObstacleSize.W, c.MinObstacleSize.H))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ConfigForLevel derives the config for a 1-based level from base.
// Level 1 is base itself. Higher levels get a larger map and deeper splits,
// capped so late levels stay readable, and a seed offset by the level.
func ConfigForLevel(base Config, level int) Config {
	if level < 1 {
		level = 1
	}
	step := level - 1

	c := base
	c.MapSize.W = grow(base.MapSize.W, step*levelWidthStep, maxLevelWidth)
	c.MapSize.H = grow(base.MapSize.H, step*levelHeightStep, maxLevelHeight)
	c.MaxDepth = grow(base.MaxDepth, step/levelDepthEvery, maxLevelDepth)
	c.Seed = base.Seed + int64(step)
	return c
}

// grow adds delta to v without passing limit, and never shrinks v
func grow(v, delta, limit int) int {
	return max(v, min(v+delta, limit))
}
