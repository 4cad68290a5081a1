// Package config loads command-line options from flags, environment,
// a .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bsplayout/pkg/game/generator"
	"bsplayout/pkg/logging"
)

// EnvPrefix prefixes every environment variable, e.g. BSPGEN_SEED
const EnvPrefix = "BSPGEN"

const defaultEnvFile = ".env"

// Output formats
const (
	FormatASCII    = "ascii"
	FormatMap      = "map"
	FormatDump     = "dump"
	FormatJSON     = "json"
	FormatSegments = "segments"
	FormatHTML     = "html"
)

var formats = []string{FormatASCII, FormatMap, FormatDump, FormatJSON, FormatSegments, FormatHTML}

// Options is everything a bspgen run needs
type Options struct {
	Generator generator.Config `mapstructure:",squash"`

	Level  int             `mapstructure:"level"`
	Format string          `mapstructure:"format"`
	Out    string          `mapstructure:"out"`
	In     string          `mapstructure:"in"`
	Color  string          `mapstructure:"color"`
	Tree   bool            `mapstructure:"tree"`
	View   bool            `mapstructure:"view"`
	Log    logging.Options `mapstructure:"log"`
}

// flagKeys maps flag names to viper keys
var flagKeys = map[string]string{
	"width":         "map_size.w",
	"height":        "map_size.h",
	"seed":          "seed",
	"depth":         "max_depth",
	"min-leaf":      "min_leaf_size",
	"corridor":      "corridor_width",
	"padding":       "room_padding",
	"obstacles":     "max_obstacles_per_room",
	"clearance":     "obstacle_clearance",
	"level":         "level",
	"format":        "format",
	"out":           "out",
	"in":            "in",
	"color":         "color",
	"tree":          "tree",
	"view":          "view",
	"log-level":     "log.level",
	"log-file":      "log.file",
	"log-json":      "log.json",
	"log-max-size":  "log.max_size_mb",
	"log-max-files": "log.max_backups",
}

// RegisterFlags adds the bspgen flags to flags
func RegisterFlags(flags *pflag.FlagSet) {
	def := generator.DefaultConfig()
	logDef := logging.DefaultOptions()

	flags.StringP("config", "c", "", "config file (yaml, toml or json)")
	flags.String("env-file", defaultEnvFile, "dotenv file loaded before reading the environment")

	flags.Int("width", def.MapSize.W, "map width in tiles")
	flags.Int("height", def.MapSize.H, "map height in tiles")
	flags.Int64P("seed", "s", def.Seed, "random seed")
	flags.Int("depth", def.MaxDepth, "maximum BSP depth")
	flags.Int("min-leaf", def.MinLeafSize, "minimum leaf side")
	flags.Int("corridor", def.CorridorWidth, "corridor thickness")
	flags.Int("padding", def.RoomPadding, "margin between a room and its leaf")
	flags.Int("obstacles", def.MaxObstaclesPerRoom, "maximum obstacles per room (0 disables)")
	flags.Int("clearance", def.ObstacleClearance, "obstacle clearance")

	flags.IntP("level", "l", 0, "derive the config for this level (1-based, 0 uses it as is)")
	flags.StringP("format", "f", FormatASCII, "output format: "+strings.Join(formats, "|"))
	flags.StringP("out", "o", "", "output file (stdout when empty)")
	flags.StringP("in", "i", "", "render a layout read from a JSON export instead of generating one")
	flags.String("color", "auto", "color output: auto|always|never")
	flags.Bool("tree", false, "dump the split tree after the layout")
	flags.Bool("view", false, "open the layout in a window instead of printing it")

	flags.String("log-level", logDef.Level, "log level")
	flags.String("log-file", logDef.File, "rotating log file (stderr when empty)")
	flags.Bool("log-json", logDef.JSON, "log as JSON")
	flags.Int("log-max-size", logDef.MaxSizeMB, "log file size in MB before rotating")
	flags.Int("log-max-files", logDef.MaxBackups, "rotated log files to keep")
}

func setDefaults(v *viper.Viper) {
	def := generator.DefaultConfig()
	v.SetDefault("map_size.w", def.MapSize.W)
	v.SetDefault("map_size.h", def.MapSize.H)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("max_depth", def.MaxDepth)
	v.SetDefault("min_leaf_size", def.MinLeafSize)
	v.SetDefault("corridor_width", def.CorridorWidth)
	v.SetDefault("room_padding", def.RoomPadding)
	v.SetDefault("min_room_size.w", def.MinRoomSize.W)
	v.SetDefault("min_room_size.h", def.MinRoomSize.H)
	v.SetDefault("max_room_size.w", def.MaxRoomSize.W)
	v.SetDefault("max_room_size.h", def.MaxRoomSize.H)
	v.SetDefault("max_obstacles_per_room", def.MaxObstaclesPerRoom)
	v.SetDefault("min_obstacle_size.w", def.MinObstacleSize.W)
	v.SetDefault("min_obstacle_size.h", def.MinObstacleSize.H)
	v.SetDefault("max_obstacle_size.w", def.MaxObstacleSize.W)
	v.SetDefault("max_obstacle_size.h", def.MaxObstacleSize.H)
	v.SetDefault("obstacle_clearance", def.ObstacleClearance)

	v.SetDefault("level", 0)
	v.SetDefault("format", FormatASCII)
	v.SetDefault("out", "")
	v.SetDefault("in", "")
	v.SetDefault("color", "auto")
	v.SetDefault("tree", false)
	v.SetDefault("view", false)

	logDef := logging.DefaultOptions()
	v.SetDefault("log.level", logDef.Level)
	v.SetDefault("log.file", logDef.File)
	v.SetDefault("log.json", logDef.JSON)
	v.SetDefault("log.max_size_mb", logDef.MaxSizeMB)
	v.SetDefault("log.max_backups", logDef.MaxBackups)
}

// Load resolves options from a parsed flag set. Precedence, highest first:
// explicitly set flags, environment (after the .env file), config file, defaults.
func Load(flags *pflag.FlagSet) (*Options, error) {
	if err := loadEnvFile(flags); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// loadEnvFile loads the dotenv file. A missing default file is ignored;
// a missing file named explicitly is an error.
func loadEnvFile(flags *pflag.FlagSet) error {
	path, _ := flags.GetString("env-file")
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !flags.Changed("env-file") {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// Validate checks the options that are not part of the generator config
func (o *Options) Validate() error {
	if !slices.Contains(formats, o.Format) {
		return fmt.Errorf("unknown format %q (want %s)", o.Format, strings.Join(formats, "|"))
	}
	switch o.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (want auto|always|never)", o.Color)
	}
	if o.Level < 0 {
		return fmt.Errorf("level must be >= 0 (got %d)", o.Level)
	}
	if o.In != "" && o.View {
		return fmt.Errorf("--in cannot be combined with --view")
	}
	return nil
}
