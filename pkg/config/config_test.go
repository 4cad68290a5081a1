package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"bsplayout/pkg/game/generator"
)

// load parses args into a fresh flag set and resolves options from it.
// The default .env lookup is disabled unless args name one.
func load(t *testing.T, args ...string) (*Options, error) {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Set("env-file", ""); err != nil {
		t.Fatalf("reset env-file: %v", err)
	}
	if err := flags.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error: %v", args, err)
	}
	return Load(flags)
}

func TestLoad_Defaults(t *testing.T) {
	opts, err := load(t)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Generator != generator.DefaultConfig() {
		t.Errorf("Generator = %+v, want DefaultConfig()", opts.Generator)
	}
	if opts.Format != FormatASCII || opts.Color != "auto" || opts.Level != 0 {
		t.Errorf("options = %+v, want ascii/auto/level 0", opts)
	}
	if opts.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", opts.Log.Level)
	}
}

func TestLoad_Flags(t *testing.T) {
	opts, err := load(t, "--seed", "77", "--width", "90", "--height=50", "-f", "json", "--obstacles", "0", "--log-level", "debug")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	g := opts.Generator
	if g.Seed != 77 || g.MapSize.W != 90 || g.MapSize.H != 50 || g.MaxObstaclesPerRoom != 0 {
		t.Errorf("Generator = %+v, want flags applied", g)
	}
	if opts.Format != FormatJSON {
		t.Errorf("Format = %q, want json", opts.Format)
	}
	if opts.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", opts.Log.Level)
	}
	if g.MinRoomSize != generator.DefaultConfig().MinRoomSize {
		t.Errorf("MinRoomSize = %+v, want default", g.MinRoomSize)
	}
}

func TestLoad_EnvironmentBelowFlags(t *testing.T) {
	t.Setenv("BSPGEN_SEED", "500")
	t.Setenv("BSPGEN_MAX_DEPTH", "6")
	t.Setenv("BSPGEN_LOG_LEVEL", "info")

	opts, err := load(t, "--seed", "9")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Generator.Seed != 9 {
		t.Errorf("Seed = %d, want flag value 9 over environment", opts.Generator.Seed)
	}
	if opts.Generator.MaxDepth != 6 {
		t.Errorf("MaxDepth = %d, want 6 from environment", opts.Generator.MaxDepth)
	}
	if opts.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info from environment", opts.Log.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	yaml := strings.Join([]string{
		"seed: 31337",
		"max_room_size:",
		"  w: 12",
		"  h: 8",
		"format: dump",
		"log:",
		"  json: true",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := load(t, "--config", path, "--format", "segments")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Generator.Seed != 31337 {
		t.Errorf("Seed = %d, want 31337 from file", opts.Generator.Seed)
	}
	if opts.Generator.MaxRoomSize != (generator.Size{W: 12, H: 8}) {
		t.Errorf("MaxRoomSize = %+v, want 12x8 from file", opts.Generator.MaxRoomSize)
	}
	if opts.Format != FormatSegments {
		t.Errorf("Format = %q, want flag to win over file", opts.Format)
	}
	if !opts.Log.JSON {
		t.Error("Log.JSON = false, want true from file")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	if _, err := load(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing config file = nil error, want error")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("BSPGEN_CORRIDOR_WIDTH=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("BSPGEN_CORRIDOR_WIDTH") })

	opts, err := load(t, "--env-file", path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.Generator.CorridorWidth != 3 {
		t.Errorf("CorridorWidth = %d, want 3 from env file", opts.Generator.CorridorWidth)
	}

	if _, err := load(t, "--env-file", filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Load() with an explicit missing env file = nil error, want error")
	}
}

func TestLoad_RejectsBadOptions(t *testing.T) {
	tests := [][]string{
		{"--format", "png"},
		{"--color", "sometimes"},
		{"--level", "-1"},
		{"--in", "layout.json", "--view"},
	}
	for _, args := range tests {
		if _, err := load(t, args...); err == nil {
			t.Errorf("Load(%v) = nil error, want error", args)
		}
	}
}

func TestLoad_Input(t *testing.T) {
	opts, err := load(t, "-i", "layout.json", "--format", "map")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if opts.In != "layout.json" || opts.Format != FormatMap {
		t.Errorf("In, Format = %q, %q, want layout.json, map", opts.In, opts.Format)
	}
}
