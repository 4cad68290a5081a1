package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gookit/color"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/game/generator"
	"bsplayout/pkg/game/renderer"
)

func render(t *testing.T, r *TUIRenderer, res *generator.Result) string {
	t.Helper()
	r.Init()
	var sb strings.Builder
	if err := r.RenderLayout(&sb, res); err != nil {
		t.Fatalf("RenderLayout() error: %v", err)
	}
	return sb.String()
}

func TestRenderLayout_Plain(t *testing.T) {
	res, err := generator.Generate(generator.DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out := render(t, NewPlain(), res)

	for _, want := range []string{"Generator: BSP Tree", "Seed: 12345", "Map: 64x40", "Legend:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output contains escape codes")
	}
	if strings.Contains(out, "Warning") {
		t.Error("default layout reported a disconnected floor")
	}

	mapRows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, IconRock) || strings.HasPrefix(line, IconFloor) {
			mapRows++
			if n := utf8.RuneCountInString(line); n != 64 {
				t.Errorf("map row has %d cells, want 64", n)
			}
		}
	}
	if mapRows != 40 {
		t.Errorf("map has %d rows, want 40", mapRows)
	}
}

func TestRenderLayout_ColorMatchesPlainText(t *testing.T) {
	res, err := generator.Generate(generator.DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	plain := render(t, NewPlain(), res)
	colored := render(t, New(), res)
	if got := color.ClearCode(colored); got != plain {
		t.Error("colored output differs from plain output once escape codes are removed")
	}
}

func TestRenderLayout_WarnsOnDisconnectedFloor(t *testing.T) {
	res := &generator.Result{
		Config: generator.DefaultConfig(),
		Bounds: geom.NewRect(0, 0, 20, 8),
		Rooms:  []geom.Rect{geom.NewRect(1, 1, 5, 5), geom.NewRect(12, 1, 5, 5)},
	}
	out := render(t, NewPlain(), res)
	if !strings.Contains(out, "Warning: floor is not fully connected") {
		t.Errorf("output missing connectivity warning:\n%s", out)
	}
}

func TestFormatText(t *testing.T) {
	r := NewPlain()
	r.Init()

	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"GT{ROOMS}", nil, "Rooms"},
		{"LABEL{SEED}: VAL{%d}", []any{-7}, "Seed: -7"},
		{"GT{NOT_A_KEY}", nil, "NOT_A_KEY"},
		{"no markup", nil, "no markup"},
		{"BOGUS{x}", nil, "ERROR, function not found: BOGUS -> x"},
	}
	for _, tt := range tests {
		if got := r.FormatText(tt.msg, tt.args...); got != tt.want {
			t.Errorf("FormatText(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestCurrentRenderer(t *testing.T) {
	prev := renderer.Current
	defer func() { renderer.Current = prev }()

	res, err := generator.Generate(generator.DefaultConfig())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	renderer.Current = nil
	var empty strings.Builder
	if err := renderer.RenderLayout(&empty, res); err != nil || empty.Len() != 0 {
		t.Errorf("RenderLayout() without a renderer = (%q, %v), want no output", empty.String(), err)
	}

	renderer.SetRenderer(NewPlain())
	var sb strings.Builder
	if err := renderer.RenderLayout(&sb, res); err != nil {
		t.Fatalf("RenderLayout() error: %v", err)
	}
	if !strings.Contains(sb.String(), "Obstacles: 0") {
		t.Errorf("RenderLayout() output missing obstacle count:\n%s", sb.String())
	}
}
