package ebiten

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/world"
	"bsplayout/pkg/game/generator"
	"bsplayout/pkg/game/levels"
)

// EbitenRenderer shows one layout at a time and regenerates on key presses
type EbitenRenderer struct {
	store *levels.Store
	log   logrus.FieldLogger

	// Reused per frame by Update
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID

	// Guarded because Update and Draw may run on different goroutines
	mu        sync.RWMutex
	tileSize  int
	showWalls bool
	level     int
	cfg       generator.Config
	res       *generator.Result
	grid      *world.Grid
	err       error
}

// New creates a viewer starting at cfg. A level above zero derives the
// config from the store's base instead.
func New(store *levels.Store, cfg generator.Config, level int, log logrus.FieldLogger) (*EbitenRenderer, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	e := &EbitenRenderer{
		store:     store,
		log:       log,
		tileSize:  defaultTileSize,
		showWalls: true,
	}
	if level > 0 {
		cfg = generator.ConfigForLevel(store.Base(), level)
	}
	if err := e.load(level, cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// load generates (or fetches) the layout for cfg and makes it current
func (e *EbitenRenderer) load(level int, cfg generator.Config) error {
	res, err := e.store.Get(cfg)
	if err != nil {
		e.mu.Lock()
		e.err = err
		e.mu.Unlock()
		return err
	}
	grid := world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles)

	e.mu.Lock()
	e.level, e.cfg, e.res, e.grid, e.err = level, cfg, res, grid, nil
	e.mu.Unlock()

	e.log.WithFields(logrus.Fields{
		"level": level,
		"seed":  cfg.Seed,
		"rooms": len(res.Rooms),
	}).Info("layout loaded")
	return nil
}

// Reseed regenerates the current layout with the next seed
func (e *EbitenRenderer) Reseed(delta int64) error {
	e.mu.RLock()
	cfg, level := e.cfg, e.level
	e.mu.RUnlock()

	cfg.Seed += delta
	return e.load(level, cfg)
}

// ChangeLevel moves to another level, staying at level 1 or above
func (e *EbitenRenderer) ChangeLevel(delta int) error {
	e.mu.RLock()
	level := e.level
	e.mu.RUnlock()

	level += delta
	if level < 1 {
		level = 1
	}
	return e.load(level, generator.ConfigForLevel(e.store.Base(), level))
}

// Layout returns the logical screen size: the map at the current tile size plus the status bar
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.res == nil {
		return outsideWidth, outsideHeight
	}
	return e.res.Bounds.Width * e.tileSize, e.res.Bounds.Height*e.tileSize + statusBarHeight
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("BSP Layout")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
