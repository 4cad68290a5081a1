package generator

import (
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/rng"
)

// BSPGenerator generates layouts using Binary Space Partitioning
type BSPGenerator struct {
	// Log receives per-stage debug events. Nil discards them.
	Log logrus.FieldLogger
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Stats counts what each stage did, including the cases it degraded on
type Stats struct {
	Leaves               int `json:"leaves"`
	LeavesWithoutRoom    int `json:"leaves_without_room"`
	AbortedSplits        int `json:"aborted_splits"`
	SkippedConnections   int `json:"skipped_connections"`
	ObstacleSlots        int `json:"obstacle_slots"`
	ObstaclesPlaced      int `json:"obstacles_placed"`
	ObstaclesAbandoned   int `json:"obstacles_abandoned"`
	ObstacleSlotsStopped int `json:"obstacle_slots_stopped"`
}

// Result is a finished layout. Every call to Generate returns a fresh Result
// that shares nothing with earlier ones.
type Result struct {
	Config       Config             `json:"config"`
	Bounds       geom.Rect          `json:"bounds"`
	Tree         *Node              `json:"-"`
	Rooms        []geom.Rect        `json:"rooms"`
	Connections  []Connection       `json:"connections"`
	Corridors    []geom.Rect        `json:"corridors"`
	Obstacles    []geom.Rect        `json:"obstacles"`
	WallSegments []geom.WallSegment `json:"wall_segments"`
	Stats        Stats              `json:"stats"`
}

// Clone returns a deep copy that shares no slices or tree nodes with r
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	return &Result{
		Config:       r.Config,
		Bounds:       r.Bounds,
		Tree:         r.Tree.Clone(),
		Rooms:        slices.Clone(r.Rooms),
		Connections:  slices.Clone(r.Connections),
		Corridors:    slices.Clone(r.Corridors),
		Obstacles:    slices.Clone(r.Obstacles),
		WallSegments: slices.Clone(r.WallSegments),
		Stats:        r.Stats,
	}
}

// builder carries the state of one generation run
type builder struct {
	cfg   Config
	rnd   *rng.Rand
	log   logrus.FieldLogger
	stats Stats
}

var discardLog = newDiscardLogger()

func newDiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

func newBuilder(cfg Config, rnd *rng.Rand, log logrus.FieldLogger) *builder {
	if log == nil {
		log = discardLog
	}
	return &builder{cfg: cfg, rnd: rnd, log: log}
}

// Generate validates cfg and builds a layout from it.
// The same cfg always yields the same Result.
func (g *BSPGenerator) Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	log := g.Log
	if log == nil {
		log = discardLog
	}
	log = log.WithField("seed", cfg.Seed)

	b := newBuilder(cfg, rng.New(cfg.Seed), log)
	bounds := geom.NewRect(0, 0, cfg.MapSize.W, cfg.MapSize.H)

	tree := b.split(bounds)
	rooms := b.placeRooms(tree)
	conns := b.connect(tree, nil)
	corridors := CorridorRects(conns)
	obstacles := b.placeObstacles(rooms, corridors)

	res := &Result{
		Config:       cfg,
		Bounds:       bounds,
		Tree:         tree,
		Rooms:        rooms,
		Connections:  conns,
		Corridors:    corridors,
		Obstacles:    obstacles,
		WallSegments: BuildWallSegments(bounds, obstacles),
		Stats:        b.stats,
	}

	log.WithFields(logrus.Fields{
		"rooms":       len(res.Rooms),
		"connections": len(res.Connections),
		"obstacles":   len(res.Obstacles),
		"walls":       len(res.WallSegments),
	}).Debug("layout generated")

	return res, nil
}
