// Package levels serves generated layouts per level, reusing earlier results
// for configurations it has already seen.
package levels

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"bsplayout/pkg/game/generator"
)

const (
	layoutCacheTTL = 30 * time.Minute
	maxCachedCost  = 1 << 20 // shapes across all cached layouts
)

// Store generates layouts on demand and caches them by configuration
type Store struct {
	base  generator.Config
	gen   generator.LayoutGenerator
	cache *ristretto.Cache[uint64, *generator.Result]
	log   logrus.FieldLogger
}

// NewStore creates a store deriving level configs from base.
// A nil gen uses generator.DefaultGenerator; a nil log discards events.
func NewStore(base generator.Config, gen generator.LayoutGenerator, log logrus.FieldLogger) (*Store, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("level store: %w", err)
	}
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	cache, err := ristretto.NewCache(&ristretto.Config[uint64, *generator.Result]{
		NumCounters: 10000,
		MaxCost:     maxCachedCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("level store cache: %w", err)
	}

	return &Store{base: base, gen: gen, cache: cache, log: log}, nil
}

// Base returns the level 1 configuration
func (s *Store) Base() generator.Config {
	return s.base
}

// Level returns the layout for level n (1-based)
func (s *Store) Level(n int) (*generator.Result, error) {
	return s.Get(generator.ConfigForLevel(s.base, n))
}

// Get returns the layout for cfg, generating it on a cache miss.
// The returned Result is a private copy the caller may modify.
func (s *Store) Get(cfg generator.Config) (*generator.Result, error) {
	key, err := Key(cfg)
	if err != nil {
		return nil, err
	}
	log := s.log.WithFields(logrus.Fields{"seed": cfg.Seed, "key": fmt.Sprintf("%016x", key)})

	if cached, ok := s.cache.Get(key); ok && cached.Config == cfg {
		log.Debug("layout cache hit")
		return cached.Clone(), nil
	}

	res, err := s.gen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	s.cache.SetWithTTL(key, res.Clone(), cost(res), layoutCacheTTL)
	s.cache.Wait()
	log.Debug("layout cache miss")
	return res, nil
}

// Close releases the cache's background goroutines
func (s *Store) Close() {
	s.cache.Close()
}

// Key hashes a configuration into the cache key
func Key(cfg generator.Config) (uint64, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return 0, fmt.Errorf("hash config: %w", err)
	}
	return xxhash.Sum64(b), nil
}

func cost(res *generator.Result) int64 {
	n := len(res.Rooms) + len(res.Corridors) + len(res.Obstacles) + len(res.WallSegments)
	if n == 0 {
		return 1
	}
	return int64(n)
}
