package dict

import (
	"time"

	"go.uber.org/zap"
)

const (
	// defaultMaxLoad lets every slot be occupied.
	defaultMaxLoad = 1.0
)

type config struct {
	seed    int64
	maxLoad float64
	logger  *zap.Logger
}

func defaultConfig() config {
	return config{
		seed:    time.Now().UnixNano(),
		maxLoad: defaultMaxLoad,
		logger:  zap.NewNop(),
	}
}

// Option configures a ProbeTable at construction.
type Option func(*config)

// WithSeed fixes the seed the permutation is drawn from, making probe paths
// reproducible across runs.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithMaxLoad caps occupancy at floor(capacity*load) entries. load must be in (0, 1].
func WithMaxLoad(load float64) Option {
	return func(c *config) {
		c.maxLoad = load
	}
}

// WithLogger sets the logger used for debug events. nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
