package mapgen

import (
	"io"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/katalvlaran/gridmap/gridgraph"
)

// Option customizes Generate.
type Option func(*genConfig)

type genConfig struct {
	logger  *log.Logger
	clock   func() time.Time
	conn    gridgraph.Connectivity
	analyze bool
}

// WithLogger sends the run's progress to l. Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("mapgen: WithLogger(nil)")
	}
	return func(c *genConfig) { c.logger = l }
}

// WithClock replaces time.Now for seeding and timing. Panics if now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("mapgen: WithClock(nil)")
	}
	return func(c *genConfig) { c.clock = now }
}

// WithAnalysis summarizes the open space of the finished map into
// Report.Summary. The analysis holds about two extra bytes per cell.
func WithAnalysis() Option {
	return func(c *genConfig) { c.analyze = true }
}

// WithDiagonals enables the analysis with 8-neighbor connectivity instead
// of the default 4.
func WithDiagonals() Option {
	return func(c *genConfig) {
		c.analyze = true
		c.conn = gridgraph.Conn8
	}
}

func newGenConfig(opts ...Option) genConfig {
	c := genConfig{clock: time.Now, conn: gridgraph.Conn4}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.New("mapgen")
		c.logger.SetOutput(io.Discard)
	}
	return c
}
