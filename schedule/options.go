package schedule

import (
	"io"

	"github.com/labstack/gommon/log"
)

// Option customizes Run.
type Option func(*runConfig)

type runConfig struct {
	logger *log.Logger
}

// WithLogger routes renderer progress and failures to l.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("schedule: WithLogger(nil)")
	}
	return func(c *runConfig) { c.logger = l }
}

func newRunConfig(opts ...Option) runConfig {
	c := runConfig{logger: discard()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func discard() *log.Logger {
	l := log.New("schedule")
	l.SetOutput(io.Discard)
	return l
}
