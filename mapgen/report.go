package mapgen

import (
	"fmt"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/katalvlaran/gridmap/config"
)

// logParams prints the run's parameter block.
func logParams(l *log.Logger, cfg config.Config, rep Report) {
	l.Infof("Dimension: %d", cfg.Dimension)
	l.Infof("Obstacles: %d", cfg.Obstacles)
	l.Infof("Obstacle Max Size: %d x %d", cfg.MaxObstacleSize, cfg.MaxObstacleSize)
	l.Infof("Number of Workers: %d", cfg.Workers)
	l.Infof("Number of Placers: %d", cfg.Placers)
	l.Infof("Scale Factor: %d", cfg.ScaleFactor)
	l.Infof("Seed: %d", rep.Seed)
	l.Infof("Final Dimension: %d x %d", rep.FinalDimension, rep.FinalDimension)
}

// FormatElapsed renders d as "M min S sec", truncating to whole seconds.
func FormatElapsed(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d min %d sec", s/60, s%60)
}

// Connected reports whether every open cell of the map is reachable from
// every other one. Without analysis it reports false.
func (r Report) Connected() bool {
	return r.Analyzed && r.Summary.Components <= 1
}
