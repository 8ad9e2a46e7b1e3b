// Package mapgen runs the whole map-generation pipeline: validate the run
// configuration, place obstacles, render the scaled text map in parallel
// shards, combine them, export the raster and summarize the result.
//
// Phases run strictly in that order. Placement finishes before the first
// renderer starts, so renderers read the grid without locking.
package mapgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/katalvlaran/gridmap/combine"
	"github.com/katalvlaran/gridmap/config"
	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/gridgraph"
	"github.com/katalvlaran/gridmap/obstacle"
	"github.com/katalvlaran/gridmap/raster"
	"github.com/katalvlaran/gridmap/render"
	"github.com/katalvlaran/gridmap/schedule"
)

// ErrInvalidConfig wraps every validation failure from config.Validate.
var ErrInvalidConfig = errors.New("mapgen: invalid configuration")

// Report describes a finished run.
type Report struct {
	Seed           int64             // seed actually used
	FinalDimension int               // side of the text map
	Placed         int               // obstacles stamped
	Elapsed        time.Duration     // wall time of the run
	Analyzed       bool              // Summary was computed
	Summary        gridgraph.Summary // open space of the unscaled map; zero unless Analyzed
}

// Generate executes one run described by cfg. Nothing is written when cfg
// is invalid. ctx is checked between phases; a phase that has started
// always runs to completion. Shards of failed renderers are not cleaned
// up, and a partially combined map file is left in place.
func Generate(ctx context.Context, cfg config.Config, opts ...Option) (Report, error) {
	gc := newGenConfig(opts...)
	start := gc.clock()
	l := gc.logger

	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("Generate: %w: %w", ErrInvalidConfig, err)
	}
	final, _ := cfg.FinalDimension()
	rep := Report{Seed: cfg.ResolveSeed(start), FinalDimension: final}

	logParams(l, cfg, rep)
	if cfg.Workers > runtime.NumCPU() {
		l.Warnf("The number of workers, %d, is more than the number of processors on this machine (%d).",
			cfg.Workers, runtime.NumCPU())
	}
	for _, path := range []string{cfg.Output, cfg.Image} {
		if _, err := os.Stat(path); err == nil {
			l.Warnf("The file %s already exists. It will be overwritten.", path)
		}
	}
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}

	g, err := grid.New(cfg.Dimension, cfg.Dimension)
	if err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}
	placer, err := obstacle.NewPlacer(g, cfg.MaxObstacleSize, obstacle.NewBudget(cfg.Obstacles),
		obstacle.WithSeed(rep.Seed), obstacle.WithPlacers(cfg.Placers))
	if err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}
	rep.Placed = placer.Place()
	l.Infof("Placed %d obstacles covering %d cells", rep.Placed, g.Count(grid.Obstacle))

	renderErr := schedule.Run(ctx, g, cfg.Workers, cfg.ScaleFactor, cfg.Output, schedule.WithLogger(l))
	if renderErr != nil && !errors.Is(renderErr, render.ErrShardIO) {
		return rep, fmt.Errorf("Generate: %w", renderErr)
	}
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("Generate: %w", errors.Join(renderErr, err))
	}

	l.Infof("Combining separate map files into %s", cfg.Output)
	combineErr := combine.CombineFile(cfg.Output, cfg.Output, cfg.Workers, cfg.Dimension, cfg.ScaleFactor)
	if err := errors.Join(renderErr, combineErr); err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}

	if err := raster.Export(cfg.Image, g, cfg.Format()); err != nil {
		return rep, fmt.Errorf("Generate: %w", err)
	}
	l.Infof("Wrote %s image %s (%dx%d)", cfg.Format(), cfg.Image, cfg.Dimension, cfg.Dimension)

	if gc.analyze {
		gg, err := gridgraph.FromGrid(g, gc.conn)
		if err != nil {
			return rep, fmt.Errorf("Generate: %w", err)
		}
		rep.Summary, rep.Analyzed = gg.Summarize(), true
		l.Infof("Open cells: %d, obstacle cells: %d, regions: %d, largest region: %d",
			rep.Summary.Open, rep.Summary.Obstacles, rep.Summary.Components, rep.Summary.Largest)
	}

	rep.Elapsed = gc.clock().Sub(start)
	return rep, nil
}
