// Package schedule splits a grid into row-range partitions and runs one
// renderer per partition concurrently, joining all of them before
// returning.
//
// A renderer failure never cancels its siblings; every failure is logged
// and the joined error is returned once all renderers have finished.
package schedule

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/render"
)

var (
	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("schedule: workers must be at least 1")
	// ErrBadRows indicates a negative row count.
	ErrBadRows = errors.New("schedule: rows must be non-negative")
)

// Plan divides rows [0, rows) into workers contiguous partitions of
// rows/workers rows each; the last partition also absorbs the remainder.
// When workers exceeds rows every partition but the last is empty.
//
// Complexity: O(workers).
func Plan(rows, workers, scale int) ([]render.Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("Plan: workers=%d: %w", workers, ErrBadWorkers)
	}
	if rows < 0 {
		return nil, fmt.Errorf("Plan: rows=%d: %w", rows, ErrBadRows)
	}

	base := rows / workers
	parts := make([]render.Partition, workers)
	for i := range parts {
		parts[i] = render.Partition{
			StartRow: i * base,
			EndRow:   (i + 1) * base,
			Scale:    scale,
			Shard:    i,
		}
	}
	parts[workers-1].EndRow = rows

	return parts, nil
}

// Run plans the partitions of g and renders each into its shard
// render.ShardName(prefix, i) on its own goroutine. It returns after every
// renderer has finished. ctx is only consulted before any renderer starts.
func Run(ctx context.Context, g *grid.Grid, workers, scale int, prefix string, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("Run: %w", render.ErrNilGrid)
	}
	cfg := newRunConfig(opts...)

	parts, err := Plan(g.Rows(), workers, scale)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	for _, p := range parts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("Run: shard %d: %w", p.Shard, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	errs := make([]error, len(parts))
	var eg errgroup.Group
	for i, p := range parts {
		i, p := i, p
		eg.Go(func() error {
			cfg.logger.Debugf("renderer %d: rows [%d,%d)", p.Shard, p.StartRow, p.EndRow)
			if err := render.Render(p, g, prefix); err != nil {
				cfg.logger.Errorf("renderer %d failed: %v", p.Shard, err)
				errs[i] = err
				return err
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("Run: %w", errors.Join(errs...))
	}

	return nil
}
