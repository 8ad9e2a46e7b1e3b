// SPDX-License-Identifier: MIT
// Package: gridmap/obstacle
//
// placer.go - the obstacle placing loop.
//
// Locking:
//   • Budget.mu  guards the obstacle counter (inside Budget).
//   • Placer.mu  guards the grid while a rectangle is stamped.
//   The two critical sections are separate: a worker takes budget, releases,
//   draws its rectangle lock-free, then stamps under the grid lock. The total
//   stamped therefore equals the initial budget for any worker count.

package obstacle

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/gridmap/grid"
)

// Sentinel errors for obstacle placement.
var (
	// ErrNilGrid indicates NewPlacer received a nil grid.
	ErrNilGrid = errors.New("obstacle: grid is nil")
	// ErrNilBudget indicates NewPlacer received a nil budget.
	ErrNilBudget = errors.New("obstacle: budget is nil")
	// ErrBadMaxSize indicates a max obstacle size outside [1, min(rows, cols)).
	ErrBadMaxSize = errors.New("obstacle: max obstacle size out of range")
)

// methodNewPlacer prefixes constructor errors.
const methodNewPlacer = "NewPlacer"

// Rect is a clipped obstacle rectangle covering [Row,EndRow)×[Col,EndCol).
type Rect struct {
	Row, Col       int
	EndRow, EndCol int
}

// Height returns the number of stamped rows.
func (r Rect) Height() int { return r.EndRow - r.Row }

// Width returns the number of stamped columns.
func (r Rect) Width() int { return r.EndCol - r.Col }

// Placer stamps obstacles onto a grid until its Budget is exhausted.
type Placer struct {
	mu      sync.Mutex // grid lock; distinct from budget.mu
	grid    *grid.Grid
	budget  *Budget
	maxSize int
	cfg     placerConfig
}

// NewPlacer validates its inputs and resolves opts.
// maxSize must satisfy 1 ≤ maxSize < min(rows, cols).
func NewPlacer(g *grid.Grid, maxSize int, budget *Budget, opts ...Option) (*Placer, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlacer, ErrNilGrid)
	}
	if budget == nil {
		return nil, fmt.Errorf("%s: %w", methodNewPlacer, ErrNilBudget)
	}
	if maxSize < 1 || maxSize >= min(g.Rows(), g.Cols()) {
		return nil, fmt.Errorf("%s: maxSize=%d for %dx%d grid: %w",
			methodNewPlacer, maxSize, g.Rows(), g.Cols(), ErrBadMaxSize)
	}

	return &Placer{
		grid:    g,
		budget:  budget,
		maxSize: maxSize,
		cfg:     newPlacerConfig(opts...),
	}, nil
}

// Place runs the configured number of workers to completion and returns
// the total number of rectangles stamped. With one placer it runs on the
// calling goroutine using the base RNG stream.
// Complexity: O(N × maxSize²) cell writes for N obstacles.
func (p *Placer) Place() int {
	if p.cfg.placers == 1 {
		return p.Run(p.cfg.rng)
	}

	// Derive every stream before any worker starts: the base RNG is not
	// safe for concurrent use.
	rngs := make([]*rand.Rand, p.cfg.placers)
	for i := range rngs {
		rngs[i] = deriveRNG(p.cfg.rng, uint64(i))
	}

	counts := make([]int, p.cfg.placers)
	var wg sync.WaitGroup
	wg.Add(p.cfg.placers)
	for i := range rngs {
		go func(id int) {
			defer wg.Done()
			counts[id] = p.Run(rngs[id])
		}(i)
	}
	wg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Run is one placing worker: it loops until Budget.Take fails and returns
// how many rectangles this worker stamped. rng must not be shared with
// another running worker.
func (p *Placer) Run(rng *rand.Rand) int {
	rows, cols := p.grid.Rows(), p.grid.Cols()
	placed := 0
	for p.budget.Take() {
		width := nonZero(rng, p.maxSize)
		height := nonZero(rng, p.maxSize)
		row := nonZero(rng, rows-1)
		col := nonZero(rng, cols-1)

		p.stamp(Rect{
			Row:    row,
			Col:    col,
			EndRow: min(row+height, rows),
			EndCol: min(col+width, cols),
		})
		placed++
	}
	return placed
}

// stamp writes r under the grid lock and reports it to the hook.
func (p *Placer) stamp(r Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.grid.Fill(r.Row, r.Col, r.EndRow, r.EndCol, grid.Obstacle)
	if p.cfg.hook != nil {
		p.cfg.hook(r)
	}
}
