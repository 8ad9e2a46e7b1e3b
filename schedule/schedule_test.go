package schedule_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/obstacle"
	"github.com/katalvlaran/gridmap/render"
	"github.com/katalvlaran/gridmap/schedule"
)

// TestPlan_Covers checks that partitions tile [0, rows) without gaps or
// overlap and that only the last one may be larger than rows/workers.
func TestPlan_Covers(t *testing.T) {
	cases := []struct{ rows, workers int }{
		{8, 1}, {8, 2}, {8, 3}, {10, 4}, {7, 7}, {1, 1}, {0, 3}, {3, 5},
	}
	for _, tc := range cases {
		parts, err := schedule.Plan(tc.rows, tc.workers, 2)
		require.NoError(t, err)
		require.Len(t, parts, tc.workers)

		next := 0
		base := tc.rows / tc.workers
		for i, p := range parts {
			assert.Equal(t, i, p.Shard)
			assert.Equal(t, 2, p.Scale)
			assert.Equal(t, next, p.StartRow, "rows=%d workers=%d shard=%d", tc.rows, tc.workers, i)
			require.NoError(t, p.Validate())
			if i < len(parts)-1 {
				assert.Equal(t, base, p.Rows())
			}
			next = p.EndRow
		}
		assert.Equal(t, tc.rows, next)
	}
}

// TestPlan_Remainder checks the 10 rows / 4 workers split: 2,2,2,4.
func TestPlan_Remainder(t *testing.T) {
	parts, err := schedule.Plan(10, 4, 1)
	require.NoError(t, err)
	sizes := make([]int, len(parts))
	for i, p := range parts {
		sizes[i] = p.Rows()
	}
	require.Equal(t, []int{2, 2, 2, 4}, sizes)
}

// TestPlan_MoreWorkersThanRows gives the last worker everything.
func TestPlan_MoreWorkersThanRows(t *testing.T) {
	parts, err := schedule.Plan(3, 5, 1)
	require.NoError(t, err)
	for _, p := range parts[:4] {
		require.Zero(t, p.Rows())
	}
	require.Equal(t, render.Partition{StartRow: 0, EndRow: 3, Scale: 1, Shard: 4}, parts[4])
}

// TestPlan_Errors rejects non-positive worker counts and negative rows.
func TestPlan_Errors(t *testing.T) {
	_, err := schedule.Plan(4, 0, 1)
	require.ErrorIs(t, err, schedule.ErrBadWorkers)
	_, err = schedule.Plan(-1, 2, 1)
	require.ErrorIs(t, err, schedule.ErrBadRows)
}

// TestRun_ShardsConcatenate renders a seeded map with several workers and
// checks that the shards, read in index order, equal a single-pass render.
func TestRun_ShardsConcatenate(t *testing.T) {
	g, err := grid.New(16, 16)
	require.NoError(t, err)
	p, err := obstacle.NewPlacer(g, 4, obstacle.NewBudget(20), obstacle.WithSeed(5))
	require.NoError(t, err)
	p.Place()

	for _, workers := range []int{1, 3, 16, 20} {
		prefix := filepath.Join(t.TempDir(), "map.txt")
		require.NoError(t, schedule.Run(context.Background(), g, workers, 2, prefix))

		var got bytes.Buffer
		for i := 0; i < workers; i++ {
			data, err := os.ReadFile(render.ShardName(prefix, i))
			require.NoError(t, err, "shard %d", i)
			got.Write(data)
		}

		var want bytes.Buffer
		require.NoError(t, render.WriteRows(&want, render.Partition{EndRow: 16, Scale: 2}, g))
		require.Equal(t, want.String(), got.String(), "workers=%d", workers)
	}
}

// TestRun_FailuresJoined reports every failed renderer without stopping
// the others, and logs each failure.
func TestRun_FailuresJoined(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	var logs bytes.Buffer
	l := log.New("test")
	l.SetOutput(&logs)

	prefix := filepath.Join(t.TempDir(), "absent", "map.txt")
	err = schedule.Run(context.Background(), g, 2, 1, prefix, schedule.WithLogger(l))
	require.ErrorIs(t, err, render.ErrShardIO)
	assert.Contains(t, logs.String(), "renderer 0 failed")
	assert.Contains(t, logs.String(), "renderer 1 failed")
}

// TestRun_Rejects covers argument errors that stop Run before any shard
// is written.
func TestRun_Rejects(t *testing.T) {
	g, err := grid.New(4, 4)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		name    string
		ctx     context.Context
		g       *grid.Grid
		workers int
		scale   int
		err     error
	}{
		{"NilGrid", context.Background(), nil, 1, 1, render.ErrNilGrid},
		{"ZeroWorkers", context.Background(), g, 0, 1, schedule.ErrBadWorkers},
		{"ZeroScale", context.Background(), g, 2, 0, render.ErrInvalidPartition},
		{"Canceled", canceled, g, 2, 1, context.Canceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			err := schedule.Run(tc.ctx, tc.g, tc.workers, tc.scale, filepath.Join(dir, "map.txt"))
			if !errors.Is(err, tc.err) {
				t.Errorf("Run error = %v; want %v", err, tc.err)
			}
			entries, rerr := os.ReadDir(dir)
			require.NoError(t, rerr)
			require.Empty(t, entries)
		})
	}
}

// TestWithLogger_Nil panics on a nil logger.
func TestWithLogger_Nil(t *testing.T) {
	require.Panics(t, func() { schedule.WithLogger(nil) })
}
