// Package combine assembles the final map file from the shards written by
// the renderers.
//
// The map file starts with a header line holding the final dimension,
// followed by the contents of shards 0..W-1 in index order. Each shard is
// removed once it has been appended.
package combine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/gridmap/render"
)

var (
	// ErrMissingShard indicates a shard that could not be opened or read
	// to the end.
	ErrMissingShard = errors.New("combine: shard missing or unreadable")
	// ErrOutput indicates the map file could not be created or written.
	ErrOutput = errors.New("combine: output i/o failed")
	// ErrBadArgs indicates a non-positive worker count, dimension or scale.
	ErrBadArgs = errors.New("combine: workers, dimension and scale must be positive")
)

// Combine writes the header "dimension*scale\n" to w and then appends
// shards 0..workers-1 of prefix, deleting each one after it is copied.
// On a missing shard it stops and returns ErrMissingShard; shards already
// appended stay appended and already removed shards stay removed.
//
// Complexity: O(total shard bytes), O(1) extra memory beyond io.Copy's buffer.
func Combine(w io.Writer, prefix string, workers, dimension, scale int) error {
	if workers < 1 || dimension < 1 || scale < 1 {
		return fmt.Errorf("Combine: workers=%d dimension=%d scale=%d: %w",
			workers, dimension, scale, ErrBadArgs)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(dimension*scale) + "\n"); err != nil {
		return fmt.Errorf("Combine: header: %w: %w", ErrOutput, err)
	}
	for i := 0; i < workers; i++ {
		if err := appendShard(bw, render.ShardName(prefix, i)); err != nil {
			// keep what was appended so far
			_ = bw.Flush()
			return fmt.Errorf("Combine: shard %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Combine: %w: %w", ErrOutput, err)
	}

	return nil
}

// appendShard copies one shard onto w, closes it and removes it.
func appendShard(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingShard, err)
	}
	_, cerr := io.Copy(w, f)
	f.Close()
	if cerr != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrMissingShard, cerr)
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("%s: remove: %w", name, err)
	}

	return nil
}

// CombineFile is Combine onto a freshly created (or truncated) file at path.
func CombineFile(path, prefix string, workers, dimension, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("CombineFile: %s: %w: %w", path, ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("CombineFile: %s: %w: %w", path, ErrOutput, cerr)
		}
	}()

	return Combine(f, prefix, workers, dimension, scale)
}
