package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridmap/grid"
)

// Render writes the rows of p to the shard file ShardName(prefix, p.Shard),
// replacing any existing file. Nothing is created when p or g is invalid.
// A failed open or write is returned wrapped in ErrShardIO; the caller
// decides whether that is fatal.
//
// Complexity: O(rows × cols × Scale²) bytes written, O(cols × Scale) memory.
func Render(p Partition, g *grid.Grid, prefix string) (err error) {
	if err := check(p, g); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	name := ShardName(prefix, p.Shard)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("Render: %s: %w: %w", name, ErrShardIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("Render: %s: %w: %w", name, ErrShardIO, cerr)
		}
	}()

	if err := writeRows(f, p, g); err != nil {
		return fmt.Errorf("Render: %s: %w: %w", name, ErrShardIO, err)
	}
	return nil
}

// WriteRows streams the scaled text of p onto w.
func WriteRows(w io.Writer, p Partition, g *grid.Grid) error {
	if err := check(p, g); err != nil {
		return fmt.Errorf("WriteRows: %w", err)
	}
	return writeRows(w, p, g)
}

// check validates p against g.
func check(p Partition, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if p.EndRow > g.Rows() {
		return fmt.Errorf("rows [%d,%d) exceed grid of %d rows: %w",
			p.StartRow, p.EndRow, g.Rows(), ErrInvalidPartition)
	}
	return nil
}

// writeRows assumes p and g are valid. The line buffer grows to
// cols×2×Scale+1 bytes once and is reused for every row.
func writeRows(w io.Writer, p Partition, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, g.Cols()*2*p.Scale+1)

	for r := p.StartRow; r < p.EndRow; r++ {
		line = line[:0]
		for _, c := range g.Row(r) {
			for k := 0; k < p.Scale; k++ {
				line = append(line, c, ' ')
			}
		}
		line = append(line, '\n')

		for k := 0; k < p.Scale; k++ {
			if _, err := bw.Write(line); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
