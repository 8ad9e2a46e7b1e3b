package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadText parses a map file back into a Grid.
//
// Layout: the first line holds the decimal dimension D, followed by D lines
// of D single-character markers separated by spaces (a trailing space is
// allowed). Any other shape, or a marker other than Open/Obstacle, yields
// ErrMalformedMap wrapped with the offending line number.
//
// Complexity: O(D×D) time, O(D×D) memory for the grid plus O(D) per line.
func ReadText(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || header == "") {
		if err == io.EOF {
			return nil, fmt.Errorf("ReadText: empty input: %w", ErrMalformedMap)
		}
		return nil, fmt.Errorf("ReadText: header: %w", err)
	}
	dim, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || dim <= 0 {
		return nil, fmt.Errorf("ReadText: line 1: bad dimension %q: %w", strings.TrimSpace(header), ErrMalformedMap)
	}
	g, err := New(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}
	// Each line carries 2×D bytes; leave room for CRLF endings.
	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, 2*dim+16), 2*dim+16)

	for row := 0; row < dim; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("ReadText: line %d: %w", row+2, err)
			}
			return nil, fmt.Errorf("ReadText: got %d rows, want %d: %w", row, dim, ErrMalformedMap)
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) != dim {
			return nil, fmt.Errorf("ReadText: line %d: got %d cells, want %d: %w",
				row+2, len(tokens), dim, ErrMalformedMap)
		}
		for col, tok := range tokens {
			if len(tok) != 1 || (tok[0] != Open && tok[0] != Obstacle) {
				return nil, fmt.Errorf("ReadText: line %d: bad marker %q: %w", row+2, tok, ErrMalformedMap)
			}
			g.Set(row, col, tok[0])
		}
	}
	if sc.Scan() && strings.TrimSpace(sc.Text()) != "" {
		return nil, fmt.Errorf("ReadText: trailing data after %d rows: %w", dim, ErrMalformedMap)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return g, nil
}

// String renders the grid unscaled in map-row form, one line per row,
// without the dimension header. Intended for tests and debugging.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (2*g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, c := range g.Row(r) {
			b.WriteByte(c)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
