package raster_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/raster"
)

func filled(t *testing.T, rows, cols int, c grid.Cell) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	g.Fill(0, 0, rows, cols, c)
	return g
}

// TestPixels_Uniform covers the all-open and all-obstacle buffers.
func TestPixels_Uniform(t *testing.T) {
	for _, tc := range []struct {
		cell grid.Cell
		want byte
	}{{grid.Open, 255}, {grid.Obstacle, 0}} {
		pix := raster.Pixels(filled(t, 5, 5, tc.cell))
		require.Len(t, pix, 5*5*3)
		for i, v := range pix {
			if v != tc.want {
				t.Fatalf("pixel byte %d = %d; want %d", i, v, tc.want)
			}
		}
	}
}

// TestPadding checks the four-byte row alignment for several widths.
func TestPadding(t *testing.T) {
	want := map[int]int{1: 1, 2: 2, 3: 3, 4: 0, 5: 1, 8: 0, 16: 0}
	for w, p := range want {
		assert.Equal(t, p, raster.Padding(w), "width %d", w)
	}
}

// TestEncodeBMP_Layout checks header fields and the bottom-up, padded rows
// of a 2×3 grid with a single obstacle in the top-left corner.
func TestEncodeBMP_Layout(t *testing.T) {
	g := filled(t, 2, 3, grid.Open)
	g.Set(0, 0, grid.Obstacle)

	var buf bytes.Buffer
	require.NoError(t, raster.EncodeBMP(&buf, g))
	b := buf.Bytes()
	require.Len(t, b, 54+2*(9+3))

	var fh raster.FileHeader
	var ih raster.InfoHeader
	r := bytes.NewReader(b)
	require.NoError(t, binary.Read(r, binary.LittleEndian, &fh))
	require.NoError(t, binary.Read(r, binary.LittleEndian, &ih))

	assert.Equal(t, [2]byte{'B', 'M'}, fh.Signature)
	assert.EqualValues(t, len(b), fh.FileSize)
	assert.EqualValues(t, 54, fh.Offset)
	assert.EqualValues(t, 40, ih.Size)
	assert.EqualValues(t, 3, ih.Width)
	assert.EqualValues(t, 2, ih.Height)
	assert.EqualValues(t, 1, ih.Planes)
	assert.EqualValues(t, 24, ih.BitCount)
	assert.Zero(t, ih.Compression)
	assert.Zero(t, ih.ImageSize)

	bottom := b[54:66]
	top := b[66:78]
	assert.Equal(t, []byte{255, 255, 255, 255, 255, 255, 255, 255, 255, 0, 0, 0}, bottom)
	assert.Equal(t, []byte{0, 0, 0, 255, 255, 255, 255, 255, 255, 0, 0, 0}, top)
}

// TestEncodeBMP_Deterministic encodes the same grid twice.
func TestEncodeBMP_Deterministic(t *testing.T) {
	g := filled(t, 7, 7, grid.Open)
	g.Fill(2, 2, 5, 4, grid.Obstacle)

	var a, b bytes.Buffer
	require.NoError(t, raster.EncodeBMP(&a, g))
	require.NoError(t, raster.EncodeBMP(&b, g))
	require.Equal(t, a.Bytes(), b.Bytes())
}

// TestRoundTrip exports every format to disk and decodes it back into an
// identical grid.
func TestRoundTrip(t *testing.T) {
	g := filled(t, 6, 6, grid.Open)
	g.Fill(1, 1, 3, 4, grid.Obstacle)
	g.Set(5, 5, grid.Obstacle)

	for _, f := range []raster.Format{raster.BMP, raster.PGM, raster.TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "image"+f.Ext())
			require.NoError(t, raster.Export(path, g, f))

			file, err := os.Open(path)
			require.NoError(t, err)
			defer file.Close()

			got, _, err := raster.Decode(file)
			require.NoError(t, err)
			require.Equal(t, g.String(), got.String())
		})
	}
}

// TestEncodePGM_Header checks the P5 preamble and payload size.
func TestEncodePGM_Header(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, raster.EncodePGM(&buf, filled(t, 2, 3, grid.Obstacle)))
	require.Equal(t, "P5\n3 2\n255\n\x00\x00\x00\x00\x00\x00", buf.String())
}

// TestImage_Shades maps markers to grey levels.
func TestImage_Shades(t *testing.T) {
	g := filled(t, 2, 2, grid.Open)
	g.Set(1, 0, grid.Obstacle)
	img := raster.Image(g)
	require.Equal(t, []byte{255, 255, 0, 255}, img.Pix)
}

// TestFormat_Parse maps names to formats and rejects unknown names.
func TestFormat_Parse(t *testing.T) {
	cases := map[string]raster.Format{"": raster.BMP, "bmp": raster.BMP, "PGM": raster.PGM, "tif": raster.TIFF, " tiff ": raster.TIFF}
	for name, want := range cases {
		got, err := raster.ParseFormat(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	_, err := raster.ParseFormat("png")
	require.ErrorIs(t, err, raster.ErrUnknownFormat)
	require.Equal(t, "Format(9)", raster.Format(9).String())
}

// TestExport_Errors covers a nil grid, an unknown format and a bad path.
func TestExport_Errors(t *testing.T) {
	dir := t.TempDir()
	g := filled(t, 2, 2, grid.Open)

	require.ErrorIs(t, raster.Export(filepath.Join(dir, "a.bmp"), nil, raster.BMP), raster.ErrNilGrid)
	require.ErrorIs(t, raster.Export(filepath.Join(dir, "a.bmp"), g, raster.Format(7)), raster.ErrUnknownFormat)
	require.Error(t, raster.WriteBMP(filepath.Join(dir, "missing", "a.bmp"), g))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
