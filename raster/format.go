package raster

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/katalvlaran/gridmap/grid"
)

// Format selects the image encoding used by Export.
type Format int

const (
	// BMP is a 24-bit uncompressed bitmap (the default).
	BMP Format = iota
	// PGM is a binary 8-bit greymap (P5).
	PGM
	// TIFF is an uncompressed 8-bit greyscale TIFF.
	TIFF
)

var formatNames = [...]string{BMP: "bmp", PGM: "pgm", TIFF: "tiff"}

// String returns the lower-case format name.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// Ext returns the conventional file extension, including the dot.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat maps a name such as "bmp", "PGM" or "tif" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bmp":
		return BMP, nil
	case "pgm":
		return PGM, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return 0, fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *grid.Grid, f Format) error {
	switch f {
	case BMP:
		return EncodeBMP(w, g)
	case PGM:
		return EncodePGM(w, g)
	case TIFF:
		return EncodeTIFF(w, g)
	}
	return fmt.Errorf("Encode: %v: %w", f, ErrUnknownFormat)
}

// Export encodes g in format f into a new (or truncated) file at path.
func Export(path string, g *grid.Grid, f Format) error {
	if g == nil {
		return fmt.Errorf("Export: %w", ErrNilGrid)
	}
	if f < BMP || f > TIFF {
		return fmt.Errorf("Export: %v: %w", f, ErrUnknownFormat)
	}
	if err := writeFile(path, func(w io.Writer) error { return Encode(w, g, f) }); err != nil {
		return fmt.Errorf("Export: %s: %w", path, err)
	}
	return nil
}

// Image returns g as a greyscale image with the same shading as the bitmap.
func Image(g *grid.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		line := img.Pix[r*img.Stride : r*img.Stride+g.Cols()]
		for c, cell := range g.Row(r) {
			line[c] = shade(cell)
		}
	}
	return img
}

// EncodePGM writes g as a binary greymap: "P5\n<w> <h>\n255\n" then one
// byte per cell, top row first.
func EncodePGM(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("EncodePGM: %w", ErrNilGrid)
	}
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("P5\n")
	_, _ = bw.WriteString(strconv.Itoa(g.Cols()))
	_, _ = bw.WriteString(" ")
	_, _ = bw.WriteString(strconv.Itoa(g.Rows()))
	_, _ = bw.WriteString("\n255\n")
	_, _ = bw.Write(Image(g).Pix)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("EncodePGM: %w", err)
	}
	return nil
}

// EncodeTIFF writes g as an uncompressed greyscale TIFF.
func EncodeTIFF(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("EncodeTIFF: %w", ErrNilGrid)
	}
	if err := tiff.Encode(w, Image(g), nil); err != nil {
		return fmt.Errorf("EncodeTIFF: %w", err)
	}
	return nil
}
