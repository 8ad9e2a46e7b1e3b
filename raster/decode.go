package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	// Registered for image.Decode.
	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/gridmap/grid"
)

// threshold is the grey level above which a pixel reads as an open cell.
const threshold = 127

// Decode reads a BMP, PGM/PNM or TIFF image and returns the grid it shows:
// light pixels become Open cells and dark pixels become Obstacle cells.
// It also returns the name of the detected format.
//
// Complexity: O(W×H).
func Decode(r io.Reader) (*grid.Grid, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("Decode: %w", err)
	}

	b := img.Bounds()
	g, err := grid.New(b.Dy(), b.Dx())
	if err != nil {
		return nil, name, fmt.Errorf("Decode: %w", err)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y <= threshold {
				g.Set(y-b.Min.Y, x-b.Min.X, grid.Obstacle)
			}
		}
	}

	return g, name, nil
}
