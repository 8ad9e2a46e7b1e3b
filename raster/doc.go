// Package raster exports the unscaled grid as an image, one pixel per cell:
// white (255) for open cells and black (0) for obstacles.
//
// The default format is an uncompressed 24-bit bitmap written bottom-up
// with every pixel row padded to four bytes. Binary PGM (P5) and TIFF are
// available as alternatives through Export.
//
// The raster always reflects the unscaled grid, independent of the scale
// factor used for the text map.
package raster
