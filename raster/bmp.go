package raster

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridmap/grid"
)

var (
	// ErrNilGrid indicates a nil grid was passed to an encoder.
	ErrNilGrid = errors.New("raster: grid is nil")
	// ErrTooLarge indicates the image does not fit the 32-bit size fields.
	ErrTooLarge = errors.New("raster: image too large for format")
	// ErrUnknownFormat indicates an unsupported Format value or name.
	ErrUnknownFormat = errors.New("raster: unknown format")
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	bytesPerPixel  = 3

	white byte = 255
	black byte = 0
)

// FileHeader is the 14-byte bitmap file header.
type FileHeader struct {
	Signature [2]byte // "BM"
	FileSize  uint32
	Reserved1 uint16
	Reserved2 uint16
	Offset    uint32 // start of the pixel array
}

// InfoHeader is the 40-byte BITMAPINFOHEADER. Fields after BitCount are
// left zero.
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32 // positive: rows stored bottom-up
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	ImageSize     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ColorsUsed    uint32
	ColorsImport  uint32
}

// Padding returns the number of zero bytes appended to a pixel row of
// width pixels so that its length is a multiple of four.
func Padding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

func newFileHeader(width, height int) FileHeader {
	size := fileHeaderSize + infoHeaderSize + (bytesPerPixel*width+Padding(width))*height
	return FileHeader{
		Signature: [2]byte{'B', 'M'},
		FileSize:  uint32(size),
		Offset:    fileHeaderSize + infoHeaderSize,
	}
}

func newInfoHeader(width, height int) InfoHeader {
	return InfoHeader{
		Size:     infoHeaderSize,
		Width:    int32(width),
		Height:   int32(height),
		Planes:   1,
		BitCount: bytesPerPixel * 8,
	}
}

// Pixels returns the grid as a top-down, row-major BGR buffer of
// rows×cols×3 bytes.
func Pixels(g *grid.Grid) []byte {
	buf := make([]byte, 0, g.Rows()*g.Cols()*bytesPerPixel)
	for r := 0; r < g.Rows(); r++ {
		for _, c := range g.Row(r) {
			v := shade(c)
			buf = append(buf, v, v, v)
		}
	}
	return buf
}

func shade(c grid.Cell) byte {
	if c == grid.Obstacle {
		return black
	}
	return white
}

// EncodeBMP writes g to w as a 24-bit bottom-up bitmap.
//
// Complexity: O(rows×cols) time and memory.
func EncodeBMP(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("EncodeBMP: %w", ErrNilGrid)
	}
	width, height := g.Cols(), g.Rows()
	stride := width*bytesPerPixel + Padding(width)
	if uint64(stride)*uint64(height)+fileHeaderSize+infoHeaderSize > 1<<32-1 {
		return fmt.Errorf("EncodeBMP: %dx%d: %w", width, height, ErrTooLarge)
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, newFileHeader(width, height)); err != nil {
		return fmt.Errorf("EncodeBMP: file header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, newInfoHeader(width, height)); err != nil {
		return fmt.Errorf("EncodeBMP: info header: %w", err)
	}

	pix := Pixels(g)
	pad := make([]byte, Padding(width))
	rowLen := width * bytesPerPixel
	for r := height - 1; r >= 0; r-- {
		if _, err := bw.Write(pix[r*rowLen : (r+1)*rowLen]); err != nil {
			return fmt.Errorf("EncodeBMP: row %d: %w", r, err)
		}
		if _, err := bw.Write(pad); err != nil {
			return fmt.Errorf("EncodeBMP: row %d: %w", r, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("EncodeBMP: %w", err)
	}

	return nil
}

// WriteBMP encodes g into a new (or truncated) file at path.
func WriteBMP(path string, g *grid.Grid) error {
	return Export(path, g, BMP)
}

// writeFile creates path, runs enc on it and reports the first error,
// including a failed close.
func writeFile(path string, enc func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return enc(f)
}
