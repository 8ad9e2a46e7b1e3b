// Package config holds the parameters of one map-generation run, loads
// them from YAML and validates them before any work begins.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/raster"
)

// Validation errors, one per rule.
var (
	ErrDimension      = errors.New("config: dimension must be positive")
	ErrObstacles      = errors.New("config: number of obstacles must be positive")
	ErrMaxSize        = errors.New("config: obstacle max size must be in [1, dimension)")
	ErrWorkers        = errors.New("config: number of workers must be positive")
	ErrScale          = errors.New("config: scale factor must be at least 1")
	ErrSeed           = errors.New("config: seed must be non-negative")
	ErrNotPowerOfTwo  = errors.New("config: dimension * scale factor must reduce to 1 by halving")
	ErrPlacers        = errors.New("config: number of placers must be positive")
	ErrOutput         = errors.New("config: output and image paths must not be empty")
	ErrImageFormat    = errors.New("config: unknown image format")
	ErrGridTooLarge   = errors.New("config: grid exceeds the maximum cell count")
	ErrFinalDimension = errors.New("config: final dimension overflows")
)

// Defaults for the file names and the placer count.
const (
	DefaultOutput  = "./map.txt"
	DefaultImage   = "./image.bmp"
	DefaultPlacers = 1
)

// Config describes one run. Zero Seed means "seed from the clock".
type Config struct {
	Dimension       int    `yaml:"dimension"`
	Obstacles       int    `yaml:"obstacles"`
	MaxObstacleSize int    `yaml:"max_obstacle_size"`
	Workers         int    `yaml:"workers"`
	ScaleFactor     int    `yaml:"scale_factor"`
	Seed            int64  `yaml:"seed"`
	Placers         int    `yaml:"placers"`
	Output          string `yaml:"output"`
	Image           string `yaml:"image"`
	ImageFormat     string `yaml:"image_format"`
}

// Default returns a Config with the file names, format and placer count
// filled in. The sizing parameters are left zero and must be supplied.
func Default() Config {
	return Config{
		ScaleFactor: 1,
		Placers:     DefaultPlacers,
		Output:      DefaultOutput,
		Image:       DefaultImage,
		ImageFormat: raster.BMP.String(),
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
// The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("Load: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("Load: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every parameter, in command-line order, and returns the
// first violation wrapped around its sentinel.
func (c Config) Validate() error {
	switch {
	case c.Dimension <= 0:
		return fmt.Errorf("dimension %d: %w", c.Dimension, ErrDimension)
	case c.Obstacles <= 0:
		return fmt.Errorf("obstacles %d: %w", c.Obstacles, ErrObstacles)
	case c.MaxObstacleSize <= 0 || c.MaxObstacleSize >= c.Dimension:
		return fmt.Errorf("max size %d with dimension %d: %w", c.MaxObstacleSize, c.Dimension, ErrMaxSize)
	case c.Workers <= 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrWorkers)
	case c.ScaleFactor < 1:
		return fmt.Errorf("scale factor %d: %w", c.ScaleFactor, ErrScale)
	case c.Seed < 0:
		return fmt.Errorf("seed %d: %w", c.Seed, ErrSeed)
	case c.Placers <= 0:
		return fmt.Errorf("placers %d: %w", c.Placers, ErrPlacers)
	case c.Output == "" || c.Image == "":
		return fmt.Errorf("output %q, image %q: %w", c.Output, c.Image, ErrOutput)
	}

	final, ok := c.FinalDimension()
	if !ok {
		return fmt.Errorf("%d * %d: %w", c.Dimension, c.ScaleFactor, ErrFinalDimension)
	}
	if !halvesToOne(final) {
		return fmt.Errorf("%d * %d: %w", c.Dimension, c.ScaleFactor, ErrNotPowerOfTwo)
	}
	if c.Dimension > grid.MaxCells/c.Dimension {
		return fmt.Errorf("dimension %d: %w", c.Dimension, ErrGridTooLarge)
	}
	if _, err := raster.ParseFormat(c.ImageFormat); err != nil {
		return fmt.Errorf("%q: %w", c.ImageFormat, ErrImageFormat)
	}

	return nil
}

// FinalDimension returns Dimension*ScaleFactor, the side of the text map,
// and false if the product overflows int.
func (c Config) FinalDimension() (int, bool) {
	if c.Dimension <= 0 || c.ScaleFactor <= 0 {
		return 0, false
	}
	n := c.Dimension * c.ScaleFactor
	if n/c.ScaleFactor != c.Dimension {
		return 0, false
	}
	return n, true
}

// Format returns the parsed image format, BMP if unset or unknown.
func (c Config) Format() raster.Format {
	f, err := raster.ParseFormat(c.ImageFormat)
	if err != nil {
		return raster.BMP
	}
	return f
}

// ResolveSeed returns Seed, or now's Unix time when Seed is zero.
func (c Config) ResolveSeed(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.Unix()
}

// halvesToOne reports whether repeatedly halving n reaches 1 through even
// values only. 1 itself does not qualify.
func halvesToOne(n int) bool {
	for n%2 == 0 && n > 0 {
		n /= 2
		if n == 1 {
			return true
		}
	}
	return false
}
