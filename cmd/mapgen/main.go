// Command mapgen generates a synthetic square map for path-finding tests:
// a text map (map.txt) scaled by an integer factor and an unscaled image.
//
// Usage:
//
//	mapgen <dimension> <obstacles> <max size> <workers> <scale> <seed> [flags]
//
// Seed 0 seeds from the clock. dimension*scale must be a power of two.
// With --config the YAML file supplies defaults; non-zero positionals
// override it. A zero positional therefore keeps the file's value, so a
// positional seed of 0 does not clock-seed a configured run: set seed: 0
// in the YAML for that. --analyze counts the open regions of the map.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/labstack/gommon/log"

	"github.com/katalvlaran/gridmap/config"
	"github.com/katalvlaran/gridmap/mapgen"
	"github.com/katalvlaran/gridmap/raster"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	parser := argparse.NewParser("mapgen", "Generates a synthetic map for testing path-finding algorithms")

	dimension := parser.IntPositional(&argparse.Options{Help: "map dimension before scaling"})
	obstacles := parser.IntPositional(&argparse.Options{Help: "number of obstacles"})
	maxSize := parser.IntPositional(&argparse.Options{Help: "max obstacle side, 1 <= size < dimension"})
	workers := parser.IntPositional(&argparse.Options{Help: "number of renderer workers"})
	scale := parser.IntPositional(&argparse.Options{Help: "scale factor for the text map"})
	seed := parser.IntPositional(&argparse.Options{Help: "random seed, 0 = current time (with --config, 0 keeps the file's seed)"})

	cfgPath := parser.String("c", "config", &argparse.Options{Help: "YAML run configuration"})
	placers := parser.Int("p", "placers", &argparse.Options{Help: "concurrent obstacle placers"})
	format := parser.String("f", "format", &argparse.Options{Help: "image format: bmp, pgm or tiff"})
	output := parser.String("o", "output", &argparse.Options{Help: "map file path"})
	image := parser.String("i", "image", &argparse.Options{Help: "image file path"})
	noPause := parser.Flag("n", "no-pause", &argparse.Options{Help: "exit without waiting for RETURN"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "log renderer progress"})
	analyze := parser.Flag("a", "analyze", &argparse.Options{Help: "summarize the open regions of the finished map"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stdout, parser.Usage(err))
		return 1
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(stdout, err)
			return 1
		}
		cfg = loaded
	}
	overlay(&cfg, *dimension, *obstacles, *maxSize, *workers, *scale, *seed, *placers)
	if *output != "" {
		cfg.Output = *output
	}
	if *format != "" {
		cfg.ImageFormat = *format
		if *image == "" && cfg.Image == config.DefaultImage {
			if f, err := raster.ParseFormat(*format); err == nil {
				cfg.Image = strings.TrimSuffix(config.DefaultImage, raster.BMP.Ext()) + f.Ext()
			}
		}
	}
	if *image != "" {
		cfg.Image = *image
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stdout, "The parameters are not valid: %v\n", err)
		fmt.Fprint(stdout, parser.Usage(nil))
		return 1
	}

	logger := log.New("mapgen")
	logger.SetOutput(stdout)
	logger.SetHeader("${time_rfc3339} ${level}")
	logger.SetLevel(log.INFO)
	if *verbose {
		logger.SetLevel(log.DEBUG)
	}

	opts := []mapgen.Option{mapgen.WithLogger(logger)}
	if *analyze {
		opts = append(opts, mapgen.WithAnalysis())
	}
	rep, err := mapgen.Generate(context.Background(), cfg, opts...)
	if err != nil {
		logger.Error(err)
		if errors.Is(err, mapgen.ErrInvalidConfig) {
			return 1
		}
		return 2
	}
	if rep.Analyzed && !rep.Connected() {
		logger.Warnf("The open space is split into %d regions.", rep.Summary.Components)
	}

	fmt.Fprintf(stdout, "Elapsed time: %s\n", mapgen.FormatElapsed(rep.Elapsed))
	if !*noPause {
		fmt.Fprint(stdout, "Press RETURN to continue...")
		_, _ = bufio.NewReader(stdin).ReadString('\n')
	}
	return 0
}

// overlay copies every non-zero command-line value over cfg. Zero means
// "not given", including for seed.
func overlay(cfg *config.Config, dimension, obstacles, maxSize, workers, scale, seed, placers int) {
	set := func(dst *int, v int) {
		if v != 0 {
			*dst = v
		}
	}
	set(&cfg.Dimension, dimension)
	set(&cfg.Obstacles, obstacles)
	set(&cfg.MaxObstacleSize, maxSize)
	set(&cfg.Workers, workers)
	set(&cfg.ScaleFactor, scale)
	set(&cfg.Placers, placers)
	if seed != 0 {
		cfg.Seed = int64(seed)
	}
}
