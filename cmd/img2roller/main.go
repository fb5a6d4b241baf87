// img2roller generates a binary STL file for a cylindrical pattern
// roller from an input image, so that the image is etched onto the
// roller surface. Either the length or the diameter of the roller is
// specified; the remaining dimensions are calculated from the image
// aspect ratio and stacking parameters. The flat roller ends can
// optionally carry a pair of pins or a coaxial through channel.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/stbotman/pattern-roller-maker/internal/config"
	"github.com/stbotman/pattern-roller-maker/internal/heightmap"
	"github.com/stbotman/pattern-roller-maker/internal/logger"
	"github.com/stbotman/pattern-roller-maker/internal/roller"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

func main() {
	var (
		diameter        = flag.Float64("diameter", 0, "Roller body external diameter (length is auto calculated)")
		length          = flag.Float64("length", 0, "Roller body length (diameter is auto calculated)")
		gridStep        = flag.Float64("grid-step", 0, "Distance between vertices on roller surface (input image is resized accordingly)")
		reliefDepth     = flag.Float64("embossment-depth", 0, "Maximum depth of surface pattern (default 2% of diameter)")
		pinDiameter     = flag.Float64("pin-diameter", 0, "Pin diameter (pins at both ends)")
		pinLength       = flag.Float64("pin-length", 0, "Pin length (pins at both ends)")
		channelDiameter = flag.Float64("channel-diameter", 0, "Channel diameter (coaxial cylindrical hole)")
		output          = flag.String("output", "", "Output STL filename (default input filename + .stl)")
		stackVertical   = flag.Int("stack-vertical", 0, "Stack copies of image vertically")
		stackHorizontal = flag.Int("stack-horizontal", 0, "Stack copies of image horizontally")
		pixelated       = flag.Bool("pixelated", false, "Nearest-neighbor interpolation for image resize (if used)")
		inverted        = flag.Bool("inverted", false, "Invert image colors")
		check           = flag.Bool("check", false, "Validate every face while writing (slower)")
		quiet           = flag.Bool("quiet", false, "Suppress console output")
		preset          = flag.String("preset", "", "YAML preset file with roller parameters")
		logLevel        = flag.String("log-level", "", "Log level: debug, info, warn, error")
		logFile         = flag.String("log-file", "", "Write log output to file (rotated)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: img2roller [options] IMGFILE\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*preset, func(cfg *config.Config) {
		cfg.Input = flag.Arg(0)
		if *diameter != 0 {
			cfg.Diameter = *diameter
		}
		if *length != 0 {
			cfg.Length = *length
		}
		if *gridStep != 0 {
			cfg.GridStep = *gridStep
		}
		if *reliefDepth != 0 {
			cfg.ReliefDepth = *reliefDepth
		}
		if *pinDiameter != 0 {
			cfg.Pin.Diameter = *pinDiameter
		}
		if *pinLength != 0 {
			cfg.Pin.Length = *pinLength
		}
		if *channelDiameter != 0 {
			cfg.Channel.Diameter = *channelDiameter
		}
		if *output != "" {
			cfg.Output = *output
		}
		if *stackVertical != 0 {
			cfg.StackVertical = *stackVertical
		}
		if *stackHorizontal != 0 {
			cfg.StackHorizontal = *stackHorizontal
		}
		if *pixelated {
			cfg.Pixelated = true
		}
		if *inverted {
			cfg.Inverted = true
		}
		if *check {
			cfg.Check = true
		}
		if *quiet {
			cfg.Quiet = true
		}
		if *logLevel != "" {
			cfg.Logging.Level = *logLevel
		}
		if *logFile != "" {
			cfg.Logging.LogFile = *logFile
		}
	})
	if err == nil {
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, cfg.Quiet)
		defer logger.Sync()
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	img, err := heightmap.Load(cfg.Input)
	if err != nil {
		return err
	}

	params, err := config.Derive(cfg, img.Bounds().Dx(), img.Bounds().Dy())
	if err != nil {
		return err
	}
	if params.ResizeWidth != 0 {
		logger.Sugar.Debugf("resizing image to %dx%d", params.ResizeWidth, params.ResizeHeight)
		img = heightmap.Resize(img, params.ResizeWidth, params.ResizeHeight, params.Pixelated)
	}

	grid, flat, err := heightmap.ToGrid(img, params.Inverted,
		params.Diameter*0.5-params.ReliefDepth, params.Diameter*0.5)
	if err != nil {
		return err
	}
	if flat {
		logger.Sugar.Warn("image is solid color")
	}

	faces, err := params.FaceCount()
	if err != nil {
		return err
	}
	logger.Sugar.Infof("length: %.2f diameter: %.2f filesize: %s",
		params.Length, params.Diameter, config.FormatBytes(stl.FileSize(faces)))

	writer, err := stl.NewWriter(params.Output, faces, params.Check)
	if err != nil {
		return err
	}
	if err := roller.Generate(writer, roller.Options{
		Grid:            grid,
		Diameter:        params.Diameter,
		Length:          params.Length,
		StackHorizontal: params.StackHorizontal,
		StackVertical:   params.StackVertical,
		End:             params.End,
	}); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	logger.Sugar.Infof("wrote %d faces to %s", faces, params.Output)
	return nil
}
