package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/stbotman/pattern-roller-maker/internal/roller"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// Validation errors.
var (
	ErrNoDimension     = errors.New("either roller length or diameter must be specified")
	ErrBothDimensions  = errors.New("roller length and diameter are mutually exclusive")
	ErrBadDimensions   = errors.New("all roller dimensions should be greater than zero")
	ErrBadReliefDepth  = errors.New("relief depth should be greater than zero")
	ErrReliefTooDeep   = errors.New("relief depth should be less than radius")
	ErrIncompletePin   = errors.New("pin diameter and pin length must be specified together")
	ErrPinWithChannel  = errors.New("pins and channel are mutually exclusive")
	ErrBadPinLength    = errors.New("pin length should be greater than zero")
	ErrPinTooBig       = errors.New("pin diameter is too big")
	ErrChannelTooBig   = errors.New("channel diameter is too big")
	ErrEndTooCoarse    = errors.New("end feature is too small for the grid step")
	ErrBadStacking     = errors.New("stacking counts must be between 1 and 1000")
	ErrPixelatedNoStep = errors.New("pixelated resize requires a grid step")
)

// Params is the fully derived, validated roller geometry.
type Params struct {
	Input           string
	Output          string
	ImageWidth      int // grid columns after any resize
	ImageHeight     int // grid rows after any resize
	ResizeWidth     int // 0 = keep original image resolution
	ResizeHeight    int
	StackHorizontal int
	StackVertical   int
	Diameter        float64
	Length          float64
	ReliefDepth     float64
	GridStep        float64
	Pixelated       bool
	Inverted        bool
	Check           bool
	End             roller.EndSpec
}

// Derive validates cfg against the source image dimensions and
// resolves every derived quantity: the missing roller dimension from
// the surface aspect ratio, the default relief depth, the resample
// target for an explicit grid step, and the end-cap specification with
// its circle resolution.
func Derive(cfg *Config, imageWidth, imageHeight int) (*Params, error) {
	if cfg.StackHorizontal < 1 || cfg.StackHorizontal > 1000 ||
		cfg.StackVertical < 1 || cfg.StackVertical > 1000 {
		return nil, ErrBadStacking
	}
	if cfg.Pixelated && cfg.GridStep == 0 {
		return nil, ErrPixelatedNoStep
	}

	surfaceWidthPx := float64(imageWidth * cfg.StackHorizontal)
	surfaceHeightPx := float64(imageHeight * cfg.StackVertical)
	aspectRatio := surfaceWidthPx / surfaceHeightPx

	var diameter, length, pixelSize float64
	switch {
	case cfg.Diameter != 0 && cfg.Length != 0:
		return nil, ErrBothDimensions
	case cfg.Diameter != 0:
		diameter = cfg.Diameter
		pixelSize = math.Pi * diameter / surfaceWidthPx
		length = math.Pi * diameter / aspectRatio
	case cfg.Length != 0:
		length = cfg.Length
		pixelSize = length / surfaceHeightPx
		diameter = length * aspectRatio / math.Pi
	default:
		return nil, ErrNoDimension
	}
	if diameter <= 0 || length <= 0 {
		return nil, ErrBadDimensions
	}

	reliefDepth := cfg.ReliefDepth
	if reliefDepth == 0 {
		reliefDepth = 0.02 * diameter
	}
	if reliefDepth < 0 {
		return nil, ErrBadReliefDepth
	}
	if diameter <= 2*reliefDepth {
		return nil, fmt.Errorf("%w: depth %g, radius %g", ErrReliefTooDeep, reliefDepth, diameter*0.5)
	}

	p := &Params{
		Input:           cfg.Input,
		Output:          cfg.Output,
		ImageWidth:      imageWidth,
		ImageHeight:     imageHeight,
		StackHorizontal: cfg.StackHorizontal,
		StackVertical:   cfg.StackVertical,
		Diameter:        diameter,
		Length:          length,
		ReliefDepth:     reliefDepth,
		Pixelated:       cfg.Pixelated,
		Inverted:        cfg.Inverted,
		Check:           cfg.Check,
	}
	if p.Output == "" {
		p.Output = cfg.Input + ".stl"
	}

	if cfg.GridStep != 0 {
		scale := pixelSize / cfg.GridStep
		p.ResizeWidth = int(math.Round(scale * float64(imageWidth)))
		p.ResizeHeight = int(math.Round(scale * float64(imageHeight)))
		if p.ResizeWidth < 1 || p.ResizeHeight < 1 {
			return nil, fmt.Errorf("grid step %g is too coarse for the image", cfg.GridStep)
		}
		p.ImageWidth = p.ResizeWidth
		p.ImageHeight = p.ResizeHeight
		p.GridStep = cfg.GridStep
	} else {
		p.GridStep = length / surfaceHeightPx
	}

	end, err := deriveEnd(cfg, diameter, reliefDepth, p.GridStep)
	if err != nil {
		return nil, err
	}
	p.End = end
	return p, nil
}

// deriveEnd resolves the end-cap variant. A pin or channel must leave
// the relief-adjusted body wall intact: its diameter must stay below
// diameter - 2*reliefDepth. The circle resolution of the feature is
// proportional to its diameter over the grid step.
func deriveEnd(cfg *Config, diameter, reliefDepth, gridStep float64) (roller.EndSpec, error) {
	hasPin := cfg.Pin.Diameter != 0 || cfg.Pin.Length != 0
	hasChannel := cfg.Channel.Diameter != 0
	if hasPin && hasChannel {
		return nil, ErrPinWithChannel
	}
	limit := diameter - 2*reliefDepth
	switch {
	case hasPin:
		if cfg.Pin.Diameter == 0 || cfg.Pin.Length == 0 {
			return nil, ErrIncompletePin
		}
		if cfg.Pin.Length < 0 {
			return nil, ErrBadPinLength
		}
		if cfg.Pin.Diameter >= limit {
			return nil, fmt.Errorf("%w: %g (should be < %g)", ErrPinTooBig, cfg.Pin.Diameter, limit)
		}
		points := circlePoints(cfg.Pin.Diameter, gridStep)
		if points < 3 {
			return nil, fmt.Errorf("%w: pin needs at least 3 circle points, got %d", ErrEndTooCoarse, points)
		}
		return roller.EndPin{Diameter: cfg.Pin.Diameter, Length: cfg.Pin.Length, Points: points}, nil
	case hasChannel:
		if cfg.Channel.Diameter >= limit {
			return nil, fmt.Errorf("%w: %g (should be < %g)", ErrChannelTooBig, cfg.Channel.Diameter, limit)
		}
		points := circlePoints(cfg.Channel.Diameter, gridStep)
		if points < 3 {
			return nil, fmt.Errorf("%w: channel needs at least 3 circle points, got %d", ErrEndTooCoarse, points)
		}
		return roller.EndChannel{Diameter: cfg.Channel.Diameter, Points: points}, nil
	default:
		return roller.EndFlat{}, nil
	}
}

func circlePoints(featureDiameter, gridStep float64) int {
	return int(math.Round(2 * math.Pi * featureDiameter / gridStep))
}

// FaceCount returns the exact number of STL faces the derived roller
// will contain.
func (p *Params) FaceCount() (uint32, error) {
	return roller.FaceCount(p.ImageWidth, p.ImageHeight, p.StackHorizontal, p.StackVertical, p.End)
}

// BytesEstimate returns the exact output file size in bytes.
func (p *Params) BytesEstimate() (uint64, error) {
	faces, err := p.FaceCount()
	if err != nil {
		return 0, err
	}
	return stl.FileSize(faces), nil
}

// FormatBytes renders a byte count using binary units, two decimals
// above the plain-byte range.
func FormatBytes(bytesCount uint64) string {
	switch magnitude := uint(math.Log2(float64(bytesCount))) / 10; {
	case bytesCount < 1024 || magnitude == 0:
		return fmt.Sprintf("%d B", bytesCount)
	case magnitude == 1:
		return fmt.Sprintf("%.2f KiB", float64(bytesCount)/(1<<10))
	case magnitude == 2:
		return fmt.Sprintf("%.2f MiB", float64(bytesCount)/(1<<20))
	default:
		return fmt.Sprintf("%.2f GiB", float64(bytesCount)/(1<<30))
	}
}
