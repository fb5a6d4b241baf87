// Package heightmap turns a pattern image into the grid of surface
// radii the mesh generator consumes. It decodes PNG, JPEG, GIF and
// WebP input, optionally resizes it to match a requested grid step,
// extracts 16-bit grayscale values and rescales them into the radius
// range of the roller surface.
package heightmap

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/stbotman/pattern-roller-maker/internal/roller"
)

// Load decodes the image file at path, sniffing the format.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img to width x height. Pixelated selects
// nearest-neighbor sampling, preserving hard pixel edges; otherwise a
// Catmull-Rom kernel is used for smooth interpolation.
func Resize(img image.Image, width, height int, pixelated bool) image.Image {
	scaler := draw.Scaler(draw.CatmullRom)
	if pixelated {
		scaler = draw.NearestNeighbor
	}
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ToRadii converts img to 16-bit grayscale row-major values and
// rescales them linearly so the darkest pixel maps to rMin and the
// brightest to rMax (swapped when inverted). A solid-color image has
// no usable range; it yields 0.5 everywhere and flat=true so the
// caller can warn.
func ToRadii(img image.Image, inverted bool, rMin, rMax float64) (radii []float64, flat bool) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	values := make([]uint16, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			values = append(values, gray.Y)
		}
	}
	return rescaleMinMax(values, inverted, rMin, rMax)
}

// rescaleMinMax maps values linearly from their global [min, max] range
// onto [rMin, rMax].
func rescaleMinMax(values []uint16, inverted bool, rMin, rMax float64) (radii []float64, flat bool) {
	globalMin := values[0]
	globalMax := values[0]
	for _, v := range values {
		if v < globalMin {
			globalMin = v
		}
		if v > globalMax {
			globalMax = v
		}
	}
	radii = make([]float64, len(values))
	if globalMin == globalMax {
		for i := range radii {
			radii[i] = 0.5
		}
		return radii, true
	}
	if inverted {
		globalMin, globalMax = globalMax, globalMin
	}
	scale := (rMax - rMin) / (float64(globalMax) - float64(globalMin))
	for i, v := range values {
		radii[i] = rMin + (float64(v)-float64(globalMin))*scale
	}
	return radii, false
}

// ToGrid builds the radius grid for img, rescaled into [rMin, rMax].
func ToGrid(img image.Image, inverted bool, rMin, rMax float64) (grid *roller.RadiusGrid, flat bool, err error) {
	radii, flat := ToRadii(img, inverted, rMin, rMax)
	grid, err = roller.NewRadiusGrid(img.Bounds().Dx(), img.Bounds().Dy(), radii)
	if err != nil {
		return nil, flat, err
	}
	return grid, flat, nil
}
