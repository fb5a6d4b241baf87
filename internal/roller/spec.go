package roller

import (
	"errors"
	"fmt"
	"math"
)

// ErrFaceCountOverflow is returned when the mesh would exceed the
// uint32 face count of the binary STL format.
var ErrFaceCountOverflow = errors.New("overflow in STL face counter: resulting model is too big")

// EndSpec selects the geometry of the roller ends.
type EndSpec interface {
	endSpec()
}

// EndFlat closes both ends with solid discs.
type EndFlat struct{}

// EndPin extends a coaxial cylindrical pin from each end.
type EndPin struct {
	Diameter float64
	Length   float64
	Points   int // samples per full turn of the pin circle
}

// EndChannel bores a coaxial cylindrical channel through the roller.
type EndChannel struct {
	Diameter float64
	Points   int // samples per full turn of the bore circle
}

func (EndFlat) endSpec()    {}
func (EndPin) endSpec()     {}
func (EndChannel) endSpec() {}

// Options describe the roller to generate.
type Options struct {
	Grid            *RadiusGrid
	Diameter        float64
	Length          float64
	StackHorizontal int
	StackVertical   int
	End             EndSpec
}

// FaceCount returns the exact number of faces Generate will emit for a
// grid of the given dimensions, or ErrFaceCountOverflow when the total
// does not fit the STL uint32 face counter. Callers use it to declare
// the count up front and to estimate the output size before
// generation starts.
func FaceCount(width, height, stackH, stackV int, end EndSpec) (uint32, error) {
	widthPoints := uint64(width) * uint64(stackH)
	heightPoints := uint64(height)*uint64(stackV) - 1
	bodyFaces := 2 * widthPoints * heightPoints
	var endFaces uint64
	switch e := end.(type) {
	case EndFlat:
		endFaces = 2 * widthPoints
	case EndPin:
		endFaces = 2*widthPoints + 8*uint64(e.Points)
	case EndChannel:
		endFaces = 2*widthPoints + 4*uint64(e.Points)
	default:
		panic(fmt.Sprintf("unknown end spec %T", end))
	}
	total := bodyFaces + endFaces
	if total > math.MaxUint32 || total < bodyFaces {
		return 0, ErrFaceCountOverflow
	}
	return uint32(total), nil
}
