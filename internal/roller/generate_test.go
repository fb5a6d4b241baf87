package roller

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// patternGrid builds a width x height grid with mild radius variation
// around 0.95, a 2.0 diameter roller with 0.1 relief.
func patternGrid(t *testing.T, width, height int) *RadiusGrid {
	t.Helper()
	radii := make([]float64, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			radii[j*width+i] = 0.9 + 0.05*float64((i+2*j)%3)
		}
	}
	g, err := NewRadiusGrid(width, height, radii)
	if err != nil {
		t.Fatalf("NewRadiusGrid() error: %v", err)
	}
	return g
}

// generateRoller runs a full validated generation pass and checks the
// emitted face count against the declared one and the file size
// against the STL layout.
func generateRoller(t *testing.T, opts Options) uint32 {
	t.Helper()
	faces, err := FaceCount(opts.Grid.Width(), opts.Grid.Height(),
		opts.StackHorizontal, opts.StackVertical, opts.End)
	if err != nil {
		t.Fatalf("FaceCount() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "roller.stl")
	w, err := stl.NewWriter(path, faces, true)
	if err != nil {
		t.Fatalf("NewWriter() error: %v", err)
	}
	if err := Generate(w, opts); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if got, want := uint64(info.Size()), stl.FileSize(faces); got != want {
		t.Errorf("file size = %d, want %d", got, want)
	}
	return faces
}

func TestGenerateFlatRoller(t *testing.T) {
	faces := generateRoller(t, Options{
		Grid:            patternGrid(t, 4, 4),
		Diameter:        2,
		Length:          3,
		StackHorizontal: 1,
		StackVertical:   1,
		End:             EndFlat{},
	})
	// 2*4*3 body faces plus 2*4 lid faces.
	if faces != 32 {
		t.Errorf("FaceCount() = %d, want 32", faces)
	}
}

func TestGenerateStackedRoller(t *testing.T) {
	faces := generateRoller(t, Options{
		Grid:            patternGrid(t, 4, 4),
		Diameter:        2,
		Length:          3,
		StackHorizontal: 2,
		StackVertical:   2,
		End:             EndFlat{},
	})
	// 2*8*7 body faces plus 2*8 lid faces.
	if faces != 128 {
		t.Errorf("FaceCount() = %d, want 128", faces)
	}
}

func TestGenerateChannelRoller(t *testing.T) {
	// Bore resolution deliberately mismatched with the 4-point body
	// ring to exercise the annulus stitching.
	faces := generateRoller(t, Options{
		Grid:            patternGrid(t, 4, 4),
		Diameter:        2,
		Length:          3,
		StackHorizontal: 1,
		StackVertical:   1,
		End:             EndChannel{Diameter: 0.5, Points: 5},
	})
	if faces != 52 {
		t.Errorf("FaceCount() = %d, want 52", faces)
	}
}

func TestGeneratePinRoller(t *testing.T) {
	faces := generateRoller(t, Options{
		Grid:            patternGrid(t, 4, 4),
		Diameter:        2,
		Length:          3,
		StackHorizontal: 1,
		StackVertical:   1,
		End:             EndPin{Diameter: 0.5, Length: 0.25, Points: 3},
	})
	if faces != 56 {
		t.Errorf("FaceCount() = %d, want 56", faces)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	opts := Options{
		Grid:            patternGrid(t, 4, 4),
		Diameter:        2,
		Length:          3,
		StackHorizontal: 1,
		StackVertical:   1,
		End:             EndChannel{Diameter: 0.5, Points: 5},
	}
	faces, err := FaceCount(4, 4, 1, 1, opts.End)
	if err != nil {
		t.Fatalf("FaceCount() error: %v", err)
	}
	dir := t.TempDir()
	var outputs [2][]byte
	for run := range outputs {
		path := filepath.Join(dir, "run.stl")
		w, err := stl.NewWriter(path, faces, true)
		if err != nil {
			t.Fatalf("NewWriter() error: %v", err)
		}
		if err := Generate(w, opts); err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		outputs[run] = data
	}
	if string(outputs[0]) != string(outputs[1]) {
		t.Error("two generation passes produced different bytes")
	}
}

func TestFaceCountOverflow(t *testing.T) {
	_, err := FaceCount(1<<16, (1<<15)+1, 1, 1, EndFlat{})
	if !errors.Is(err, ErrFaceCountOverflow) {
		t.Errorf("FaceCount() error = %v, want ErrFaceCountOverflow", err)
	}
}

func TestFaceCountFormula(t *testing.T) {
	cases := []struct {
		name string
		end  EndSpec
		want uint32
	}{
		{"flat", EndFlat{}, 2*4*3 + 2*4},
		{"pin", EndPin{Diameter: 0.5, Length: 0.25, Points: 6}, 2*4*3 + 2*4 + 8*6},
		{"channel", EndChannel{Diameter: 0.5, Points: 6}, 2*4*3 + 2*4 + 4*6},
	}
	for _, c := range cases {
		got, err := FaceCount(4, 4, 1, 1, c.end)
		if err != nil {
			t.Fatalf("%s: FaceCount() error: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: FaceCount() = %d, want %d", c.name, got, c.want)
		}
	}
}
