// Package stl provides a streaming binary STL writer with optional
// geometric validation.
//
// Binary STL layout: an 80-byte header, a little-endian uint32 face
// count, then one 50-byte record per face (normal and three vertices
// as little-endian float32 triplets, followed by two reserved bytes).
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/stbotman/pattern-roller-maker/pkg/geom"
)

const (
	headerSize = 80
	headerText = "pattern roller"
	recordSize = 50
)

// Writer errors.
var (
	ErrDegenerateFace    = errors.New("degenerate face")
	ErrInvertedNormal    = errors.New("inverted face normal")
	ErrFaceCountMismatch = errors.New("face count mismatch")
)

// Writer streams faces of a triangle mesh into a binary STL file.
// The face count is declared up front; when validation is enabled the
// writer checks every face and Close reports an error unless exactly
// the declared number of faces was written.
type Writer struct {
	path      string
	file      *os.File
	buf       *bufio.Writer
	validate  bool
	remaining uint32
	record    [recordSize]byte
}

// NewWriter creates path and writes the STL header and face count.
// A partial file may remain on any subsequent error.
func NewWriter(path string, faceCount uint32, validate bool) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	w := &Writer{
		path:      path,
		file:      file,
		buf:       bufio.NewWriter(file),
		validate:  validate,
		remaining: faceCount,
	}
	var header [headerSize + 4]byte
	copy(header[:headerSize], headerText)
	binary.LittleEndian.PutUint32(header[headerSize:], faceCount)
	if _, err := w.buf.Write(header[:]); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return w, nil
}

// WriteFace appends one face with the given outward normal.
func (w *Writer) WriteFace(n, a, b, c geom.Vec3) error {
	if w.validate {
		if err := checkFace(n, a, b, c); err != nil {
			return err
		}
		if w.remaining == 0 {
			return fmt.Errorf("%w: more faces than declared", ErrFaceCountMismatch)
		}
		w.remaining--
	}
	putVec3(w.record[0:], n)
	putVec3(w.record[12:], a)
	putVec3(w.record[24:], b)
	putVec3(w.record[36:], c)
	w.record[48] = 0
	w.record[49] = 0
	if _, err := w.buf.Write(w.record[:]); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	return nil
}

// WriteFaceAutoNormal appends one face, deriving the normal from the
// vertex winding as normalized (b-a) x (c-a).
func (w *Writer) WriteFaceAutoNormal(a, b, c geom.Vec3) error {
	return w.WriteFace(geom.FaceNormal(a, b, c), a, b, c)
}

// Close flushes and closes the file. With validation enabled it fails
// unless exactly the declared number of faces was written.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("writing %s: %w", w.path, err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", w.path, err)
	}
	if w.validate && w.remaining != 0 {
		return fmt.Errorf("%w: %d declared faces not written", ErrFaceCountMismatch, w.remaining)
	}
	return nil
}

// FileSize returns the size in bytes of a binary STL file holding
// faceCount faces.
func FileSize(faceCount uint32) uint64 {
	return headerSize + 4 + recordSize*uint64(faceCount)
}

func putVec3(dst []byte, v geom.Vec3) {
	binary.LittleEndian.PutUint32(dst[0:], math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(dst[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(dst[8:], math.Float32bits(float32(v.Z)))
}

func checkFace(n, a, b, c geom.Vec3) error {
	if a.ApproxEqual(b) || b.ApproxEqual(c) || c.ApproxEqual(a) || n.ApproxEqual(geom.Zero) {
		return fmt.Errorf("%w: a:%v b:%v c:%v n:%v", ErrDegenerateFace, a, b, c, n)
	}
	if !geom.RightHanded(c.Sub(b), a.Sub(b), n) {
		return fmt.Errorf("%w: a:%v b:%v c:%v n:%v", ErrInvertedNormal, a, b, c, n)
	}
	return nil
}
