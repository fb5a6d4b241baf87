package roller

import (
	"fmt"

	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// Generate streams the complete roller mesh into w: the patterned
// lateral surface first, then the end geometry selected by opts.End.
// The pass is sequential and deterministic; any error aborts it
// immediately, leaving a truncated file behind w.
func Generate(w *stl.Writer, opts Options) error {
	body := NewCircleSampler(opts.Grid.Width()*opts.StackHorizontal, opts.Diameter*0.5)
	if err := makeBody(w, opts, body); err != nil {
		return err
	}
	switch end := opts.End.(type) {
	case EndFlat:
		return makeFlatLids(w, opts, body)
	case EndPin:
		pin := NewCircleSampler(end.Points, opts.Diameter*0.5)
		if err := makePins(w, opts, pin, end); err != nil {
			return err
		}
		return makeHoledLids(w, opts, body, pin, end.Diameter*0.5, end.Length)
	case EndChannel:
		bore := NewCircleSampler(end.Points, opts.Diameter*0.5)
		if err := makeChannel(w, opts, bore, end); err != nil {
			return err
		}
		return makeHoledLids(w, opts, body, bore, end.Diameter*0.5, 0)
	default:
		panic(fmt.Sprintf("unknown end spec %T", opts.End))
	}
}

// zTop returns the z coordinate of the top of the lateral surface.
// Pins raise the body by one pin length so the lower pin can occupy
// z in [0, pinLength).
func zTop(opts Options) float64 {
	if pin, ok := opts.End.(EndPin); ok {
		return opts.Length + pin.Length
	}
	return opts.Length
}
