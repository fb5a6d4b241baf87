package roller

import (
	"github.com/stbotman/pattern-roller-maker/pkg/geom"
	"github.com/stbotman/pattern-roller-maker/pkg/stl"
)

// makeFlatLids closes both ends with solid discs, fan-triangulated
// from the axis. The rim follows the grid's boundary rows so the lids
// meet the patterned body exactly; boundary radii repeat modulo the
// image width across horizontal stacks.
func makeFlatLids(w *stl.Writer, opts Options, circle *CircleSampler) error {
	zMax := opts.Length
	topRadii := opts.Grid.TopLine()
	botRadii := opts.Grid.BotLine()
	shift := circle.AxisShift()
	topCenter := geom.Vec3{X: shift, Y: shift, Z: zMax}
	botCenter := geom.Vec3{X: shift, Y: shift, Z: 0}
	topNew := circle.Point(0, topRadii[0], zMax)
	botNew := circle.Point(0, botRadii[0], 0)
	for k := 1; k <= circle.Points(); k++ {
		topOld := topNew
		botOld := botNew
		topNew = circle.Point(k, topRadii[k%len(topRadii)], zMax)
		botNew = circle.Point(k, botRadii[k%len(botRadii)], 0)
		if err := w.WriteFace(geom.Up, topCenter, topOld, topNew); err != nil {
			return err
		}
		if err := w.WriteFace(geom.Down, botCenter, botNew, botOld); err != nil {
			return err
		}
	}
	return nil
}

// makeChannel emits the inner wall of the coaxial bore: one quad per
// bore segment between the z=length and z=0 rings. Wall normals point
// into the channel, i.e. the clockwise in-plane perpendicular of the
// segment direction.
func makeChannel(w *stl.Writer, opts Options, circle *CircleSampler, end EndChannel) error {
	zMax := opts.Length
	radius := end.Diameter * 0.5
	topNew := circle.Point(0, radius, zMax)
	botNew := circle.Point(0, radius, 0)
	for k := 1; k <= circle.Points(); k++ {
		topOld := topNew
		botOld := botNew
		topNew = circle.Point(k, radius, zMax)
		botNew = circle.Point(k, radius, 0)
		normal := topNew.Sub(topOld).PerpXY()
		if err := w.WriteFace(normal, topOld, topNew, botOld); err != nil {
			return err
		}
		if err := w.WriteFace(normal, botOld, topNew, botNew); err != nil {
			return err
		}
	}
	return nil
}

// makePins emits both end pins: a flat tip fan and a cylindrical side
// wall down to the lid plane at each end. The roller body sits between
// z=pinLength and z=pinLength+length, so the top pin tip lies at
// z=length+2*pinLength and the bottom pin reaches z=0.
func makePins(w *stl.Writer, opts Options, circle *CircleSampler, end EndPin) error {
	zMax := opts.Length + 2*end.Length
	shift := circle.AxisShift()
	topCenter := geom.Vec3{X: shift, Y: shift, Z: zMax}
	botCenter := geom.Vec3{X: shift, Y: shift, Z: 0}
	radius := end.Diameter * 0.5
	xNew, yNew := circle.XY(0, radius)
	for k := 1; k <= circle.Points(); k++ {
		xOld, yOld := xNew, yNew
		xNew, yNew = circle.XY(k, radius)

		topPoint1 := geom.Vec3{X: xOld, Y: yOld, Z: zMax}
		topPoint2 := geom.Vec3{X: xNew, Y: yNew, Z: zMax}
		if err := w.WriteFace(geom.Up, topPoint1, topPoint2, topCenter); err != nil {
			return err
		}
		topPoint3 := geom.Vec3{X: xOld, Y: yOld, Z: zMax - end.Length}
		topPoint4 := geom.Vec3{X: xNew, Y: yNew, Z: zMax - end.Length}
		normal := topPoint1.Sub(topPoint2).PerpXY()
		if err := w.WriteFace(normal, topPoint3, topPoint2, topPoint1); err != nil {
			return err
		}
		if err := w.WriteFace(normal, topPoint2, topPoint3, topPoint4); err != nil {
			return err
		}

		botPoint1 := geom.Vec3{X: xOld, Y: yOld, Z: 0}
		botPoint2 := geom.Vec3{X: xNew, Y: yNew, Z: 0}
		if err := w.WriteFace(geom.Down, botCenter, botPoint2, botPoint1); err != nil {
			return err
		}
		botPoint3 := geom.Vec3{X: xOld, Y: yOld, Z: end.Length}
		botPoint4 := geom.Vec3{X: xNew, Y: yNew, Z: end.Length}
		normal = botPoint1.Sub(botPoint2).PerpXY()
		if err := w.WriteFace(normal, botPoint1, botPoint2, botPoint3); err != nil {
			return err
		}
		if err := w.WriteFace(normal, botPoint4, botPoint3, botPoint2); err != nil {
			return err
		}
	}
	return nil
}
