package out

import (
	"fmt"
	"math"

	"github.com/oliverbestmann/mathey"
)

// DrawPoint sets the pixel closest to p. Points that do not fall onto the
// device are skipped.
func DrawPoint(dev Device, p mathey.Vec2, color RGB) error {
	p = mathey.Vec2{X: round(p.X), Y: round(p.Y)}
	if !pixelBounds(dev).Contains(p) {
		return nil
	}

	return dev.Set(int(p.X), int(p.Y), color)
}

// DrawLine draws a line from a to b. The line is clipped to the device.
func DrawLine(dev Device, a, b mathey.Vec2, color RGB) error {
	a, b, ok := clipLine(a, b, pixelBounds(dev))
	if !ok {
		return nil
	}

	x0, y0 := int(round(a.X)), int(round(a.Y))
	x1, y1 := int(round(b.X)), int(round(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}

	sy := 1
	if y0 > y1 {
		sy = -1
	}

	// bresenham
	e := dx + dy
	for {
		if err := dev.Set(x0, y0, color); err != nil {
			return fmt.Errorf("draw line: %w", err)
		}

		if x0 == x1 && y0 == y1 {
			return nil
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}

		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawPath transforms the points with m and connects them with lines.
// If closed is set, the last point is connected to the first one.
func DrawPath(dev Device, m mathey.Mat3, points []mathey.Vec2, color RGB, closed bool) error {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return DrawPoint(dev, m.ApplyVec2(points[0]), color)
	}

	first := m.ApplyVec2(points[0])

	prev := first
	for _, point := range points[1:] {
		point := m.ApplyVec2(point)
		if err := DrawLine(dev, prev, point, color); err != nil {
			return err
		}

		prev = point
	}

	if closed {
		return DrawLine(dev, prev, first, color)
	}

	return nil
}

// pixelBounds returns the rectangle spanned by the centers of the
// first and the last pixel.
func pixelBounds(dev Device) mathey.Rect {
	return mathey.RectWithSize(mathey.Vec2{
		X: float32(dev.Width() - 1),
		Y: float32(dev.Height() - 1),
	})
}

// clipLine clips the line from a to b to the given rectangle using the
// Liang-Barsky algorithm. It returns false if no part of the line is visible.
func clipLine(a, b mathey.Vec2, r mathey.Rect) (mathey.Vec2, mathey.Vec2, bool) {
	if !isFinite(a) || !isFinite(b) {
		return a, b, false
	}

	ax, ay := float64(a.X), float64(a.Y)
	dx, dy := float64(b.X)-ax, float64(b.Y)-ay

	edges := [4]struct{ p, q float64 }{
		{-dx, ax - float64(r.Min.X)},
		{dx, float64(r.Max.X) - ax},
		{-dy, ay - float64(r.Min.Y)},
		{dy, float64(r.Max.Y) - ay},
	}

	// float64 keeps pixel precision for endpoints far outside of r
	t0, t1 := 0.0, 1.0
	for _, edge := range edges {
		if edge.p == 0 {
			// parallel to this edge, and completely outside
			if edge.q < 0 {
				return a, b, false
			}

			continue
		}

		t := edge.q / edge.p
		if edge.p < 0 {
			if t > t1 {
				return a, b, false
			}

			t0 = max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}

			t1 = min(t1, t)
		}
	}

	p0 := mathey.Vec2{X: float32(ax + dx*t0), Y: float32(ay + dy*t0)}
	p1 := mathey.Vec2{X: float32(ax + dx*t1), Y: float32(ay + dy*t1)}
	return p0, p1, true
}

func isFinite(v mathey.Vec2) bool {
	x, y := float64(v.X), float64(v.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
