package mathey

import (
	"fmt"
)

type Rect struct {
	Min, Max Vec2
}

func RectWithPoints(a, b Vec2) Rect {
	return Rect{
		Min: Vec2{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec2{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec2) Rect {
	return Rect{
		Min: Vec2Zero,
		Max: size,
	}
}

func (r Rect) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

func (r Rect) Translate(offset Vec2) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec2) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Transform returns the bounding rectangle of r after transforming its four
// corners with m.
func (r Rect) Transform(m Mat3) Rect {
	a := m.ApplyVec2(r.Min)
	b := m.ApplyVec2(r.Max)
	c := m.ApplyVec2(Vec2{X: r.Min.X, Y: r.Max.Y})
	d := m.ApplyVec2(Vec2{X: r.Max.X, Y: r.Min.Y})

	return Rect{
		Min: Vec2{
			X: min(a.X, b.X, c.X, d.X),
			Y: min(a.Y, b.Y, c.Y, d.Y),
		},
		Max: Vec2{
			X: max(a.X, b.X, c.X, d.X),
			Y: max(a.Y, b.Y, c.Y, d.Y),
		},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
