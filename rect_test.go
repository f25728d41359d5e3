package mathey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectWithPoints(t *testing.T) {
	r := RectWithPoints(Vec2{X: 4, Y: 1}, Vec2{X: 2, Y: 3})
	require.Equal(t, Rect{Min: Vec2{X: 2, Y: 1}, Max: Vec2{X: 4, Y: 3}}, r)
	require.Equal(t, Vec2{X: 2, Y: 2}, r.Size())
}

func TestRect_Contains(t *testing.T) {
	r := RectWithSize(Vec2{X: 10, Y: 5})
	require.True(t, r.Contains(Vec2{X: 0, Y: 0}))
	require.True(t, r.Contains(Vec2{X: 10, Y: 5}))
	require.False(t, r.Contains(Vec2{X: 10.5, Y: 5}))
	require.False(t, r.Translate(Vec2{X: 1}).Contains(Vec2{}))
}

func TestRect_Transform(t *testing.T) {
	r := RectWithSize(Vec2{X: 2, Y: 1})

	require.Equal(t, r.Translate(Vec2{X: 5, Y: 5}), r.Transform(Translation3(5, 5)))
	require.Equal(t, RectWithPoints(Vec2{X: -4, Y: 3}, Vec2{}), r.Transform(Scale3(-2, 3)))

	rotated := r.Transform(Rotation3(DegToRad(90)))
	requireVec2InDelta(t, Vec2{X: -1, Y: 0}, rotated.Min, 1e-6)
	requireVec2InDelta(t, Vec2{X: 0, Y: 2}, rotated.Max, 1e-6)
}

func TestRect_String(t *testing.T) {
	require.Equal(t, "Rect(min=vec(x=0, y=0), max=vec(x=1, y=2))", RectWithSize(Vec2{X: 1, Y: 2}).String())
}

func TestRect_Splat(t *testing.T) {
	unit := RectWithSize(Vec2One)
	require.Equal(t, Vec2One, unit.Size())
	require.Equal(t, RectWithSize(Vec2Splat(1)), unit)

	scaled := unit.Transform(Scale3(3, 3))
	require.Equal(t, Vec2Splat(3), scaled.Size())
	require.True(t, scaled.Contains(Vec2Splat(1.5)))
	require.False(t, scaled.Contains(Vec2Splat(3.5)))
	require.Equal(t, Vec2Zero, scaled.Min)
}
