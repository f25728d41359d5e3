package matheybiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/mathey"
	"github.com/stretchr/testify/require"
)

func TestGeoM(t *testing.T) {
	m := mathey.Compose3(
		mathey.Translation3(10, 20),
		mathey.Rotation3(mathey.DegToRad(30)),
		mathey.Scale3(2, 3),
	)

	g := GeoM(m)

	for _, p := range []mathey.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: -7}} {
		expected := m.ApplyVec2(p)
		x, y := g.Apply(float64(p.X), float64(p.Y))
		require.InDelta(t, expected.X, x, 1e-4)
		require.InDelta(t, expected.Y, y, 1e-4)
	}

	require.Equal(t, m, Mat3FromGeoM(g))
}

func TestGeoM_Translate(t *testing.T) {
	var g ebiten.GeoM
	g.Translate(5, -2)
	g.Scale(2, 2)

	// ebiten applies operations in call order
	require.Equal(t, mathey.Scale3(2, 2).Mul(mathey.Translation3(5, -2)), Mat3FromGeoM(g))
}
