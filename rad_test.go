package mathey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRad_Degrees(t *testing.T) {
	require.InDelta(t, math.Pi, DegToRad(180).Radians(), 1e-6)
	require.InDelta(t, 90, DegToRad(90).Degrees(), 1e-4)
}

func TestRad_Normalized(t *testing.T) {
	require.InDelta(t, 0, Rad(2*math.Pi).Normalized().Radians(), 1e-6)
	require.InDelta(t, -math.Pi/2, Rad(3*math.Pi/2).Normalized().Radians(), 1e-6)
	require.InDelta(t, math.Pi/2, Rad(-3*math.Pi/2).Normalized().Radians(), 1e-6)
}

func TestRad_Sincos(t *testing.T) {
	sin, cos := Rad(0).Sincos()
	require.Equal(t, float32(0), sin)
	require.Equal(t, float32(1), cos)

	sin, cos = DegToRad(90).Sincos()
	require.InDelta(t, 1, sin, 1e-6)
	require.InDelta(t, 0, cos, 1e-6)
}
