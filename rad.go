package mathey

import "math"

type Rad float32

func (r Rad) Degrees() float32 {
	return float32(float64(r) * (180 / math.Pi))
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float64(r)

	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	return Rad(angle - math.Pi)
}

// Sincos returns the sine and cosine of the angle. The values are computed
// in float64 and rounded once.
func (r Rad) Sincos() (sin, cos float32) {
	s, c := math.Sincos(float64(r))
	return float32(s), float32(c)
}

func DegToRad(deg float32) Rad {
	return Rad(math.Pi / 180 * float64(deg))
}
