package mathey

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float32) float32 {
	return float32(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math.Pi))
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2() Vec2 {
	for {
		v := Vec2{
			X: RandomIn(-1, 1),
			Y: RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomVec3 returns a vector uniformly sampled from within the unit sphere.
func RandomVec3() Vec3 {
	for {
		v := Vec3{
			X: RandomIn(-1, 1),
			Y: RandomIn(-1, 1),
			Z: RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}
