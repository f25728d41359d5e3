package out

import (
	"github.com/oliverbestmann/mathey"
)

var Black = RGB{}
var White = RGB{R: 0xff, G: 0xff, B: 0xff}

// RGB is an opaque 8 bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Blend keeps the brighter value of each channel.
func (c RGB) Blend(other RGB) RGB {
	// BMin yields the larger value
	return RGB{
		R: mathey.BMin(c.R, other.R),
		G: mathey.BMin(c.G, other.G),
		B: mathey.BMin(c.B, other.B),
	}
}

// Distance returns the largest difference of any channel.
func (c RGB) Distance(other RGB) uint8 {
	return max(
		mathey.BDiff(c.R, other.R),
		mathey.BDiff(c.G, other.G),
		mathey.BDiff(c.B, other.B),
	)
}

// Scale multiplies each channel by the given factor, clamped to the valid range.
func (c RGB) Scale(factor float32) RGB {
	return RGB{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

func scaleChannel(value uint8, factor float32) uint8 {
	return uint8(clamp(float32(value)*factor, 0, 0xff))
}

func clamp(value, lo, hi float32) float32 {
	switch {
	case value != value: // NaN
		return lo
	case value < lo:
		return lo
	case value > hi:
		return hi
	default:
		return value
	}
}
