package mathey

import (
	"iter"
	"slices"
)

// Compose3 multiplies the given matrices in order, starting with the identity.
// Compose3(a, b) is a.Mul(b). Composing no matrices yields the identity.
func Compose3(matrices ...Mat3) Mat3 {
	return Compose3Seq(slices.Values(matrices))
}

// Compose3Seq works like Compose3 but takes the matrices from a sequence.
func Compose3Seq(matrices iter.Seq[Mat3]) Mat3 {
	r := Identity3()
	for m := range matrices {
		r = r.Mul(m)
	}

	return r
}

// Compose4 multiplies the given matrices in order, starting with the identity.
func Compose4(matrices ...Mat4) Mat4 {
	return Compose4Seq(slices.Values(matrices))
}

// Compose4Seq works like Compose4 but takes the matrices from a sequence.
func Compose4Seq(matrices iter.Seq[Mat4]) Mat4 {
	r := Identity4()
	for m := range matrices {
		r = r.Mul(m)
	}

	return r
}
