// Package physics converts between mathey values and the chipmunk2d
// physics types of github.com/jakecoffman/cp.
package physics

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/mathey"
)

func Vector(v mathey.Vec2) cp.Vector {
	return cp.Vector{X: float64(v.X), Y: float64(v.Y)}
}

func Vec2(v cp.Vector) mathey.Vec2 {
	return mathey.Vec2{X: float32(v.X), Y: float32(v.Y)}
}

// Transform converts the affine part of m into a cp.Transform, so that
// Transform(m).Point(p) matches m.ApplyVec2(p).
func Transform(m mathey.Mat3) cp.Transform {
	return cp.NewTransformTranspose(
		float64(m[0][0]), float64(m[0][1]), float64(m[0][2]),
		float64(m[1][0]), float64(m[1][1]), float64(m[1][2]),
	)
}

// BodyTransform returns the transformation from body local coordinates
// into world coordinates: the body's rotation followed by its position.
func BodyTransform(body *cp.Body) mathey.Mat3 {
	return mathey.Translation3FromVec2(Vec2(body.Position())).
		Mul(mathey.Rotation3(mathey.Rad(body.Angle())))
}
