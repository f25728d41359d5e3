package mathey

import "fmt"

// Vec2 is a 2d vector or point.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3d vector or point. It is also used as a homogeneous 2d point.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous 3d point.
type Vec4 struct {
	X, Y, Z, W float32
}

var Vec2Zero = Vec2{}
var Vec2One = Vec2{X: 1, Y: 1}

func Vec2Splat(value float32) Vec2 {
	return Vec2{X: value, Y: value}
}

func (v Vec2) Add(other Vec2) Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2) Sub(other Vec2) Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// Mul scales the vector by the given factor.
func (v Vec2) Mul(scalar float32) Vec2 {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v Vec3) Add(other Vec3) Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3) Sub(other Vec3) Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3) Mul(scalar float32) Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3) LengthSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}

func (v Vec4) Add(other Vec4) Vec4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

func (v Vec4) Mul(scalar float32) Vec4 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	v.W *= scalar
	return v
}

func (v Vec4) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}
