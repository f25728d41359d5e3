package mathey

// Rotation3 returns a matrix that rotates a 2d point counter clockwise around
// the origin, assuming the y axis points up.
func Rotation3(angle Rad) Mat3 {
	sin, cos := angle.Sincos()

	return Mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// RotationX returns a right handed rotation around the x axis.
func RotationX(angle Rad) Mat4 {
	sin, cos := angle.Sincos()

	return Mat4{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationY returns a right handed rotation around the y axis.
func RotationY(angle Rad) Mat4 {
	sin, cos := angle.Sincos()

	return Mat4{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ returns a right handed rotation around the z axis.
func RotationZ(angle Rad) Mat4 {
	sin, cos := angle.Sincos()

	return Mat4{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationXYZ returns RotationX(x) * RotationY(y) * RotationZ(z).
// A point is rotated around z first and around x last.
func RotationXYZ(x, y, z Rad) Mat4 {
	return Compose4(RotationX(x), RotationY(y), RotationZ(z))
}

// RotationZYX returns RotationZ(z) * RotationY(y) * RotationX(x).
// This is not the same transformation as RotationXYZ.
func RotationZYX(x, y, z Rad) Mat4 {
	return Compose4(RotationZ(z), RotationY(y), RotationX(x))
}

func Translation3(x, y float32) Mat3 {
	return Mat3{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

func Translation4(x, y, z float32) Mat4 {
	return Mat4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

func Translation3FromVec2(v Vec2) Mat3 {
	return Translation3(v.X, v.Y)
}

// Translation3FromVec3 translates by x and y of the given vector. The z
// component is ignored, the result equals Translation3FromVec2(v.Vec2()).
func Translation3FromVec3(v Vec3) Mat3 {
	return Translation3(v.X, v.Y)
}

func Translation4FromVec3(v Vec3) Mat4 {
	return Translation4(v.X, v.Y, v.Z)
}

// Translation4FromVec4 translates by x, y and z. The w component is ignored.
func Translation4FromVec4(v Vec4) Mat4 {
	return Translation4(v.X, v.Y, v.Z)
}

// Scale3 returns a matrix that scales a 2d point.
func Scale3(x, y float32) Mat3 {
	return Mat3{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, 1},
	}
}

// Scale4 returns a matrix that scales a 3d point.
func Scale4(x, y, z float32) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Shear3 returns a 2d shear, (x, y) becomes (x + shearX*y, y + shearY*x).
func Shear3(shearX, shearY float32) Mat3 {
	return Mat3{
		{1, shearX, 0},
		{shearY, 1, 0},
		{0, 0, 1},
	}
}

// Shear4 returns a 3d shear. The first letter of each coefficient names the
// axis that is sheared, the second the axis it is sheared along.
func Shear4(xy, xz, yx, yz, zx, zy float32) Mat4 {
	return Mat4{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}
