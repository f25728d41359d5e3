package mathey

import "golang.org/x/image/math/f32"

// F32 converts the vector to its golang.org/x/image/math/f32 representation.
func (v Vec2) F32() f32.Vec2 { return f32.Vec2{v.X, v.Y} }
func (v Vec3) F32() f32.Vec3 { return f32.Vec3{v.X, v.Y, v.Z} }
func (v Vec4) F32() f32.Vec4 { return f32.Vec4{v.X, v.Y, v.Z, v.W} }

func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2{X: v[0], Y: v[1]} }
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3{X: v[0], Y: v[1], Z: v[2]} }
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]} }

// F32 converts the matrix to an f32.Mat3. Both use row major order,
// so the conversion is lossless.
func (m Mat3) F32() f32.Mat3 {
	var r f32.Mat3
	for row := range 3 {
		for col := range 3 {
			r[3*row+col] = m[row][col]
		}
	}

	return r
}

func Mat3FromF32(m f32.Mat3) Mat3 {
	var r Mat3
	for row := range 3 {
		for col := range 3 {
			r[row][col] = m[3*row+col]
		}
	}

	return r
}

// F32 converts the matrix to an f32.Mat4.
func (m Mat4) F32() f32.Mat4 {
	var r f32.Mat4
	for row := range 4 {
		for col := range 4 {
			r[4*row+col] = m[row][col]
		}
	}

	return r
}

func Mat4FromF32(m f32.Mat4) Mat4 {
	var r Mat4
	for row := range 4 {
		for col := range 4 {
			r[row][col] = m[4*row+col]
		}
	}

	return r
}
