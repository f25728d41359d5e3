package mathey

// Mat2 describes a 2x2 matrix of float32 values in row major order.
//
// m[r][c] is the element in the r'th row and c'th column.
type Mat2 [2][2]float32

// Mat3 describes a 3x3 matrix of float32 values in row major order.
// Used as an affine transformation of 2d points.
type Mat3 [3][3]float32

// Mat4 describes a 4x4 matrix of float32 values in row major order.
// Used as an affine transformation of 3d points.
type Mat4 [4][4]float32

func Identity2() Mat2 {
	return Mat2{
		{1, 0},
		{0, 1},
	}
}

func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// At returns the element at the given row and column. Both are one based,
// At(1, 1) is the top left element.
func (m Mat2) At(row, col int) float32 {
	return m[row-1][col-1]
}

// At returns the element at the given one based row and column.
func (m Mat3) At(row, col int) float32 {
	return m[row-1][col-1]
}

// At returns the element at the given one based row and column.
func (m Mat4) At(row, col int) float32 {
	return m[row-1][col-1]
}

func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyVec2 transforms the point v. The point is treated as homogeneous with
// an implicit z of 1. The last row of the matrix is ignored, this is an affine
// transformation and not a projection.
func (m Mat3) ApplyVec2(v Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2],
	}
}

func (m Mat4) Apply(v Vec4) Vec4 {
	return Vec4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// ApplyVec3 transforms the point v with an implicit w of 1. Like
// Mat3.ApplyVec2, the last row is ignored.
func (m Mat4) ApplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// Mul returns the matrix product m * n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		{
			m[0][0]*n[0][0] + m[0][1]*n[1][0],
			m[0][0]*n[0][1] + m[0][1]*n[1][1],
		},
		{
			m[1][0]*n[0][0] + m[1][1]*n[1][0],
			m[1][0]*n[0][1] + m[1][1]*n[1][1],
		},
	}
}

// MulLegacy works like Mul, but the bottom right element repeats the formula
// of the bottom left element. Older renderers were tuned against this result.
// New code should use Mul.
func (m Mat2) MulLegacy(n Mat2) Mat2 {
	r := m.Mul(n)
	r[1][1] = r[1][0]
	return r
}

// Mul returns the matrix product m * n. Applying the result to a point is the
// same as applying n first and then m.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for row := range 3 {
		for col := range 3 {
			r[row][col] = m[row][0]*n[0][col] +
				m[row][1]*n[1][col] +
				m[row][2]*n[2][col]
		}
	}

	return r
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for row := range 4 {
		for col := range 4 {
			r[row][col] = m[row][0]*n[0][col] +
				m[row][1]*n[1][col] +
				m[row][2]*n[2][col] +
				m[row][3]*n[3][col]
		}
	}

	return r
}
