package mathey

// Vec3 appends z=1, turning the vector into a homogeneous 2d point.
func (v Vec2) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: 1}
}

// Vec2 drops the z component.
func (v Vec3) Vec2() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec4 appends w=1, turning the vector into a homogeneous 3d point.
func (v Vec3) Vec4() Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// Vec3 drops the w component. No perspective divide is applied.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func Vec3FromVec2(v Vec2) Vec3 { return v.Vec3() }
func Vec2FromVec3(v Vec3) Vec2 { return v.Vec2() }
func Vec4FromVec3(v Vec3) Vec4 { return v.Vec4() }
func Vec3FromVec4(v Vec4) Vec3 { return v.Vec3() }
