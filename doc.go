// Package mathey (tiny math helpers) provides fixed size linear algebra for
// 2d and 3d graphics.
//
// It includes the vector types Vec2, Vec3 and Vec4, the row major square
// matrices Mat2, Mat3 and Mat4, and constructors for the common affine
// transforms: rotation, translation, scale and shear. Points are transformed
// using homogeneous coordinates, so a Mat3 transforms a Vec2 and a Mat4
// transforms a Vec3.
//
// All types are plain values. No function mutates its arguments and there is
// no package level state, so everything is safe to use from multiple goroutines.
//
// There is also a type named Rad to represent angle values in radian.
package mathey
