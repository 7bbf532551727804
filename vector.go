package tetrabounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VecX represents a unit vector in the global direction of VecX on the right-handed OpenGL coordinate system (right).
var VecX = mgl64.Vec3{1, 0, 0}

// VecY represents a unit vector in the global direction of VecY on the right-handed OpenGL coordinate system (upwards).
var VecY = mgl64.Vec3{0, 1, 0}

// VecZ represents a unit vector in the global direction of VecZ on the right-handed OpenGL coordinate system (backwards, towards you).
var VecZ = mgl64.Vec3{0, 0, 1}

// vecMin returns the componentwise minimum of the two vectors.
func vecMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a[0], b[0]), math.Min(a[1], b[1]), math.Min(a[2], b[2])}
}

// vecMax returns the componentwise maximum of the two vectors.
func vecMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a[0], b[0]), math.Max(a[1], b[1]), math.Max(a[2], b[2])}
}

func vecMultComp(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// vecIsZero returns true if every component of the vector is exactly zero.
func vecIsZero(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// vecUnit returns the vector normalized, and false if the vector has no length (in which case the vector is returned as-is,
// as mgl64's Normalize() would divide by zero).
func vecUnit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l == 0 {
		return v, false
	}
	if l == 1 {
		return v, true
	}
	return v.Mul(1 / l), true
}
