package tetrabounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, a AxisAngle can easily also be stored in
// a 4-dimensional vector; it's separated here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  mgl64.Vec3 // 3 dimensional axis for rotating
	Angle float64    // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. A zero axis becomes +Y.
func NewAxisAngle(axis mgl64.Vec3, angle float64) AxisAngle {
	unit, ok := vecUnit(axis)
	if !ok {
		unit = VecY
	}
	return AxisAngle{
		Axis:  unit,
		Angle: angle,
	}
}

// Quat returns the rotation as a unit quaternion.
func (aa AxisAngle) Quat() mgl64.Quat {
	return mgl64.QuatRotate(aa.Angle, aa.Axis)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 1, 0] (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(mgl64.Vec3{1, 0, 0}) would return mgl64.Vec3{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec mgl64.Vec3) mgl64.Vec3 {
	return aa.Quat().Rotate(vec)
}

// QuatToAxisAngle converts a rotation quaternion into an axis and an angle in radians. An identity rotation returns an angle of 0 around +Y.
func QuatToAxisAngle(q mgl64.Quat) AxisAngle {

	q = q.Normalize()

	if q.W < 0 {
		q = mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	}

	s := math.Sqrt(1 - q.W*q.W)

	if s < Epsilon {
		return AxisAngle{Axis: VecY, Angle: 0}
	}

	return AxisAngle{
		Axis:  q.V.Mul(1 / s),
		Angle: 2 * math.Acos(clamp(q.W, -1, 1)),
	}

}

// quatIsIdentity returns if the quaternion is exactly the identity rotation.
func quatIsIdentity(q mgl64.Quat) bool {
	return q.W == 1 && vecIsZero(q.V)
}
