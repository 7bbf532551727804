package tetrabounds

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const ErrorInvalidDirection = "error: ray direction must have a non-zero length"

// ErrInvalidDirection is returned when a Ray would be given a direction of zero length.
var ErrInvalidDirection = errors.New(ErrorInvalidDirection)

// Ray represents a half-infinite line starting at an origin and extending along a unit-length direction. Its direction is always
// normalized; attempting to give it a zero-length direction returns ErrInvalidDirection and leaves the Ray unchanged.
// A zero-value Ray starts at the origin and points along +Z.
type Ray struct {
	origin    mgl64.Vec3
	direction mgl64.Vec3
}

// NewRay returns a new Ray starting at the given origin and extending along the given direction, which is normalized.
func NewRay(origin, direction mgl64.Vec3) (Ray, error) {
	ray := Ray{origin: origin}
	if err := ray.SetDirection(direction); err != nil {
		return Ray{}, err
	}
	return ray, nil
}

// Origin returns the Ray's starting point.
func (ray Ray) Origin() mgl64.Vec3 {
	return ray.origin
}

// Direction returns the Ray's unit-length direction.
func (ray Ray) Direction() mgl64.Vec3 {
	if vecIsZero(ray.direction) {
		return VecZ
	}
	return ray.direction
}

// SetOrigin sets the Ray's starting point.
func (ray *Ray) SetOrigin(origin mgl64.Vec3) {
	ray.origin = origin
}

// SetDirection sets the Ray's direction, normalizing it. A zero-length direction returns ErrInvalidDirection.
func (ray *Ray) SetDirection(direction mgl64.Vec3) error {
	unit, ok := vecUnit(direction)
	if !ok {
		return ErrInvalidDirection
	}
	ray.direction = unit
	return nil
}

// Set sets the Ray's origin and direction together. If the direction has zero length, ErrInvalidDirection is returned and the Ray
// is left unchanged.
func (ray *Ray) Set(origin, direction mgl64.Vec3) error {
	unit, ok := vecUnit(direction)
	if !ok {
		return ErrInvalidDirection
	}
	ray.origin = origin
	ray.direction = unit
	return nil
}

// PointAt returns the point found by travelling the given distance along the Ray from its origin.
func (ray Ray) PointAt(distance float64) mgl64.Vec3 {
	return ray.origin.Add(ray.Direction().Mul(distance))
}

// Transform transforms the Ray by the given matrix; the origin is transformed as a point and the direction as a vector (so that
// translation doesn't affect it), and then re-normalized. If the matrix collapses the direction to zero length, ErrInvalidDirection
// is returned and the Ray is left unchanged.
func (ray *Ray) Transform(m mgl64.Mat4) error {
	return ray.Set(TransformPoint(m, ray.origin), TransformVector(m, ray.Direction()))
}

// IntersectsPlane returns the distance along the Ray at which it crosses the Plane, and true if it does. A Ray starting on the
// plane returns a distance of 0. A Ray running parallel to the plane or pointing away from it doesn't intersect.
func (ray Ray) IntersectsPlane(plane Plane) (float64, bool) {

	alpha := plane.DistanceTo(ray.origin)

	if math.Abs(alpha) < Epsilon {
		return 0, true
	}

	dot := plane.Normal().Dot(ray.Direction())

	if dot == 0 {
		return 0, false
	}

	d := -alpha / dot

	if d < 0 {
		return 0, false
	}

	return d, true

}

// IntersectsBox returns the distance along the Ray at which it enters the BoundingBox, and true if it does. A Ray starting inside
// the box returns a distance of 0.
func (ray Ray) IntersectsBox(box BoundingBox) (float64, bool) {

	dir := ray.Direction()

	dNear := math.Inf(-1)
	dFar := math.Inf(1)

	for axis := 0; axis < 3; axis++ {

		// Parallel to this pair of slabs; the origin has to lie between them.
		if dir[axis] == 0 {
			if ray.origin[axis] < box.Min[axis] || ray.origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}

		div := 1 / dir[axis]

		tMin := (box.Min[axis] - ray.origin[axis]) * div
		tMax := (box.Max[axis] - ray.origin[axis]) * div

		if tMin > tMax {
			tMin, tMax = tMax, tMin
		}

		dNear = math.Max(dNear, tMin)
		dFar = math.Min(dFar, tMax)

		if dNear > dFar || dFar < 0 {
			return 0, false
		}

	}

	return math.Max(dNear, 0), true

}

// IntersectsSphere returns the distance along the Ray at which it first touches the BoundingSphere, and true if it does. If the
// Ray starts inside the sphere, the distance to where it exits the sphere is returned instead.
func (ray Ray) IntersectsSphere(sphere BoundingSphere) (float64, bool) {

	dir := ray.Direction()
	v := ray.origin.Sub(sphere.Center)

	// The quadratic's leading coefficient is dir.Dot(dir), which is 1.
	b := 2 * v.Dot(dir)
	c := v.Dot(v) - sphere.Radius*sphere.Radius

	discriminant := b*b - 4*c

	if discriminant < 0 {
		return 0, false
	}

	sq := math.Sqrt(discriminant)
	t0 := (-b - sq) / 2
	t1 := (-b + sq) / 2

	if t1 < 0 {
		return 0, false
	}

	if t0 > 0 {
		return t0, true
	}

	return t1, true

}

// IntersectsFrustum returns a distance along the Ray at which it meets the Frustum, and true if it does. If the Ray starts behind
// any of the frustum's planes and never crosses that plane, it misses. Otherwise, the smallest positive distance at which the Ray
// crosses one of the six planes is returned; note that this is a conservative test, not an exact one.
func (ray Ray) IntersectsFrustum(frustum Frustum) (float64, bool) {

	distance := 0.0

	for _, plane := range frustum.Planes() {

		d, hit := ray.IntersectsPlane(plane)

		if !hit && plane.DistanceTo(ray.origin) < 0 {
			return 0, false
		}

		if hit && d > 0 && (distance == 0 || d < distance) {
			distance = d
		}

	}

	return distance, true

}
