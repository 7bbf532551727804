package tetrabounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane represents an infinite plane in 3D space, defined by a unit normal and a signed distance from the origin such that
// every point P on the plane satisfies normal.Dot(P) + distance == 0. Points on the side the normal points towards are
// "in front" of the plane.
// A zero-value Plane faces +Y and passes through the origin.
type Plane struct {
	normal   mgl64.Vec3
	distance float64
}

// NewPlane returns a new Plane with the provided normal and distance. If the normal isn't unit-length, both the normal and the
// distance are scaled so that it is (which leaves the described plane unchanged).
func NewPlane(normal mgl64.Vec3, distance float64) Plane {
	plane := Plane{}
	plane.Set(normal, distance)
	return plane
}

// NewPlaneFromPoint returns a new Plane with the given normal that passes through the provided point.
func NewPlaneFromPoint(normal, point mgl64.Vec3) Plane {
	plane := NewPlane(normal, 0)
	plane.distance = -plane.Normal().Dot(point)
	return plane
}

// Normal returns the Plane's unit normal.
func (plane Plane) Normal() mgl64.Vec3 {
	if vecIsZero(plane.normal) && plane.distance == 0 {
		return VecY
	}
	return plane.normal
}

// Distance returns the Plane's signed distance along its normal from the origin.
func (plane Plane) Distance() float64 {
	return plane.distance
}

// SetNormal sets the Plane's normal, re-normalizing the plane afterwards.
func (plane *Plane) SetNormal(normal mgl64.Vec3) {
	plane.normal = normal
	plane.normalize()
}

// SetDistance sets the Plane's signed distance from the origin.
func (plane *Plane) SetDistance(distance float64) {
	plane.distance = distance
}

// Set sets the Plane's normal and distance together, re-normalizing the plane afterwards.
func (plane *Plane) Set(normal mgl64.Vec3, distance float64) {
	plane.normal = normal
	plane.distance = distance
	plane.normalize()
}

// setVec4 sets the plane from the (a, b, c, d) coefficients of the plane equation ax + by + cz + d = 0.
func (plane *Plane) setVec4(coefficients mgl64.Vec4) {
	plane.Set(coefficients.Vec3(), coefficients[3])
}

// normalize scales the normal to unit length, dividing the distance by the same amount. A zero normal is left alone.
func (plane *Plane) normalize() {

	l := plane.normal.Len()

	if l == 0 || l == 1 {
		return
	}

	plane.normal = plane.normal.Mul(1 / l)
	plane.distance /= l

}

// DistanceTo returns the signed distance between the Plane and the given point; this is positive if the point is in front of the
// plane, negative if it's behind, and 0 if it lies on the plane.
func (plane Plane) DistanceTo(point mgl64.Vec3) float64 {
	return plane.Normal().Dot(point) + plane.distance
}

// ClosestPoint returns the point on the Plane nearest to the given point.
func (plane Plane) ClosestPoint(point mgl64.Vec3) mgl64.Vec3 {
	return point.Sub(plane.Normal().Mul(plane.DistanceTo(point)))
}

// IsParallel returns if the two planes are parallel (or anti-parallel), i.e. the cross product of their normals is zero.
func (plane Plane) IsParallel(other Plane) bool {
	return vecIsZero(plane.Normal().Cross(other.Normal()))
}

// IntersectsPlane classifies the other Plane against this one. Planes that share a normal or that aren't parallel are Intersecting;
// otherwise the other plane lies entirely in Front of or Back behind this one.
func (plane Plane) IntersectsPlane(other Plane) Halfspace {

	if plane.Normal() == other.Normal() || !plane.IsParallel(other) {
		return Intersecting
	}

	point := other.Normal().Mul(-other.distance)

	if plane.DistanceTo(point) > 0 {
		return Front
	}

	return Back

}

// IntersectsBox classifies the BoundingBox against the Plane.
func (plane Plane) IntersectsBox(box BoundingBox) Halfspace {
	return box.IntersectsPlane(plane)
}

// IntersectsSphere classifies the BoundingSphere against the Plane.
func (plane Plane) IntersectsSphere(sphere BoundingSphere) Halfspace {
	return sphere.IntersectsPlane(plane)
}

// IntersectsFrustum classifies the Frustum against the Plane.
func (plane Plane) IntersectsFrustum(frustum Frustum) Halfspace {
	return frustum.IntersectsPlane(plane)
}

// IntersectsRay returns the distance along the Ray at which it crosses the Plane, and true if it does.
func (plane Plane) IntersectsRay(ray Ray) (float64, bool) {
	return ray.IntersectsPlane(plane)
}

// Transform transforms the Plane by the given matrix. This is done by multiplying the plane's coefficients by the inverse transpose
// of the matrix. If the matrix can't be inverted, the Plane is left unchanged.
func (plane *Plane) Transform(m mgl64.Mat4) {

	if m.Det() == 0 {
		return
	}

	inv := m.Inv()
	coefficients := plane.Normal().Vec4(plane.distance)

	plane.setVec4(mgl64.Vec4{
		inv.Col(0).Dot(coefficients),
		inv.Col(1).Dot(coefficients),
		inv.Col(2).Dot(coefficients),
		inv.Col(3).Dot(coefficients),
	})

}

// IntersectPlanes returns the single point where the three planes meet. If two or more of the planes are parallel (so that no single
// meeting point exists), it returns false.
func IntersectPlanes(p1, p2, p3 Plane) (mgl64.Vec3, bool) {

	n1, n2, n3 := p1.Normal(), p2.Normal(), p3.Normal()

	c23 := n2.Cross(n3)
	c31 := n3.Cross(n1)
	c12 := n1.Cross(n2)

	det := n1.Dot(c23)

	if math.Abs(det) <= Epsilon {
		return mgl64.Vec3{}, false
	}

	// A point on each plane, projected back onto its own normal.
	s1 := n1.Mul(-p1.distance).Dot(n1)
	s2 := n2.Mul(-p2.distance).Dot(n2)
	s3 := n3.Mul(-p3.distance).Dot(n3)

	point := c23.Mul(s1).Add(c31.Mul(s2)).Add(c12.Mul(s3)).Mul(1 / det)

	return point, true

}
