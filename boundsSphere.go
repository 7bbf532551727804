package tetrabounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundingSphere represents a 3D sphere, used for fast, rotation-independent intersection testing against the other shapes in the
// package. A sphere with a Radius of 0 is considered empty.
type BoundingSphere struct {
	Center mgl64.Vec3
	Radius float64
}

// NewBoundingSphere returns a new BoundingSphere with the given center and radius. Negative radii are treated as positive.
func NewBoundingSphere(center mgl64.Vec3, radius float64) BoundingSphere {
	return BoundingSphere{Center: center, Radius: math.Abs(radius)}
}

// Set sets the sphere's center and radius.
func (sphere *BoundingSphere) Set(center mgl64.Vec3, radius float64) {
	sphere.Center = center
	sphere.Radius = math.Abs(radius)
}

// SetFromBox sets the sphere to enclose the given box, centered at the box's middle.
func (sphere *BoundingSphere) SetFromBox(box BoundingBox) {
	sphere.Center = box.Center()
	sphere.Radius = box.Max.Sub(sphere.Center).Len()
}

// IsEmpty returns true if the sphere has a radius of 0.
func (sphere BoundingSphere) IsEmpty() bool {
	return sphere.Radius == 0
}

// Distance returns the signed distance from the sphere's surface to the given point; this is negative for points inside of the sphere.
func (sphere BoundingSphere) Distance(point mgl64.Vec3) float64 {
	return point.Sub(sphere.Center).Len() - sphere.Radius
}

// ContainsPoints returns true if every one of the given points lies inside or on the surface of the sphere.
func (sphere BoundingSphere) ContainsPoints(points ...mgl64.Vec3) bool {
	r2 := sphere.Radius * sphere.Radius
	for _, p := range points {
		if p.Sub(sphere.Center).LenSqr() > r2 {
			return false
		}
	}
	return true
}

// IntersectsSphere returns true if the two spheres overlap or touch.
func (sphere BoundingSphere) IntersectsSphere(other BoundingSphere) bool {
	radii := sphere.Radius + other.Radius
	return sphere.Center.Sub(other.Center).LenSqr() <= radii*radii
}

// IntersectsBox returns true if the sphere overlaps or touches the box; this is done by finding the point in the box that's closest to
// the sphere's center.
func (sphere BoundingSphere) IntersectsBox(box BoundingBox) bool {
	closest := box.ClosestPoint(sphere.Center)
	return closest.Sub(sphere.Center).LenSqr() <= sphere.Radius*sphere.Radius
}

// IntersectsFrustum returns true if the sphere is at least partially inside the frustum; that is, if it isn't entirely behind any one of
// the frustum's six planes.
func (sphere BoundingSphere) IntersectsFrustum(frustum Frustum) bool {
	for _, plane := range frustum.Planes() {
		if sphere.IntersectsPlane(plane) == Back {
			return false
		}
	}
	return true
}

// IntersectsPlane classifies the sphere against the plane.
func (sphere BoundingSphere) IntersectsPlane(plane Plane) Halfspace {

	distance := plane.DistanceTo(sphere.Center)

	if math.Abs(distance) <= sphere.Radius {
		return Intersecting
	}

	if distance > 0 {
		return Front
	}

	return Back

}

// IntersectsRay returns the distance along the Ray at which it first touches the sphere, and true if it does.
func (sphere BoundingSphere) IntersectsRay(ray Ray) (float64, bool) {
	return ray.IntersectsSphere(sphere)
}

// Merge grows the sphere to the smallest sphere containing both itself and the other sphere. Merging an empty sphere does nothing.
func (sphere *BoundingSphere) Merge(other BoundingSphere) {

	if other.IsEmpty() {
		return
	}

	v := sphere.Center.Sub(other.Center)
	d := v.Len()

	// This sphere fits inside the other one.
	if sphere.Radius <= other.Radius && d <= other.Radius-sphere.Radius {
		*sphere = other
		return
	}

	// The other sphere already fits inside this one.
	if d <= sphere.Radius-other.Radius {
		return
	}

	radius := (sphere.Radius + other.Radius + d) / 2

	sphere.Center = other.Center.Add(v.Mul((radius - other.Radius) / d))
	sphere.Radius = radius

}

// MergeBox grows the sphere to contain the box. Each corner of the box that still lies outside is pulled in in turn; growing
// towards a point keeps everything the sphere contained before, so once all eight corners are visited the whole box is inside.
// Merging an empty box does nothing.
func (sphere *BoundingSphere) MergeBox(box BoundingBox) {

	if box.IsEmpty() {
		return
	}

	for _, corner := range box.Corners() {
		sphere.MergePoint(corner)
	}

}

// MergePoint grows the sphere just enough to contain the given point, keeping the side of the sphere opposite the point in place.
func (sphere *BoundingSphere) MergePoint(point mgl64.Vec3) {

	v := sphere.Center.Sub(point)
	d := v.Len()

	if d <= sphere.Radius {
		return
	}

	radius := (sphere.Radius + d) / 2

	sphere.Center = point.Add(v.Mul(radius / d))
	sphere.Radius = radius

}

// Transform transforms the sphere by the given matrix. The center is transformed as a point, while the radius is multiplied by the
// largest scale factor in the matrix, so the sphere will always contain the transformed shape even under non-uniform scaling.
func (sphere *BoundingSphere) Transform(m mgl64.Mat4) {
	sphere.Center = TransformPoint(m, sphere.Center)
	sphere.Radius *= maxAbsScale(m)
}

// Transformed returns a copy of the sphere transformed by the given matrix.
func (sphere BoundingSphere) Transformed(m mgl64.Mat4) BoundingSphere {
	sphere.Transform(m)
	return sphere
}
