package tetrabounds

// Volume represents a bounding volume that can be tested for intersection against the other shapes in the package. BoundingBox and
// BoundingSphere both implement Volume.
type Volume interface {
	// IntersectsBox returns true if the Volume overlaps or touches the box.
	IntersectsBox(box BoundingBox) bool
	// IntersectsSphere returns true if the Volume overlaps or touches the sphere.
	IntersectsSphere(sphere BoundingSphere) bool
	// IntersectsFrustum returns true if the Volume is at least partially inside the frustum.
	IntersectsFrustum(frustum Frustum) bool
	// IntersectsPlane classifies the Volume against the plane.
	IntersectsPlane(plane Plane) Halfspace
	// IntersectsRay returns the distance along the Ray at which it hits the Volume, and true if it does.
	IntersectsRay(ray Ray) (float64, bool)
}

var (
	_ Volume = BoundingBox{}
	_ Volume = BoundingSphere{}
)

// VolumesIntersect returns true if the two Volumes overlap or touch. Volume types other than BoundingBox and BoundingSphere are
// never considered to intersect.
func VolumesIntersect(a, b Volume) bool {
	switch other := b.(type) {
	case BoundingBox:
		return a.IntersectsBox(other)
	case *BoundingBox:
		return a.IntersectsBox(*other)
	case BoundingSphere:
		return a.IntersectsSphere(other)
	case *BoundingSphere:
		return a.IntersectsSphere(*other)
	}
	return false
}
