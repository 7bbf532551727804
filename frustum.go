package tetrabounds

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Frustum represents a view frustum: the truncated pyramid (or box, for orthographic projections) of space that a camera can see.
// It's defined by six planes extracted from a combined view-projection matrix, with their normals all facing into the frustum.
// The planes are recomputed whenever the matrix is set.
type Frustum struct {
	near, far   Plane
	left, right Plane
	bottom, top Plane
	matrix      mgl64.Mat4
}

// NewFrustum returns a new Frustum built from the given view-projection matrix. A Frustum built from an identity matrix spans the
// canonical [-1, 1] clip-space cube.
func NewFrustum(viewProjection mgl64.Mat4) Frustum {
	frustum := Frustum{}
	frustum.Set(viewProjection)
	return frustum
}

// Set sets the matrix defining the Frustum and updates all six of its planes.
func (frustum *Frustum) Set(viewProjection mgl64.Mat4) {

	frustum.matrix = viewProjection

	r0 := viewProjection.Row(0)
	r1 := viewProjection.Row(1)
	r2 := viewProjection.Row(2)
	r3 := viewProjection.Row(3)

	frustum.near.setVec4(r3.Add(r2))
	frustum.far.setVec4(r3.Sub(r2))
	frustum.bottom.setVec4(r3.Add(r1))
	frustum.top.setVec4(r3.Sub(r1))
	frustum.left.setVec4(r3.Add(r0))
	frustum.right.setVec4(r3.Sub(r0))

}

// Matrix returns the matrix the Frustum was built from.
func (frustum Frustum) Matrix() mgl64.Mat4 {
	return frustum.matrix
}

// Near returns the Frustum's near plane.
func (frustum Frustum) Near() Plane { return frustum.near }

// Far returns the Frustum's far plane.
func (frustum Frustum) Far() Plane { return frustum.far }

// Left returns the Frustum's left plane.
func (frustum Frustum) Left() Plane { return frustum.left }

// Right returns the Frustum's right plane.
func (frustum Frustum) Right() Plane { return frustum.right }

// Bottom returns the Frustum's bottom plane.
func (frustum Frustum) Bottom() Plane { return frustum.bottom }

// Top returns the Frustum's top plane.
func (frustum Frustum) Top() Plane { return frustum.top }

// Planes returns all six planes in the order near, far, left, right, bottom, top.
func (frustum Frustum) Planes() [6]Plane {
	return [6]Plane{frustum.near, frustum.far, frustum.left, frustum.right, frustum.bottom, frustum.top}
}

// NearCorners returns the four corners of the near plane: left-top, left-bottom, right-bottom, and right-top.
func (frustum Frustum) NearCorners() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{
		cornerOf(frustum.near, frustum.left, frustum.top),
		cornerOf(frustum.near, frustum.left, frustum.bottom),
		cornerOf(frustum.near, frustum.right, frustum.bottom),
		cornerOf(frustum.near, frustum.right, frustum.top),
	}
}

// FarCorners returns the four corners of the far plane: right-top, right-bottom, left-bottom, and left-top.
func (frustum Frustum) FarCorners() [4]mgl64.Vec3 {
	return [4]mgl64.Vec3{
		cornerOf(frustum.far, frustum.right, frustum.top),
		cornerOf(frustum.far, frustum.right, frustum.bottom),
		cornerOf(frustum.far, frustum.left, frustum.bottom),
		cornerOf(frustum.far, frustum.left, frustum.top),
	}
}

// Corners returns all eight corners of the Frustum, the near corners followed by the far corners.
func (frustum Frustum) Corners() [8]mgl64.Vec3 {
	near := frustum.NearCorners()
	far := frustum.FarCorners()
	return [8]mgl64.Vec3{near[0], near[1], near[2], near[3], far[0], far[1], far[2], far[3]}
}

// cornerOf returns where the three planes meet. A degenerate matrix can produce parallel planes; the corner collapses to the origin then.
func cornerOf(p1, p2, p3 Plane) mgl64.Vec3 {
	point, _ := IntersectPlanes(p1, p2, p3)
	return point
}

// ContainsPoint returns true if the point lies strictly inside the Frustum.
func (frustum Frustum) ContainsPoint(point mgl64.Vec3) bool {
	for _, plane := range frustum.Planes() {
		if plane.DistanceTo(point) <= 0 {
			return false
		}
	}
	return true
}

// IntersectsBox returns true if the box is at least partially inside the Frustum.
func (frustum Frustum) IntersectsBox(box BoundingBox) bool {
	return box.IntersectsFrustum(frustum)
}

// IntersectsSphere returns true if the sphere is at least partially inside the Frustum.
func (frustum Frustum) IntersectsSphere(sphere BoundingSphere) bool {
	return sphere.IntersectsFrustum(frustum)
}

// IntersectsPlane classifies the Frustum against the plane using its eight corners.
func (frustum Frustum) IntersectsPlane(plane Plane) Halfspace {

	corners := frustum.Corners()

	front, back := false, false

	for _, c := range corners {
		d := plane.DistanceTo(c)
		if d > 0 {
			front = true
		} else if d < 0 {
			back = true
		} else {
			return Intersecting
		}
		if front && back {
			return Intersecting
		}
	}

	if front {
		return Front
	}

	return Back

}

// IntersectsRay returns a distance along the Ray at which it meets the Frustum, and true if it does.
func (frustum Frustum) IntersectsRay(ray Ray) (float64, bool) {
	return ray.IntersectsFrustum(frustum)
}
