package tetrabounds

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundingBox represents a 3D AABB (Axis-Aligned Bounding Box), a 3D box of varying width, height, and depth that cannot rotate.
// Min should be less than or equal to Max on every axis; a box whose Min equals its Max is considered empty.
// The primary purpose of a BoundingBox is, like BoundingSphere, to perform fast intersection testing against the other shapes in the package.
type BoundingBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBoundingBox returns a new BoundingBox spanning the two given points; the points may be given in any order.
func NewBoundingBox(a, b mgl64.Vec3) BoundingBox {
	return BoundingBox{Min: vecMin(a, b), Max: vecMax(a, b)}
}

// NewBoundingBoxFromPoints returns the smallest BoundingBox containing all of the given points. With no points, an empty box at the
// origin is returned.
func NewBoundingBoxFromPoints(points ...mgl64.Vec3) BoundingBox {

	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{Min: points[0], Max: points[0]}

	for _, p := range points[1:] {
		box.Min = vecMin(box.Min, p)
		box.Max = vecMax(box.Max, p)
	}

	return box

}

// Set sets the box's extents to span the two given points.
func (box *BoundingBox) Set(a, b mgl64.Vec3) {
	box.Min = vecMin(a, b)
	box.Max = vecMax(a, b)
}

// SetFromSphere sets the box to be the smallest box containing the given sphere.
func (box *BoundingBox) SetFromSphere(sphere BoundingSphere) {
	r := mgl64.Vec3{sphere.Radius, sphere.Radius, sphere.Radius}
	box.Min = sphere.Center.Sub(r)
	box.Max = sphere.Center.Add(r)
}

// IsEmpty returns true if the box's Min and Max are identical.
func (box BoundingBox) IsEmpty() bool {
	return box.Min == box.Max
}

// Center returns the point at the middle of the box.
func (box BoundingBox) Center() mgl64.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

// Size returns the width, height, and depth of the box.
func (box BoundingBox) Size() mgl64.Vec3 {
	return box.Max.Sub(box.Min)
}

// Corners returns the eight corners of the box. The first four are the near face (+Z), counter-clockwise starting from the left-top-front
// corner when looking towards the origin from +Z. The last four are the far face (-Z), starting from the right-top-back corner.
func (box BoundingBox) Corners() [8]mgl64.Vec3 {
	min, max := box.Min, box.Max
	return [8]mgl64.Vec3{
		// Near face
		{min[0], max[1], max[2]},
		{min[0], min[1], max[2]},
		{max[0], min[1], max[2]},
		{max[0], max[1], max[2]},
		// Far face
		{max[0], max[1], min[2]},
		{max[0], min[1], min[2]},
		{min[0], min[1], min[2]},
		{min[0], max[1], min[2]},
	}
}

// ClosestPoint returns the point inside or on the surface of the box that's closest to the given point.
func (box BoundingBox) ClosestPoint(point mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		clamp(point[0], box.Min[0], box.Max[0]),
		clamp(point[1], box.Min[1], box.Max[1]),
		clamp(point[2], box.Min[2], box.Max[2]),
	}
}

// ContainsPoint returns true if the point lies inside or on the surface of the box.
func (box BoundingBox) ContainsPoint(point mgl64.Vec3) bool {
	return point[0] >= box.Min[0] && point[0] <= box.Max[0] &&
		point[1] >= box.Min[1] && point[1] <= box.Max[1] &&
		point[2] >= box.Min[2] && point[2] <= box.Max[2]
}

// IntersectsBox returns true if the two boxes overlap or touch.
func (box BoundingBox) IntersectsBox(other BoundingBox) bool {

	for axis := 0; axis < 3; axis++ {
		if !((box.Min[axis] >= other.Min[axis] && box.Min[axis] <= other.Max[axis]) ||
			(other.Min[axis] >= box.Min[axis] && other.Min[axis] <= box.Max[axis])) {
			return false
		}
	}

	return true

}

// IntersectsSphere returns true if the box and sphere overlap or touch.
func (box BoundingBox) IntersectsSphere(sphere BoundingSphere) bool {
	return sphere.IntersectsBox(box)
}

// IntersectsFrustum returns true if the box is at least partially inside the frustum; that is, if it isn't entirely behind any one of
// the frustum's six planes.
func (box BoundingBox) IntersectsFrustum(frustum Frustum) bool {
	for _, plane := range frustum.Planes() {
		if box.IntersectsPlane(plane) == Back {
			return false
		}
	}
	return true
}

// IntersectsPlane classifies the box against the plane by comparing the distance from the box's center to the plane against the box's
// half-extents projected onto the plane's normal.
func (box BoundingBox) IntersectsPlane(plane Plane) Halfspace {

	center := box.Center()
	extent := box.Size().Mul(0.5)
	normal := plane.Normal()

	distance := plane.DistanceTo(center)

	reach := math.Abs(extent[0]*normal[0]) +
		math.Abs(extent[1]*normal[1]) +
		math.Abs(extent[2]*normal[2])

	if math.Abs(distance) <= reach {
		return Intersecting
	}

	if distance > 0 {
		return Front
	}

	return Back

}

// IntersectsRay returns the distance along the Ray at which it enters the box, and true if it does.
func (box BoundingBox) IntersectsRay(ray Ray) (float64, bool) {
	return ray.IntersectsBox(box)
}

// Merge grows the box to also contain the other box.
func (box *BoundingBox) Merge(other BoundingBox) {
	box.Min = vecMin(box.Min, other.Min)
	box.Max = vecMax(box.Max, other.Max)
}

// MergeSphere grows the box to also contain the given sphere.
func (box *BoundingBox) MergeSphere(sphere BoundingSphere) {
	other := BoundingBox{}
	other.SetFromSphere(sphere)
	box.Merge(other)
}

// Transform transforms the box by the given matrix. As the result must stay axis-aligned, all eight corners are transformed and the box
// is set to the smallest box that contains them all.
func (box *BoundingBox) Transform(m mgl64.Mat4) {

	corners := box.Corners()

	first := TransformPoint(m, corners[0])
	min, max := first, first

	for _, c := range corners[1:] {
		p := TransformPoint(m, c)
		min = vecMin(min, p)
		max = vecMax(max, p)
	}

	box.Min = min
	box.Max = max

}

// Transformed returns a copy of the box transformed by the given matrix.
func (box BoundingBox) Transformed(m mgl64.Mat4) BoundingBox {
	box.Transform(m)
	return box
}
