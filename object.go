package tetrabounds

import (
	"github.com/go-gl/mathgl/mgl64"
)

var objectID int64 = 0

// Object represents a named thing in a Scene: a Transform placing it in the world, along with the local-space bounding volumes that
// describe its extent. Its world-space volumes are derived from the local ones lazily, and are only recomputed after the Transform
// has changed, including mid-way through a batched Scene update.
type Object struct {
	id         int64
	Name       string
	Properties *Properties

	transform *Transform
	handle    ListenerHandle

	localBox    BoundingBox
	hasBox      bool
	localSphere BoundingSphere
	hasSphere   bool

	worldBox     BoundingBox
	worldSphere  BoundingSphere
	boundsDirty  bool
	boundsMatrix mgl64.Mat4 // The matrix the world volumes were last built from
	changes      int

	scene *Scene
}

// NewObject returns a new Object with an identity Transform and no bounding volumes.
func NewObject(name string) *Object {

	obj := &Object{
		id:          objectID,
		Name:        name,
		Properties:  NewProperties(),
		transform:   NewTransform(),
		boundsDirty: true,
	}

	objectID++

	obj.handle = obj.transform.AddListener(obj, obj.id)

	return obj

}

// ID returns the Object's unique ID. This is also the cookie the Object registers on its Transform with.
func (obj *Object) ID() int64 {
	return obj.id
}

// Transform returns the Object's Transform.
func (obj *Object) Transform() *Transform {
	return obj.transform
}

// Scene returns the Scene the Object belongs to, or nil if it doesn't belong to one.
func (obj *Object) Scene() *Scene {
	return obj.scene
}

// TransformChanged marks the Object's world bounds as stale. It's called by the Object's Transform whenever it changes.
func (obj *Object) TransformChanged(transform *Transform, cookie int64) {
	obj.boundsDirty = true
	obj.changes++
}

// Changes returns how many change notifications the Object has received from its Transform.
func (obj *Object) Changes() int {
	return obj.changes
}

// Dispose detaches the Object from its Transform, so the Transform no longer references it.
func (obj *Object) Dispose() {
	obj.transform.RemoveListenerHandle(obj.handle)
	obj.handle = 0
}

// SetLocalBox sets the Object's local-space bounding box. If the Object has no bounding sphere yet, it's given one enclosing the box.
func (obj *Object) SetLocalBox(box BoundingBox) {
	obj.localBox = box
	obj.hasBox = true
	if !obj.hasSphere {
		obj.localSphere.SetFromBox(box)
		obj.hasSphere = true
	}
	obj.boundsDirty = true
}

// SetLocalSphere sets the Object's local-space bounding sphere. If the Object also has a box, the sphere should enclose it, as
// frustum and ray tests use the sphere to reject the Object early.
func (obj *Object) SetLocalSphere(sphere BoundingSphere) {
	obj.localSphere = sphere
	obj.hasSphere = true
	obj.boundsDirty = true
}

// LocalBox returns the Object's local-space bounding box, and false if it doesn't have one.
func (obj *Object) LocalBox() (BoundingBox, bool) {
	return obj.localBox, obj.hasBox
}

// LocalSphere returns the Object's local-space bounding sphere, and false if it doesn't have one.
func (obj *Object) LocalSphere() (BoundingSphere, bool) {
	return obj.localSphere, obj.hasSphere
}

// HasVolume returns true if the Object has a bounding box or sphere.
func (obj *Object) HasVolume() bool {
	return obj.hasBox || obj.hasSphere
}

// updateBounds rebuilds the world volumes when the Transform's matrix no longer matches the one they were built from. Inside a
// batched update the Transform's notification arrives late, so the matrix is checked directly as well.
func (obj *Object) updateBounds() {

	m := obj.transform.Matrix()

	if !obj.boundsDirty && m == obj.boundsMatrix {
		return
	}

	if obj.hasBox {
		obj.worldBox = obj.localBox.Transformed(m)
	}

	if obj.hasSphere {
		obj.worldSphere = obj.localSphere.Transformed(m)
	}

	obj.boundsMatrix = m
	obj.boundsDirty = false

}

// WorldBox returns the Object's bounding box in world space, and false if it doesn't have one.
func (obj *Object) WorldBox() (BoundingBox, bool) {
	obj.updateBounds()
	return obj.worldBox, obj.hasBox
}

// WorldSphere returns the Object's bounding sphere in world space, and false if it doesn't have one.
func (obj *Object) WorldSphere() (BoundingSphere, bool) {
	obj.updateBounds()
	return obj.worldSphere, obj.hasSphere
}

// WorldPosition returns the Object's translation.
func (obj *Object) WorldPosition() mgl64.Vec3 {
	return obj.transform.Translation()
}

// IntersectsFrustum returns true if any part of the Object's world bounds lies within the frustum. The sphere is tested first as it's
// cheaper; the box, if present, refines the result. Objects with no bounding volumes are never inside a frustum.
func (obj *Object) IntersectsFrustum(frustum Frustum) bool {

	obj.updateBounds()

	if obj.hasSphere && !obj.worldSphere.IntersectsFrustum(frustum) {
		return false
	}

	if obj.hasBox {
		return obj.worldBox.IntersectsFrustum(frustum)
	}

	return obj.hasSphere

}

// IntersectsRay returns the distance along the ray at which it hits the Object's world bounds, and true if it does. The box is used
// when present, as it's the tighter of the two volumes.
func (obj *Object) IntersectsRay(ray Ray) (float64, bool) {

	obj.updateBounds()

	if obj.hasSphere {
		if _, hit := obj.worldSphere.IntersectsRay(ray); !hit {
			return 0, false
		}
		if !obj.hasBox {
			return obj.worldSphere.IntersectsRay(ray)
		}
	}

	if obj.hasBox {
		return obj.worldBox.IntersectsRay(ray)
	}

	return 0, false

}
