package tetrabounds

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene represents a named collection of Objects and Cameras. Every Object's Transform in a Scene is attached to the Scene's
// TransformBatch, so changes made within Update() are delivered once per Object when the update finishes.
type Scene struct {
	Name       string
	Properties *Properties
	Rays       []Ray // Test rays stored with the Scene, as loaded from a scene file

	objects []*Object
	cameras []*Camera
	batch   *TransformBatch
	library *Library
}

// NewScene returns a new, empty Scene.
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Properties: NewProperties(),
		objects:    []*Object{},
		cameras:    []*Camera{},
		Rays:       []Ray{},
		batch:      NewTransformBatch(),
	}
}

// Library returns the Library the Scene was loaded into, or nil if it wasn't loaded from one.
func (scene *Scene) Library() *Library {
	return scene.library
}

// Batch returns the TransformBatch shared by the Scene's Objects.
func (scene *Scene) Batch() *TransformBatch {
	return scene.batch
}

// Update runs the given function with the Scene's TransformBatch suspended. Transforms changed within it notify their listeners once
// each, after the function returns.
func (scene *Scene) Update(update func()) {
	scene.batch.Run(update)
}

// Add adds the given Objects to the Scene, attaching their Transforms to the Scene's batch. Objects already in another Scene are
// removed from it first.
func (scene *Scene) Add(objects ...*Object) {
	for _, obj := range objects {
		if obj.scene == scene {
			continue
		}
		if obj.scene != nil {
			obj.scene.Remove(obj)
		}
		obj.scene = scene
		obj.transform.SetBatch(scene.batch)
		scene.objects = append(scene.objects, obj)
	}
}

// Remove removes the given Objects from the Scene, detaching their Transforms from the Scene's batch.
func (scene *Scene) Remove(objects ...*Object) {

	for _, obj := range objects {

		for i := 0; i < len(scene.objects); i++ {
			if scene.objects[i] == obj {
				scene.objects[i] = nil
				scene.objects = append(scene.objects[:i], scene.objects[i+1:]...)
				obj.scene = nil
				obj.transform.SetBatch(nil)
				break
			}
		}

	}

}

// Objects returns the Objects in the Scene, in the order they were added.
func (scene *Scene) Objects() []*Object {
	return scene.objects
}

// FindObject returns the first Object in the Scene with the given name, or nil if there isn't one.
func (scene *Scene) FindObject(name string) *Object {
	for _, obj := range scene.objects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// AddCamera adds the given Camera to the Scene.
func (scene *Scene) AddCamera(camera *Camera) {
	scene.cameras = append(scene.cameras, camera)
}

// Cameras returns the Cameras in the Scene.
func (scene *Scene) Cameras() []*Camera {
	return scene.cameras
}

// FindCamera returns the first Camera in the Scene with the given name, or nil if there isn't one.
func (scene *Scene) FindCamera(name string) *Camera {
	for _, camera := range scene.cameras {
		if camera.Name == name {
			return camera
		}
	}
	return nil
}

// ActiveCamera returns the first Camera in the Scene, or nil if it has none.
func (scene *Scene) ActiveCamera() *Camera {
	if len(scene.cameras) == 0 {
		return nil
	}
	return scene.cameras[0]
}

// Bounds returns the smallest box containing every Object's world bounds, and false if no Object has bounds.
func (scene *Scene) Bounds() (BoundingBox, bool) {

	bounds := BoundingBox{}
	found := false

	for _, obj := range scene.objects {

		box, hasBox := obj.WorldBox()
		if !hasBox {
			sphere, hasSphere := obj.WorldSphere()
			if !hasSphere {
				continue
			}
			box.SetFromSphere(sphere)
		}

		if !found {
			bounds = box
			found = true
		} else {
			bounds.Merge(box)
		}

	}

	return bounds, found

}

// CullResult is the result of testing a Scene's Objects against a Frustum.
type CullResult struct {
	Visible []*Object // Objects at least partially inside the frustum
	Culled  []*Object // Objects entirely outside the frustum, or with no bounds
}

// IsVisible returns if the given Object was found to be visible.
func (result CullResult) IsVisible(obj *Object) bool {
	for _, v := range result.Visible {
		if v == obj {
			return true
		}
	}
	return false
}

// Cull sorts the Scene's Objects into those that are visible through the given Frustum and those that aren't.
func (scene *Scene) Cull(frustum Frustum) CullResult {

	result := CullResult{
		Visible: []*Object{},
		Culled:  []*Object{},
	}

	for _, obj := range scene.objects {
		if obj.IntersectsFrustum(frustum) {
			result.Visible = append(result.Visible, obj)
		} else {
			result.Culled = append(result.Culled, obj)
		}
	}

	return result

}

// RayHit represents the result of a raycast test against an Object.
type RayHit struct {
	Object   *Object    // Object is the Object that was struck by the ray.
	Distance float64    // Distance is how far along the ray the Object was struck.
	Position mgl64.Vec3 // Position is the world position where the Object's bounds were struck.
}

// Raycast tests the ray against every Object in the Scene, returning the hits sorted from nearest to furthest.
func (scene *Scene) Raycast(ray Ray) []RayHit {

	hits := []RayHit{}

	for _, obj := range scene.objects {
		if d, hit := obj.IntersectsRay(ray); hit {
			hits = append(hits, RayHit{
				Object:   obj,
				Distance: d,
				Position: ray.PointAt(d),
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })

	return hits

}

// RaycastFirst returns the nearest hit along the ray, and false if nothing was hit.
func (scene *Scene) RaycastFirst(ray Ray) (RayHit, bool) {
	hits := scene.Raycast(ray)
	if len(hits) == 0 {
		return RayHit{}, false
	}
	return hits[0], true
}
