package tetrabounds

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera represents a point of view into a Scene: a Transform placing it in the world (looking down its local -Z), along with a
// perspective or orthographic projection. The Camera's Frustum is cached, and rebuilt only after the Camera's Transform or its
// projection changes.
type Camera struct {
	Name string

	transform *Transform
	handle    ListenerHandle

	perspective bool
	fieldOfView float64 // Vertical field of view in degrees
	orthoScale  float64 // Width of an orthographic view in world units
	aspectRatio float64
	near, far   float64

	cachedProjectionMatrix mgl64.Mat4
	updateProjectionMatrix bool

	cachedFrustum Frustum
	updateFrustum bool
}

// NewCamera returns a new perspective Camera with a 60 degree vertical field of view, viewing from 0.1 to 100 units away, at
// the given aspect ratio (width / height).
func NewCamera(name string, aspectRatio float64) *Camera {

	camera := &Camera{
		Name:                   name,
		transform:              NewTransform(),
		perspective:            true,
		fieldOfView:            60,
		orthoScale:             20,
		aspectRatio:            aspectRatio,
		near:                   0.1,
		far:                    100,
		updateProjectionMatrix: true,
		updateFrustum:          true,
	}

	if camera.aspectRatio <= 0 {
		camera.aspectRatio = 1
	}

	camera.handle = camera.transform.AddListener(camera, 0)

	return camera

}

// Transform returns the Camera's Transform. The Camera listens to it to know when its view has changed.
func (camera *Camera) Transform() *Transform {
	return camera.transform
}

// TransformChanged marks the Camera's frustum as needing to be rebuilt.
func (camera *Camera) TransformChanged(transform *Transform, cookie int64) {
	camera.updateFrustum = true
}

// LookAt places the Camera at the eye position, rotated to look towards the target with the given up vector.
func (camera *Camera) LookAt(eye, target, up mgl64.Vec3) {
	_, _, rotation := DecomposeMatrix(mgl64.LookAtV(eye, target, up).Inv())
	camera.transform.Set(eye, rotation, camera.transform.Scale())
}

// ViewMatrix returns the Camera's view matrix, which transforms world space into the Camera's local space.
func (camera *Camera) ViewMatrix() mgl64.Mat4 {
	return camera.transform.Matrix().Inv()
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() mgl64.Mat4 {

	if !camera.updateProjectionMatrix {
		return camera.cachedProjectionMatrix
	}

	camera.updateProjectionMatrix = false

	if camera.perspective {
		camera.cachedProjectionMatrix = mgl64.Perspective(mgl64.DegToRad(camera.fieldOfView), camera.aspectRatio, camera.near, camera.far)
	} else {
		w := camera.orthoScale / 2
		h := w / camera.aspectRatio
		camera.cachedProjectionMatrix = mgl64.Ortho(-w, w, -h, h, camera.near, camera.far)
	}

	return camera.cachedProjectionMatrix

}

// ViewProjection returns the Camera's projection matrix multiplied by its view matrix.
func (camera *Camera) ViewProjection() mgl64.Mat4 {
	return camera.Projection().Mul4(camera.ViewMatrix())
}

// Frustum returns the Camera's view frustum.
func (camera *Camera) Frustum() Frustum {
	if camera.updateFrustum || camera.updateProjectionMatrix {
		camera.cachedFrustum.Set(camera.ViewProjection())
		camera.updateFrustum = false
	}
	return camera.cachedFrustum
}

// ScreenRay returns a Ray starting on the Camera's near plane and heading through the given point on the screen. The point is given
// in normalized device coordinates, with -1, -1 being the bottom-left of the screen and 1, 1 the top-right.
func (camera *Camera) ScreenRay(x, y float64) (Ray, error) {

	inv := camera.ViewProjection().Inv()

	near := inv.Mul4x1(mgl64.Vec4{x, y, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})

	from := near.Vec3().Mul(1 / near[3])
	to := far.Vec3().Mul(1 / far[3])

	return NewRay(from, to.Sub(from))

}

func (camera *Camera) dirtyProjection() {
	camera.updateProjectionMatrix = true
	camera.updateFrustum = true
}

// SetPerspective sets the Camera's projection to be a perspective (true) or orthographic (false) projection.
func (camera *Camera) SetPerspective(perspective bool) {
	if camera.perspective == perspective {
		return
	}
	camera.perspective = perspective
	camera.dirtyProjection()
}

// Perspective returns whether the Camera is perspective or not (orthographic).
func (camera *Camera) Perspective() bool {
	return camera.perspective
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	if camera.fieldOfView == fovY {
		return
	}
	camera.fieldOfView = fovY
	camera.dirtyProjection()
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetOrthoScale sets the scale of an orthographic camera in world units across (horizontally).
func (camera *Camera) SetOrthoScale(scale float64) {
	if camera.orthoScale == scale {
		return
	}
	camera.orthoScale = scale
	camera.dirtyProjection()
}

// OrthoScale returns the scale of an orthographic camera in world units across (horizontally).
func (camera *Camera) OrthoScale() float64 {
	return camera.orthoScale
}

// SetAspectRatio sets the ratio of the view's width to its height.
func (camera *Camera) SetAspectRatio(aspectRatio float64) {
	if camera.aspectRatio == aspectRatio || aspectRatio <= 0 {
		return
	}
	camera.aspectRatio = aspectRatio
	camera.dirtyProjection()
}

// AspectRatio returns the ratio of the view's width to its height.
func (camera *Camera) AspectRatio() float64 {
	return camera.aspectRatio
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetNear sets the near plane of a camera.
func (camera *Camera) SetNear(near float64) {
	if camera.near == near {
		return
	}
	camera.near = near
	camera.dirtyProjection()
}

// Far returns the far plane of a camera.
func (camera *Camera) Far() float64 {
	return camera.far
}

// SetFar sets the far plane of the camera.
func (camera *Camera) SetFar(far float64) {
	if camera.far == far {
		return
	}
	camera.far = far
	camera.dirtyProjection()
}
