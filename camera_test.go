package tetrabounds

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCameraDefaults(t *testing.T) {

	camera := NewCamera("main", 0)

	if !camera.Perspective() || camera.FieldOfView() != 60 || camera.Near() != 0.1 || camera.Far() != 100 {
		t.Errorf("unexpected defaults: perspective %v, fov %v, near %v, far %v", camera.Perspective(), camera.FieldOfView(), camera.Near(), camera.Far())
	}

	if camera.AspectRatio() != 1 {
		t.Errorf("aspect ratio = %v, want 1 for a non-positive input", camera.AspectRatio())
	}

	camera.SetAspectRatio(-2)
	if camera.AspectRatio() != 1 {
		t.Error("SetAspectRatio should ignore non-positive ratios")
	}

}

func TestCameraFrustumFollowsTransform(t *testing.T) {

	camera := NewCamera("main", 1)
	point := mgl64.Vec3{0, 0, -5}

	if !camera.Frustum().ContainsPoint(point) {
		t.Fatal("camera at the origin should see a point ahead of it")
	}

	camera.Transform().SetTranslationXYZ(0, 0, -10)

	if camera.Frustum().ContainsPoint(point) {
		t.Error("moving the camera past the point should cull it")
	}

	camera.Transform().SetTranslationXYZ(0, 0, 0)
	camera.Transform().RotateY(ToRadians(180))

	if camera.Frustum().ContainsPoint(point) {
		t.Error("turning the camera around should cull the point")
	}

}

func TestCameraFrustumFollowsProjection(t *testing.T) {

	camera := NewCamera("main", 1)
	point := mgl64.Vec3{0, 0, -5}

	camera.SetFar(3)
	if camera.Frustum().ContainsPoint(point) {
		t.Error("point beyond the far plane should be culled")
	}

	camera.SetFar(100)
	camera.SetNear(6)
	if camera.Frustum().ContainsPoint(point) {
		t.Error("point before the near plane should be culled")
	}

	camera.SetNear(0.1)
	camera.SetPerspective(false)
	camera.SetOrthoScale(20)

	tests := []struct {
		point mgl64.Vec3
		want  bool
	}{
		{mgl64.Vec3{9, 0, -5}, true},
		{mgl64.Vec3{11, 0, -5}, false},
		{mgl64.Vec3{0, 9, -50}, true},
		{mgl64.Vec3{0, -11, -50}, false},
	}

	for _, tt := range tests {
		if got := camera.Frustum().ContainsPoint(tt.point); got != tt.want {
			t.Errorf("orthographic ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
		}
	}

}

func TestCameraLookAt(t *testing.T) {

	camera := NewCamera("main", 1)
	camera.LookAt(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{}, VecY)

	if got := camera.Transform().Forward(); !vecApproxEqual(got, mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("forward = %v, want (-1, 0, 0)", got)
	}

	if got := camera.Transform().Translation(); got != (mgl64.Vec3{10, 0, 0}) {
		t.Errorf("translation = %v, want eye", got)
	}

	view := camera.ViewMatrix()
	if got := TransformPoint(view, mgl64.Vec3{}); !vecApproxEqual(got, mgl64.Vec3{0, 0, -10}) {
		t.Errorf("target in view space = %v, want (0, 0, -10)", got)
	}

}

func TestCameraScreenRay(t *testing.T) {

	camera := NewCamera("main", 1)
	camera.LookAt(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, VecY)

	ray, err := camera.ScreenRay(0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !vecApproxEqual(ray.Direction(), mgl64.Vec3{0, 0, -1}) {
		t.Errorf("center ray direction = %v, want (0, 0, -1)", ray.Direction())
	}

	if !vecApproxEqual(ray.Origin(), mgl64.Vec3{0, 0, 9.9}) {
		t.Errorf("center ray origin = %v, want on the near plane at z = 9.9", ray.Origin())
	}

	right, err := camera.ScreenRay(1, 0)
	if err != nil {
		t.Fatal(err)
	}

	if right.Direction().X() <= 0 {
		t.Errorf("ray through the right edge should head right, got %v", right.Direction())
	}

	box := NewBoundingBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	if d, ok := ray.IntersectsBox(box); !ok || !approxEqual(d, 8.9) {
		t.Errorf("center ray box hit = %v %v, want 8.9", d, ok)
	}

}
