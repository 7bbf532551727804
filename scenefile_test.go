package tetrabounds

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testSceneFile = `
exportedScene: level
scenes:
  - name: menu
  - name: level
    properties:
      gravity: [0, -9.8, 0]
    cameras:
      - {name: main, aspect: 2, fov: 45, near: 0.5, far: 50, eye: [0, 0, 10], target: [0, 0, 0]}
      - {name: top, orthographic: true, orthoScale: 40, eye: [0, 20, 0]}
    objects:
      - name: crate
        translation: [0, 1, 0]
        rotation: {axis: [0, 1, 0], angle: 90}
        box: {min: [-1, -1, -1], max: [1, 1, 1]}
        static: true
        properties: {hp: 10, tint: [1, 0, 0, 1], label: wooden}
        children:
          - name: lid
            translation: [0, 1, 0]
            scale: [2, 2, 2]
            sphere: {center: [0, 0, 0], radius: 0.5}
      - name: marker
    rays:
      - {origin: [-10, 1, 0], direction: [2, 0, 0]}
      - {origin: [0, 0, 0]}
animations:
  - name: bob
    channels:
      - object: marker
        tracks:
          - {type: translation.y, from: 1, to: 2, duration: 0.5, ease: inOutSine}
          - {type: rotation.y, from: 0, to: 360, start: 0.5, duration: 1}
`

func TestLoadSceneData(t *testing.T) {

	library, err := LoadSceneData([]byte(testSceneFile))
	if err != nil {
		t.Fatal(err)
	}

	if len(library.Scenes) != 2 {
		t.Fatalf("scene count = %d, want 2", len(library.Scenes))
	}

	scene := library.ExportedScene
	if scene.Name != "level" {
		t.Fatalf("exported scene = %q, want level", scene.Name)
	}

	if got := scene.Properties.Get("gravity").AsVector(); got != (mgl64.Vec3{0, -9.8, 0}) {
		t.Errorf("gravity = %v", got)
	}

	crate := scene.FindObject("crate")
	if crate == nil {
		t.Fatal("crate not found")
	}

	if !crate.Transform().IsStatic() {
		t.Error("crate should be static")
	}

	if got := crate.Properties.Get("hp"); !got.IsNumber() || got.AsFloat64() != 10 {
		t.Errorf("hp = %v, want 10", got.Value)
	}

	if got := crate.Properties.Get("tint").AsColor(); got != NewColor(1, 0, 0, 1) {
		t.Errorf("tint = %v, want red", got)
	}

	if got := crate.Properties.Get("label").AsString(); got != "wooden" {
		t.Errorf("label = %q, want wooden", got)
	}

	// Rotated 90 degrees around +Y, the crate's local +X faces world -Z.
	if got := crate.Transform().TransformVector(VecX); !vecApproxEqual(got, mgl64.Vec3{0, 0, -1}) {
		t.Errorf("crate +X = %v, want (0, 0, -1)", got)
	}

	lid := scene.FindObject("lid")
	if lid == nil {
		t.Fatal("lid should be flattened into the scene")
	}

	if got := lid.WorldPosition(); !vecApproxEqual(got, mgl64.Vec3{0, 2, 0}) {
		t.Errorf("lid position = %v, want (0, 2, 0)", got)
	}

	sphere, ok := lid.WorldSphere()
	if !ok || !approxEqual(sphere.Radius, 1) {
		t.Errorf("lid world sphere = %v, want radius 1", sphere)
	}

	marker := scene.FindObject("marker")
	if marker == nil || marker.HasVolume() {
		t.Error("marker should load without volume")
	}

	if len(scene.Rays) != 2 {
		t.Fatalf("ray count = %d, want 2", len(scene.Rays))
	}

	if got := scene.Rays[0].Direction(); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("ray direction = %v, want normalized +X", got)
	}

	if hit, ok := scene.RaycastFirst(scene.Rays[0]); !ok || hit.Object != crate || !approxEqual(hit.Distance, 9) {
		t.Errorf("ray hit = %+v, want crate at 9", hit)
	}

	if got := scene.Rays[1].Direction(); got != (mgl64.Vec3{0, 0, -1}) {
		t.Errorf("default ray direction = %v, want -Z", got)
	}

	main := scene.FindCamera("main")
	if main == nil || !main.Perspective() || main.AspectRatio() != 2 || main.FieldOfView() != 45 || main.Near() != 0.5 || main.Far() != 50 {
		t.Fatalf("main camera loaded incorrectly: %+v", main)
	}

	if !main.Frustum().ContainsPoint(mgl64.Vec3{}) {
		t.Error("main camera should see the origin")
	}

	top := scene.FindCamera("top")
	if top == nil || top.Perspective() || top.OrthoScale() != 40 || top.AspectRatio() != 16.0/9.0 {
		t.Errorf("top camera loaded incorrectly: %+v", top)
	}

	bob := library.Animations["bob"]
	if bob == nil {
		t.Fatal("animation bob not found")
	}

	if got := bob.Length(); !approxEqual(got, 1.5) {
		t.Errorf("bob length = %v, want 1.5", got)
	}

	if track := bob.Channels["marker"].Tracks[TrackTypeRotationY]; track.Ease != "linear" {
		t.Errorf("default ease = %q, want linear", track.Ease)
	}

}

func TestLoadSceneDataErrors(t *testing.T) {

	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"bad yaml", "scenes: [", false},
		{"no scenes", "exportedScene: nope", true},
		{"missing exported scene", "exportedScene: nope\nscenes: [{name: a}]", true},
		{"short vector", "scenes: [{objects: [{name: a, translation: [1, 2]}]}]", true},
		{"bad camera range", "scenes: [{cameras: [{name: c, near: 10, far: 1}]}]", true},
		{"camera target at eye", "scenes: [{cameras: [{name: c, eye: [1, 1, 1], target: [1, 1, 1]}]}]", true},
		{"zero ray direction", "scenes: [{rays: [{origin: [0, 0, 0], direction: [0, 0, 0]}]}]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSceneData([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalidSceneFile) != tt.invalid {
				t.Errorf("err = %v, ErrInvalidSceneFile = %v, want %v", err, errors.Is(err, ErrInvalidSceneFile), tt.invalid)
			}
		})
	}

	_, err := LoadSceneData([]byte("scenes: [{name: a}]\nanimations: [{name: x, channels: [{object: a, tracks: [{type: spin}]}]}]"))
	if !errors.Is(err, ErrUnknownTrackType) {
		t.Errorf("err = %v, want ErrUnknownTrackType", err)
	}

}

func TestLoadFile(t *testing.T) {

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "level.yml")
	if err := os.WriteFile(yamlPath, []byte(testSceneFile), 0o644); err != nil {
		t.Fatal(err)
	}

	gltfPath := filepath.Join(dir, "level.gltf")
	if err := os.WriteFile(gltfPath, []byte(testGLTF), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsSceneFilePath(yamlPath) || IsSceneFilePath(gltfPath) {
		t.Error("IsSceneFilePath should match by extension")
	}

	library, err := LoadFile(yamlPath)
	if err != nil || library.FindObject("crate") == nil {
		t.Errorf("loading YAML: err = %v", err)
	}

	library, err = LoadFile(gltfPath)
	if err != nil || library.FindObject("Crate") == nil {
		t.Errorf("loading glTF: err = %v", err)
	}

}

func TestLoadExampleLevel(t *testing.T) {

	library, err := LoadFile(filepath.Join("examples", "level.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	scene := library.ExportedScene
	result := scene.Cull(scene.ActiveCamera().Frustum())

	for name, visible := range map[string]bool{"crate": true, "pillar": true, "ball": true, "behind": false} {
		if got := result.IsVisible(scene.FindObject(name)); got != visible {
			t.Errorf("%s visible = %v, want %v", name, got, visible)
		}
	}

	if _, ok := library.Animations["patrol"]; !ok {
		t.Error("patrol animation not loaded")
	}

}
