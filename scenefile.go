package tetrabounds

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const ErrorInvalidSceneFile = "error: invalid scene file"

// ErrInvalidSceneFile is returned (wrapped with the reason) when a YAML scene file is well-formed YAML, but describes something
// that can't be built, like a vector with the wrong number of components.
var ErrInvalidSceneFile = errors.New(ErrorInvalidSceneFile)

type sceneFileVolumeBox struct {
	Min []float64 `yaml:"min"`
	Max []float64 `yaml:"max"`
}

type sceneFileVolumeSphere struct {
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
}

type sceneFileRotation struct {
	Axis  []float64 `yaml:"axis"`
	Angle float64   `yaml:"angle"` // Degrees
}

type sceneFileObject struct {
	Name        string                 `yaml:"name"`
	Translation []float64              `yaml:"translation"`
	Rotation    *sceneFileRotation     `yaml:"rotation"`
	Scale       []float64              `yaml:"scale"`
	Box         *sceneFileVolumeBox    `yaml:"box"`
	Sphere      *sceneFileVolumeSphere `yaml:"sphere"`
	Static      bool                   `yaml:"static"`
	Properties  map[string]any         `yaml:"properties"`
	Children    []sceneFileObject      `yaml:"children"`
}

type sceneFileCamera struct {
	Name         string    `yaml:"name"`
	AspectRatio  float64   `yaml:"aspect"`
	Orthographic bool      `yaml:"orthographic"`
	FieldOfView  float64   `yaml:"fov"`
	OrthoScale   float64   `yaml:"orthoScale"`
	Near         float64   `yaml:"near"`
	Far          float64   `yaml:"far"`
	Eye          []float64 `yaml:"eye"`
	Target       []float64 `yaml:"target"`
	Up           []float64 `yaml:"up"`
}

type sceneFileRay struct {
	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`
}

type sceneFileScene struct {
	Name       string            `yaml:"name"`
	Properties map[string]any    `yaml:"properties"`
	Cameras    []sceneFileCamera `yaml:"cameras"`
	Objects    []sceneFileObject `yaml:"objects"`
	Rays       []sceneFileRay    `yaml:"rays"`
}

type sceneFileTrack struct {
	Type     string  `yaml:"type"`
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

type sceneFileChannel struct {
	Object string           `yaml:"object"`
	Tracks []sceneFileTrack `yaml:"tracks"`
}

type sceneFileAnimation struct {
	Name     string             `yaml:"name"`
	Channels []sceneFileChannel `yaml:"channels"`
}

type sceneFile struct {
	ExportedScene string               `yaml:"exportedScene"`
	Scenes        []sceneFileScene     `yaml:"scenes"`
	Animations    []sceneFileAnimation `yaml:"animations"`
}

// LoadSceneFile takes a filepath to a YAML scene file (.yaml / .yml), and returns a *Library populated with its Scenes, Objects, Cameras,
// and Animations. If the call couldn't complete for any reason, like due to a malformed file, it will return an error.
func LoadSceneFile(path string) (*Library, error) {

	if fileData, err := os.ReadFile(path); err != nil {
		return nil, err
	} else {
		return LoadSceneData(fileData)
	}

}

// LoadSceneData takes a []byte consisting of the contents of a YAML scene file, and returns a *Library populated with its Scenes,
// Objects, Cameras, and Animations.
//
// A scene file looks like this:
//
//	exportedScene: level
//	scenes:
//	  - name: level
//	    cameras:
//	      - {name: main, aspect: 1.777, fov: 60, near: 0.1, far: 100, eye: [0, 2, 10], target: [0, 0, 0]}
//	    objects:
//	      - name: crate
//	        translation: [0, 1, 0]
//	        rotation: {axis: [0, 1, 0], angle: 45}
//	        box: {min: [-1, -1, -1], max: [1, 1, 1]}
//	        static: true
//	        properties: {hp: 10, tint: [1, 0, 0, 1]}
//	        children:
//	          - {name: lid, translation: [0, 1, 0], sphere: {center: [0, 0, 0], radius: 0.5}}
//	    rays:
//	      - {origin: [-10, 1, 0], direction: [1, 0, 0]}
//	animations:
//	  - name: bob
//	    channels:
//	      - object: crate
//	        tracks:
//	          - {type: translation.y, from: 1, to: 2, duration: 0.5, ease: inOutSine}
//
// Children are flattened into their Scene, each with its parent's world matrix composed into its Transform.
func LoadSceneData(data []byte) (*Library, error) {

	file := sceneFile{}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if len(file.Scenes) == 0 {
		return nil, fmt.Errorf("%w: no scenes", ErrInvalidSceneFile)
	}

	library := NewLibrary()

	for i, fileScene := range file.Scenes {

		name := fileScene.Name
		if name == "" {
			name = fmt.Sprintf("Scene.%03d", i)
		}

		scene := library.AddScene(name)

		for propName, value := range fileScene.Properties {
			scene.Properties.Get(propName).setFromGeneric(value)
		}

		for _, fileCam := range fileScene.Cameras {
			camera, err := fileCam.build()
			if err != nil {
				return nil, err
			}
			scene.AddCamera(camera)
		}

		for _, fileObj := range fileScene.Objects {
			if err := fileObj.addTo(scene, mgl64.Ident4()); err != nil {
				return nil, err
			}
		}

		for i, fileRay := range fileScene.Rays {
			ray, err := fileRay.build()
			if err != nil {
				return nil, fmt.Errorf("scene %q, ray %d: %w", scene.Name, i, err)
			}
			scene.Rays = append(scene.Rays, ray)
		}

	}

	library.ExportedScene = library.Scenes[0]

	if file.ExportedScene != "" {
		library.ExportedScene = library.FindScene(file.ExportedScene)
		if library.ExportedScene == nil {
			return nil, fmt.Errorf("%w: exported scene %q not found", ErrInvalidSceneFile, file.ExportedScene)
		}
	}

	for _, fileAnim := range file.Animations {

		anim := NewAnimation(fileAnim.Name)

		for _, fileChannel := range fileAnim.Channels {

			channel := anim.AddChannel(fileChannel.Object)

			for _, fileTrack := range fileChannel.Tracks {
				if _, err := channel.AddTrack(fileTrack.Type, fileTrack.From, fileTrack.To, fileTrack.Start, fileTrack.Duration, fileTrack.Ease); err != nil {
					return nil, fmt.Errorf("animation %q, object %q: %w", fileAnim.Name, fileChannel.Object, err)
				}
			}

		}

		library.Animations[anim.Name] = anim

	}

	return library, nil

}

// LoadFile loads a Library from the file at the given path, picking the loader by the file's extension: glTF for .gltf and .glb files,
// and YAML scene files for everything else.
func LoadFile(path string) (*Library, error) {
	if IsGLTFPath(path) {
		return LoadGLTFFile(path, nil)
	}
	return LoadSceneFile(path)
}

// IsSceneFilePath returns if the path given has a YAML file extension (.yaml or .yml).
func IsSceneFilePath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

func sceneFileVec(field string, values []float64, defaultValue mgl64.Vec3) (mgl64.Vec3, error) {
	if values == nil {
		return defaultValue, nil
	}
	if len(values) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidSceneFile, field, len(values))
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}

func (fileObj sceneFileObject) addTo(scene *Scene, parent mgl64.Mat4) error {

	fail := func(err error) error {
		return fmt.Errorf("object %q: %w", fileObj.Name, err)
	}

	translation, err := sceneFileVec("translation", fileObj.Translation, mgl64.Vec3{})
	if err != nil {
		return fail(err)
	}

	scale, err := sceneFileVec("scale", fileObj.Scale, mgl64.Vec3{1, 1, 1})
	if err != nil {
		return fail(err)
	}

	rotation := mgl64.QuatIdent()
	if fileObj.Rotation != nil {
		axis, err := sceneFileVec("rotation axis", fileObj.Rotation.Axis, VecY)
		if err != nil {
			return fail(err)
		}
		rotation = NewAxisAngle(axis, ToRadians(fileObj.Rotation.Angle)).Quat()
	}

	obj := NewObject(fileObj.Name)

	if fileObj.Box != nil {
		boxMin, err := sceneFileVec("box min", fileObj.Box.Min, mgl64.Vec3{})
		if err != nil {
			return fail(err)
		}
		boxMax, err := sceneFileVec("box max", fileObj.Box.Max, mgl64.Vec3{})
		if err != nil {
			return fail(err)
		}
		obj.SetLocalBox(NewBoundingBox(boxMin, boxMax))
	}

	if fileObj.Sphere != nil {
		center, err := sceneFileVec("sphere center", fileObj.Sphere.Center, mgl64.Vec3{})
		if err != nil {
			return fail(err)
		}
		obj.SetLocalSphere(NewBoundingSphere(center, fileObj.Sphere.Radius))
	}

	for propName, value := range fileObj.Properties {
		obj.Properties.Get(propName).setFromGeneric(value)
	}

	world := parent.Mul4(NewTransformTRS(translation, rotation, scale).Matrix())

	if parent == mgl64.Ident4() {
		// Keep the exact components for top-level objects, rather than round-tripping them through a matrix.
		obj.Transform().Set(translation, rotation, scale)
	} else {
		obj.Transform().SetMatrix(world)
	}

	scene.Add(obj)

	if fileObj.Static {
		obj.Transform().SetStatic(true)
	}

	for _, child := range fileObj.Children {
		if err := child.addTo(scene, world); err != nil {
			return err
		}
	}

	return nil

}

func (fileCam sceneFileCamera) build() (*Camera, error) {

	fail := func(err error) (*Camera, error) {
		return nil, fmt.Errorf("camera %q: %w", fileCam.Name, err)
	}

	camera := NewCamera(fileCam.Name, fileCam.AspectRatio)

	if fileCam.AspectRatio == 0 {
		camera.SetAspectRatio(16.0 / 9.0)
	}

	camera.SetPerspective(!fileCam.Orthographic)

	if fileCam.FieldOfView > 0 {
		camera.SetFieldOfView(fileCam.FieldOfView)
	}
	if fileCam.OrthoScale > 0 {
		camera.SetOrthoScale(fileCam.OrthoScale)
	}
	if fileCam.Near > 0 {
		camera.SetNear(fileCam.Near)
	}
	if fileCam.Far > 0 {
		camera.SetFar(fileCam.Far)
	}

	if camera.Near() >= camera.Far() {
		return fail(fmt.Errorf("%w: near (%v) must be less than far (%v)", ErrInvalidSceneFile, camera.Near(), camera.Far()))
	}

	eye, err := sceneFileVec("eye", fileCam.Eye, mgl64.Vec3{})
	if err != nil {
		return fail(err)
	}

	if fileCam.Target != nil {

		target, err := sceneFileVec("target", fileCam.Target, mgl64.Vec3{})
		if err != nil {
			return fail(err)
		}

		up, err := sceneFileVec("up", fileCam.Up, VecY)
		if err != nil {
			return fail(err)
		}

		if vecIsZero(target.Sub(eye)) || vecIsZero(target.Sub(eye).Cross(up)) {
			return fail(fmt.Errorf("%w: target must differ from eye, and not lie along up", ErrInvalidSceneFile))
		}

		camera.LookAt(eye, target, up)

	} else {
		camera.Transform().SetTranslation(eye)
	}

	return camera, nil

}

func (fileRay sceneFileRay) build() (Ray, error) {

	origin, err := sceneFileVec("origin", fileRay.Origin, mgl64.Vec3{})
	if err != nil {
		return Ray{}, err
	}

	direction, err := sceneFileVec("direction", fileRay.Direction, mgl64.Vec3{0, 0, -1})
	if err != nil {
		return Ray{}, err
	}

	ray, err := NewRay(origin, direction)
	if err != nil {
		return Ray{}, fmt.Errorf("%w: %w", ErrInvalidSceneFile, err)
	}

	return ray, nil

}
