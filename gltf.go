package tetrabounds

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const ErrorNoScenes = "error: glTF document contains no scenes"

// ErrNoScenes is returned when a glTF document is loaded that has no scenes in it.
var ErrNoScenes = errors.New(ErrorNoScenes)

// GLTFLoadOptions alters how a glTF file is loaded.
type GLTFLoadOptions struct {
	// Aspect ratio (width / height) of loaded Cameras. Defaults to -1, which will instead use the aspect ratio exported in the
	// glTF file; if the camera's aspect ratio isn't set there, cameras will load with a 16:9 aspect ratio.
	CameraAspectRatio float64

	// StaticProperty is the name of the custom property that marks an Object as static; Objects with this property set to true have
	// their Transform made static once loaded. Defaults to "static".
	StaticProperty string

	// If IgnoreEmpties is true, nodes with neither a mesh nor a camera aren't turned into Objects. Their transforms still affect
	// their children.
	IgnoreEmpties bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		CameraAspectRatio: -1,
		StaticProperty:    "static",
	}
}

// LoadGLTFFile loads a .gltf or .glb file from the filepath given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
// LoadGLTFFile will return a Library, and an error if the process fails.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) (*Library, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads a .gltf or .glb file from the byte data given, using a provided GLTFLoadOptions struct to alter how the file is loaded.
// Passing nil for loadOptions will load the file using default load options.
//
// Each glTF scene becomes a Scene in the returned Library. Nodes with meshes become Objects with a local BoundingBox fit around the
// mesh's vertices (and a BoundingSphere around that box); nodes with cameras become Cameras. Object Transforms are flat; a child
// node's Transform is set to its parent's world matrix composed with its own. Each node's extras become Properties on its Object.
func LoadGLTFData(data []byte, gltfLoadOptions *GLTFLoadOptions) (*Library, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := &gltf.Document{}

	err := decoder.Decode(doc)

	if err != nil {
		return nil, err
	}

	if len(doc.Scenes) == 0 {
		return nil, ErrNoScenes
	}

	if gltfLoadOptions == nil {
		gltfLoadOptions = DefaultGLTFLoadOptions()
	}

	library := NewLibrary()

	meshBounds := make(map[uint32]BoundingBox, len(doc.Meshes))
	meshHasBounds := make(map[uint32]bool, len(doc.Meshes))

	for i, mesh := range doc.Meshes {

		box := BoundingBox{}
		found := false

		var posBuffer [][3]float32

		for _, primitive := range mesh.Primitives {

			posIndex, exists := primitive.Attributes[gltf.POSITION]
			if !exists {
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], posBuffer[:0])
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
			}

			for _, v := range vertPos {
				p := mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
				if !found {
					box.Set(p, p)
					found = true
				} else {
					box.Min = vecMin(box.Min, p)
					box.Max = vecMax(box.Max, p)
				}
			}

			posBuffer = vertPos

		}

		meshBounds[uint32(i)] = box
		meshHasBounds[uint32(i)] = found

	}

	loader := gltfLoader{
		doc:           doc,
		options:       gltfLoadOptions,
		meshBounds:    meshBounds,
		meshHasBounds: meshHasBounds,
	}

	for i, s := range doc.Scenes {

		name := s.Name
		if name == "" {
			name = fmt.Sprintf("Scene.%03d", i)
		}

		scene := library.AddScene(name)

		if s.Extras != nil {
			if dataMap, isMap := s.Extras.(map[string]any); isMap {
				for tagName, data := range dataMap {
					scene.Properties.Get(tagName).setFromGeneric(data)
				}
			}
		}

		visited := newSet[uint32]()

		for _, nodeIndex := range s.Nodes {
			loader.addNode(scene, uint32(nodeIndex), mgl64.Ident4(), visited)
		}

	}

	if doc.Scene != nil && int(*doc.Scene) < len(library.Scenes) {
		library.ExportedScene = library.Scenes[*doc.Scene]
	} else {
		library.ExportedScene = library.Scenes[0]
	}

	return library, nil

}

type gltfLoader struct {
	doc           *gltf.Document
	options       *GLTFLoadOptions
	meshBounds    map[uint32]BoundingBox
	meshHasBounds map[uint32]bool
}

func (loader *gltfLoader) addNode(scene *Scene, nodeIndex uint32, parent mgl64.Mat4, visited Set[uint32]) {

	if int(nodeIndex) >= len(loader.doc.Nodes) {
		log.Println("Warning: glTF scene", scene.Name, "references missing node", nodeIndex)
		return
	}

	// Guards against malformed documents where a node is its own ancestor.
	if visited.Contains(nodeIndex) {
		log.Println("Warning: glTF node", nodeIndex, "appears more than once in scene", scene.Name)
		return
	}
	visited.Add(nodeIndex)

	node := loader.doc.Nodes[nodeIndex]

	world := parent.Mul4(gltfNodeMatrix(node))

	if node.Camera != nil && int(*node.Camera) < len(loader.doc.Cameras) {

		scene.AddCamera(loader.newCamera(node, world))

	} else if node.Mesh != nil || !loader.options.IgnoreEmpties {

		obj := NewObject(node.Name)

		if node.Mesh != nil && loader.meshHasBounds[uint32(*node.Mesh)] {
			obj.SetLocalBox(loader.meshBounds[uint32(*node.Mesh)])
		}

		if node.Extras != nil {
			if dataMap, isMap := node.Extras.(map[string]any); isMap {
				for tagName, data := range dataMap {
					obj.Properties.Get(tagName).setFromGeneric(data)
				}
			}
		}

		obj.Transform().SetMatrix(world)

		scene.Add(obj)

		if prop := loader.options.StaticProperty; prop != "" && obj.Properties.Has(prop) && obj.Properties.Get(prop).AsBool() {
			obj.Transform().SetStatic(true)
		}

	}

	for _, child := range node.Children {
		loader.addNode(scene, uint32(child), world, visited)
	}

}

func (loader *gltfLoader) newCamera(node *gltf.Node, world mgl64.Mat4) *Camera {

	gltfCam := loader.doc.Cameras[*node.Camera]

	name := node.Name
	if name == "" {
		name = gltfCam.Name
	}

	aspectRatio := loader.options.CameraAspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
		if gltfCam.Perspective != nil && gltfCam.Perspective.AspectRatio != nil && float64(*gltfCam.Perspective.AspectRatio) > 0 {
			aspectRatio = float64(*gltfCam.Perspective.AspectRatio)
		} else if gltfCam.Orthographic != nil && gltfCam.Orthographic.Ymag > 0 {
			aspectRatio = float64(gltfCam.Orthographic.Xmag) / float64(gltfCam.Orthographic.Ymag)
		}
	}

	newCam := NewCamera(name, aspectRatio)

	if gltfCam.Perspective != nil {
		newCam.near = float64(gltfCam.Perspective.Znear)
		if gltfCam.Perspective.Zfar != nil {
			newCam.far = float64(*gltfCam.Perspective.Zfar)
		} else {
			// An infinite projection; clamp it to something a Frustum can still be built from.
			newCam.far = newCam.near * 1e6
		}
		newCam.fieldOfView = ToDegrees(float64(gltfCam.Perspective.Yfov))
		newCam.perspective = true
	} else if gltfCam.Orthographic != nil {
		newCam.near = float64(gltfCam.Orthographic.Znear)
		newCam.far = float64(gltfCam.Orthographic.Zfar)
		newCam.orthoScale = float64(gltfCam.Orthographic.Xmag * 2)
		newCam.perspective = false
	}

	newCam.dirtyProjection()

	// glTF cameras never carry scale, and a scaled view would skew the frustum.
	translation, _, rotation := DecomposeMatrix(world)
	newCam.Transform().Set(translation, rotation, mgl64.Vec3{1, 1, 1})

	return newCam

}

// gltfNodeMatrix returns the node's local matrix, either as given directly or composed from its translation, rotation, and scale.
func gltfNodeMatrix(node *gltf.Node) mgl64.Mat4 {

	matrix := mgl64.Mat4{}
	for i := range matrix {
		matrix[i] = float64(node.Matrix[i])
	}

	if matrix != (mgl64.Mat4{}) && !matrixIsIdentity(matrix) {
		return matrix
	}

	translation := mgl64.Vec3{float64(node.Translation[0]), float64(node.Translation[1]), float64(node.Translation[2])}
	rotation := mgl64.Quat{
		W: float64(node.Rotation[3]),
		V: mgl64.Vec3{float64(node.Rotation[0]), float64(node.Rotation[1]), float64(node.Rotation[2])},
	}
	scale := mgl64.Vec3{float64(node.Scale[0]), float64(node.Scale[1]), float64(node.Scale[2])}

	// Nodes built by hand rather than decoded have a zero rotation and scale, which glTF treats as unset.
	if rotation.W == 0 && vecIsZero(rotation.V) {
		rotation = mgl64.QuatIdent()
	}
	if vecIsZero(scale) {
		scale = mgl64.Vec3{1, 1, 1}
	}

	return NewTransformTRS(translation, rotation.Normalize(), scale).Matrix()

}

// IsGLTFPath returns if the path given has a glTF file extension (.gltf or .glb).
func IsGLTFPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".gltf") || strings.HasSuffix(lower, ".glb")
}
