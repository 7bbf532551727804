package tetrabounds

// Library represents a collection of Scenes and Animations, as loaded from a glTF file (.gltf / .glb) or a YAML scene file.
type Library struct {
	Scenes        []*Scene              // A slice of Scenes
	ExportedScene *Scene                // The scene that was set as the file's default scene
	Animations    map[string]*Animation // A Map of Animations to their names
}

// NewLibrary creates a new Library.
func NewLibrary() *Library {
	return &Library{
		Scenes:     []*Scene{},
		Animations: map[string]*Animation{},
	}
}

// FindScene searches all scenes in a Library to find the one with the provided name. If a scene with the given name isn't found,
// FindScene will return nil.
func (lib *Library) FindScene(name string) *Scene {
	for _, scene := range lib.Scenes {
		if scene.Name == name {
			return scene
		}
	}
	return nil
}

// AddScene creates a new Scene with the given name in the Library and returns it.
func (lib *Library) AddScene(sceneName string) *Scene {
	newScene := NewScene(sceneName)
	newScene.library = lib
	lib.Scenes = append(lib.Scenes, newScene)
	return newScene
}

// FindObject allows you to find an Object by name by searching through each of a Library's scenes. If an Object with the given name
// isn't found, FindObject will return nil.
func (lib *Library) FindObject(objectName string) *Object {
	for _, scene := range lib.Scenes {
		if obj := scene.FindObject(objectName); obj != nil {
			return obj
		}
	}
	return nil
}
