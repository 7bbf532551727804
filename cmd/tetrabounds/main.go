package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/tetrabounds"
	"github.com/spf13/cobra"
)

var (
	errSceneNotFound = errors.New("scene not found")
	errNoCamera      = errors.New("scene has no camera")
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	sceneName  string
	cameraName string
	verbose    bool
}

func newRootCmd() *cobra.Command {

	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tetrabounds",
		Short: "Inspect, cull, and raycast 3D scenes using their bounding volumes",
		Long: `tetrabounds loads a scene from a YAML scene file (.yaml / .yml) or a glTF file (.gltf / .glb)
and tests its objects' bounding boxes and spheres: listing their world bounds, culling them against
a camera's view frustum, casting rays at them, and playing back animations to see how often
their transforms notify listeners.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.sceneName, "scene", "s", "", "Name of the scene to use (defaults to the file's exported scene)")
	rootCmd.PersistentFlags().StringVarP(&opts.cameraName, "camera", "c", "", "Name of the camera to use (defaults to the scene's first camera)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log loader warnings to stderr")

	rootCmd.AddCommand(
		newInspectCmd(opts),
		newCullCmd(opts),
		newRaycastCmd(opts),
		newSimulateCmd(opts),
	)

	return rootCmd

}

// load loads the file at the given path, returning the Library along with the chosen Scene.
func (opts *rootOptions) load(path string) (*tetrabounds.Library, *tetrabounds.Scene, error) {

	library, err := tetrabounds.LoadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}

	scene := library.ExportedScene
	if opts.sceneName != "" {
		scene = library.FindScene(opts.sceneName)
	}

	if scene == nil {
		return nil, nil, fmt.Errorf("%w: %q", errSceneNotFound, opts.sceneName)
	}

	return library, scene, nil

}

// camera returns the chosen Camera from the Scene.
func (opts *rootOptions) camera(scene *tetrabounds.Scene) (*tetrabounds.Camera, error) {

	camera := scene.ActiveCamera()
	if opts.cameraName != "" {
		camera = scene.FindCamera(opts.cameraName)
	}

	if camera == nil {
		if opts.cameraName != "" {
			return nil, fmt.Errorf("%w: %q", errNoCamera, opts.cameraName)
		}
		return nil, errNoCamera
	}

	return camera, nil

}

func formatVector(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X(), v.Y(), v.Z())
}

func vectorFromFlag(name string, values []float64) (mgl64.Vec3, error) {
	if len(values) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("--%s needs 3 comma-separated values, got %d", name, len(values))
	}
	return mgl64.Vec3{values[0], values[1], values[2]}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
